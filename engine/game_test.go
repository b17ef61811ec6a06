package engine_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/engine"
	"github.com/lixenwraith/vi-breakout/systems"
)

const fireTimeout = time.Second

type recordingRenderer struct {
	mu    sync.Mutex
	snaps []engine.Snapshot
}

func (r *recordingRenderer) Render(snap engine.Snapshot) {
	r.mu.Lock()
	r.snaps = append(r.snaps, snap)
	r.mu.Unlock()
}

func (r *recordingRenderer) frames() []engine.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]engine.Snapshot(nil), r.snaps...)
}

type fakeInput struct {
	mu       sync.Mutex
	sink     engine.PaddleSink
	attached int
	detached int
}

func (f *fakeInput) Attach(sink engine.PaddleSink) {
	f.mu.Lock()
	f.sink = sink
	f.attached++
	f.mu.Unlock()
}

func (f *fakeInput) Detach() {
	f.mu.Lock()
	f.sink = nil
	f.detached++
	f.mu.Unlock()
}

func (f *fakeInput) move(x float64) bool {
	f.mu.Lock()
	sink := f.sink
	f.mu.Unlock()
	if sink == nil {
		return false
	}
	return sink.SetPaddleX(x)
}

type harness struct {
	game     *engine.Game
	ticker   *engine.ManualTicker
	renderer *recordingRenderer
	input    *fakeInput
	logs     *observer.ObservedLogs
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	h := &harness{
		ticker:   engine.NewManualTicker(),
		renderer: &recordingRenderer{},
		input:    &fakeInput{},
		logs:     logs,
	}
	h.game = engine.NewGame(engine.GameOptions{
		Resolver:      systems.NewBallSystem(),
		Renderer:      h.renderer,
		Input:         h.input,
		Logger:        zap.New(core),
		TimeProvider:  engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		TickerFactory: h.ticker.Factory(),
	})
	t.Cleanup(h.game.Dispose)
	return h
}

// step fires n ticks and waits for the last one to complete
func (h *harness) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.True(t, h.ticker.Fire(fireTimeout))
	}
	require.True(t, h.game.Scheduler().Do(func() {}))
}

func TestGameLifecycle(t *testing.T) {
	h := newHarness(t)

	h.game.Start()
	h.game.Start()
	assert.Equal(t, 1, h.input.attached, "listener attaches once")
	require.Len(t, h.renderer.frames(), 1, "initial frame drawn on start")

	h.step(t, 3)
	snap := h.game.Snapshot()
	assert.Equal(t, uint64(3), snap.Tick)
	assert.Equal(t, 109.0, snap.Ball.X)
	assert.Equal(t, 91.0, snap.Ball.Y)
	assert.Len(t, h.renderer.frames(), 4)

	h.game.Dispose()
	assert.Equal(t, 1, h.input.detached)
	assert.True(t, h.ticker.Stopped())
	assert.False(t, h.game.SetPaddleX(10))
	assert.False(t, h.ticker.Fire(20*time.Millisecond))
	assert.Equal(t, snap.Fingerprint(), h.game.Snapshot().Fingerprint(), "no mutation after dispose")
	disposed := h.logs.FilterMessage("game disposed").All()
	require.Len(t, disposed, 1)
	fields := disposed[0].ContextMap()
	assert.Equal(t, uint64(3), fields["clock_ticks"])
	assert.Equal(t, int64(5), fields["live_blocks"])
	assert.Equal(t, fmt.Sprintf("%016x", snap.Fingerprint()), fields["fingerprint"])
}

func TestGamePointerWriteReachesNextTick(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	require.True(t, h.input.move(-150))
	require.True(t, h.input.move(612.5))
	h.step(t, 1)

	frames := h.renderer.frames()
	assert.Equal(t, 612.5, frames[len(frames)-1].Paddle.X)
}

func TestGameOverResetsAndLogs(t *testing.T) {
	h := newHarness(t)
	blocks := engine.InitialBlocks()
	blocks[0].Destroyed = true
	h.game.State().Replace(
		components.BallComponent{X: 0.5, Y: 588, Radius: 10, DX: 3, DY: 3},
		engine.InitialPaddle(),
		blocks,
	)
	h.game.Start()

	h.step(t, 1)

	snap := h.game.Snapshot()
	assert.Equal(t, uint64(1), snap.Episode)
	assert.Zero(t, snap.EpisodeTick)
	assert.Equal(t, engine.InitialBall(), snap.Ball)
	assert.Equal(t, engine.InitialBlocks(), snap.Blocks)

	entries := h.logs.FilterMessage("game over").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, uint64(0), fields["episode"])
	assert.Equal(t, int64(1), fields["blocks_destroyed"])
	assert.Equal(t, h.game.ID.String(), fields["game_id"])
}

func TestGameBlockDestroyedLogged(t *testing.T) {
	h := newHarness(t)
	h.game.State().Replace(
		components.BallComponent{X: 120, Y: 72, Radius: 10, DX: 1, DY: -3},
		engine.InitialPaddle(),
		engine.InitialBlocks(),
	)
	h.game.Start()

	h.step(t, 1)

	assert.True(t, h.game.Snapshot().Blocks[0].Destroyed)
	require.Equal(t, 1, h.logs.FilterMessage("block destroyed").Len())
}

func TestGameRunDisposesOnCancel(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.game.Run(ctx) }()

	require.Eventually(t, func() bool { return h.game.Scheduler().IsRunning() }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 1, h.input.detached)
	assert.False(t, h.game.SetPaddleX(1))
}

func TestNewGameRequiresResolver(t *testing.T) {
	assert.Panics(t, func() { engine.NewGame(engine.GameOptions{}) })
}
