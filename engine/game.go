package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/constants"
)

// GameOptions configures a game instance. Zero values take defaults except Resolver.
type GameOptions struct {
	TickInterval  time.Duration
	Resolver      System
	Renderer      Renderer
	Input         InputListener
	Logger        *zap.Logger
	TimeProvider  TimeProvider
	TickerFactory TickerFactory
}

// Game owns the state store, the clock and the adapters of one play session.
// The clock and the input listener are acquired by Start and released by Dispose.
type Game struct {
	ID uuid.UUID

	state     *GameState
	scheduler *ClockScheduler
	resolver  System
	renderer  Renderer
	input     InputListener

	logger       *zap.Logger
	timeProvider TimeProvider
	episodeStart time.Time

	started  atomic.Bool
	disposed atomic.Bool
}

// NewGame creates a game in its initial state; nothing runs until Start
func NewGame(opts GameOptions) *Game {
	if opts.Resolver == nil {
		panic("engine: game requires a resolver system")
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = constants.TickInterval
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.TimeProvider == nil {
		opts.TimeProvider = NewMonotonicTimeProvider()
	}

	id := uuid.New()
	g := &Game{
		ID:           id,
		state:        NewGameState(),
		resolver:     opts.Resolver,
		renderer:     opts.Renderer,
		input:        opts.Input,
		logger:       opts.Logger.With(zap.String("game_id", id.String())),
		timeProvider: opts.TimeProvider,
	}
	g.scheduler = NewClockScheduler(opts.TickInterval, constants.InputQueueSize, opts.TickerFactory, g.tick)

	return g
}

// Start attaches input and starts the clock. Only the first call has effect.
func (g *Game) Start() {
	if g.disposed.Load() || !g.started.CompareAndSwap(false, true) {
		return
	}
	g.episodeStart = g.timeProvider.Now()

	// First frame is drawn before the clock can render concurrently
	if g.renderer != nil {
		g.renderer.Render(g.state.Snapshot())
	}

	if g.input != nil {
		g.input.Attach(g)
	}
	g.scheduler.Start()

	g.logger.Info("game started")
}

// Dispose stops the clock and detaches input. No state mutation happens afterwards.
func (g *Game) Dispose() {
	if !g.disposed.CompareAndSwap(false, true) {
		return
	}
	if g.input != nil {
		g.input.Detach()
	}
	g.scheduler.Stop()

	snap := g.state.Snapshot()
	g.logger.Info("game disposed",
		zap.Uint64("ticks", snap.Tick),
		zap.Uint64("clock_ticks", g.scheduler.TickCount()),
		zap.Uint64("episode", snap.Episode),
		zap.Int("live_blocks", len(snap.LiveBlocks())),
		zap.String("fingerprint", fmt.Sprintf("%016x", snap.Fingerprint())),
	)
}

// Run starts the game and disposes it when ctx is cancelled
func (g *Game) Run(ctx context.Context) error {
	g.Start()
	<-ctx.Done()
	g.Dispose()
	return nil
}

// SetPaddleX queues a paddle write behind any running tick.
// Returns false once disposed or when the queue is saturated.
func (g *Game) SetPaddleX(x float64) bool {
	if g.disposed.Load() {
		return false
	}
	return g.scheduler.Post(func() { g.state.SetPaddleX(x) })
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// State exposes the store for replacement by tests and tooling
func (g *Game) State() *GameState {
	return g.state
}

// Scheduler exposes the clock, mainly to synchronize tests with Do
func (g *Game) Scheduler() *ClockScheduler {
	return g.scheduler
}

// tick runs on the scheduler goroutine
func (g *Game) tick() {
	g.state.Lock()
	ending := episodeSummary{
		ticks:     g.state.EpisodeTick,
		destroyed: countDestroyed(&g.state.Blocks),
	}
	report := g.resolver.Update(g.state)
	g.state.Tick++
	if !report.Missed {
		g.state.EpisodeTick++
	}
	snap := g.state.snapshotLocked()
	g.state.Unlock()

	g.observe(report, snap, ending)

	if g.renderer != nil {
		g.renderer.Render(snap)
	}
}

// episodeSummary is captured before the resolver runs, a miss resets the counters
type episodeSummary struct {
	ticks     uint64
	destroyed int
}

func countDestroyed(blocks *[constants.BlockCount]components.BlockComponent) int {
	n := 0
	for i := range blocks {
		if blocks[i].Destroyed {
			n++
		}
	}
	return n
}

func (g *Game) observe(report TickReport, snap Snapshot, ending episodeSummary) {
	if report.DestroyedBlock != NoBlock {
		g.logger.Debug("block destroyed",
			zap.Int("block", report.DestroyedBlock),
			zap.Uint64("episode", snap.Episode),
			zap.Uint64("tick", snap.Tick),
		)
	}

	if report.Missed {
		now := g.timeProvider.Now()
		g.logger.Info("game over",
			zap.Uint64("episode", snap.Episode-1),
			zap.Uint64("tick", snap.Tick),
			zap.Uint64("episode_ticks", ending.ticks),
			zap.Int("blocks_destroyed", ending.destroyed),
			zap.Duration("episode_duration", now.Sub(g.episodeStart)),
		)
		g.episodeStart = now
	}
}
