package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/constants"
)

// ManualTicker is a Ticker fired by hand, for deterministic scheduler tests
type ManualTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

// NewManualTicker creates an unbuffered manual ticker: Fire returns once the
// scheduler loop has accepted the firing
func NewManualTicker() *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time)}
}

// Factory returns a TickerFactory that always hands out this ticker
func (m *ManualTicker) Factory() TickerFactory {
	return func(time.Duration) Ticker { return m }
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

func (m *ManualTicker) Stop() { m.stopped.Store(true) }

// Stopped reports whether the consumer released the ticker
func (m *ManualTicker) Stopped() bool { return m.stopped.Load() }

// Fire delivers one firing, giving up after timeout. Returns whether it was accepted.
func (m *ManualTicker) Fire(timeout time.Duration) bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-time.After(timeout):
		return false
	}
}

// MockTimeProvider is a TimeProvider that only moves when told to
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Hooks for tests and tooling that drive the clock and store from outside a tick

// Do runs fn on the tick goroutine and waits for it to finish.
// Returns false if the scheduler stopped before fn ran.
func (cs *ClockScheduler) Do(fn func()) bool {
	if cs.stopped.Load() {
		return false
	}
	done := make(chan struct{})
	wrapped := func() {
		fn()
		close(done)
	}
	select {
	case cs.inbox <- wrapped:
	case <-cs.stopChan:
		return false
	}
	select {
	case <-done:
		return true
	case <-cs.stopChan:
		return false
	}
}

// IsRunning reports whether the loop is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load() && !cs.stopped.Load()
}

// Replace swaps in caller-provided entities after validating them.
// Episode and tick counters are preserved.
func (gs *GameState) Replace(ball components.BallComponent, paddle components.PaddleComponent, blocks [constants.BlockCount]components.BlockComponent) {
	ball.Validate()
	paddle.Validate()
	for i := range blocks {
		blocks[i].Validate()
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Ball = ball
	gs.Paddle = paddle
	gs.Blocks = blocks
}
