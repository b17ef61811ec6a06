package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-breakout/core"
)

// Ticker is the firing source of the scheduler
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker for the given period
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

// NewRealTicker wraps time.Ticker. Firings missed while a tick is running are
// dropped by the runtime, never queued.
func NewRealTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// ClockScheduler drives the game on a fixed tick.
// Tick handling and posted work run on one goroutine, so a tick never overlaps
// another tick or an input write.
type ClockScheduler struct {
	tickInterval time.Duration
	newTicker    TickerFactory
	onTick       func()

	// Cooperative queue for work that must interleave with ticks
	inbox chan func()

	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
}

// NewClockScheduler creates a scheduler calling onTick every tickInterval.
// A nil factory uses the real ticker.
func NewClockScheduler(tickInterval time.Duration, queueSize int, factory TickerFactory, onTick func()) *ClockScheduler {
	if tickInterval <= 0 {
		panic("engine: tick interval must be positive")
	}
	if factory == nil {
		factory = NewRealTicker
	}
	return &ClockScheduler{
		tickInterval: tickInterval,
		newTicker:    factory,
		onTick:       onTick,
		inbox:        make(chan func(), queueSize),
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop. No-op if running or already stopped.
func (cs *ClockScheduler) Start() {
	if cs.stopped.Load() {
		return
	}
	if cs.running.CompareAndSwap(false, true) {
		ticker := cs.newTicker(cs.tickInterval)
		cs.wg.Add(1)
		core.Go(func() { cs.schedulerLoop(ticker) })
	}
}

// Stop halts the loop and waits for it to exit. No handler runs after Stop returns.
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		cs.stopped.Store(true)
		close(cs.stopChan)
		cs.wg.Wait()
		cs.running.Store(false)
	})
}

// Post enqueues fn onto the tick goroutine without waiting.
// Returns false if the scheduler is stopped or the queue is full.
func (cs *ClockScheduler) Post(fn func()) bool {
	if cs.stopped.Load() {
		return false
	}
	select {
	case cs.inbox <- fn:
		return true
	case <-cs.stopChan:
		return false
	default:
		return false
	}
}

// TickCount returns the number of ticks handled
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop(ticker Ticker) {
	defer cs.wg.Done()
	defer ticker.Stop()

	for {
		// Stop wins over pending work
		select {
		case <-cs.stopChan:
			return
		default:
		}

		select {
		case <-cs.stopChan:
			return

		case fn := <-cs.inbox:
			fn()

		case <-ticker.C():
			// Writes posted before this firing must be visible to the tick
			cs.drainInbox()
			if cs.onTick != nil {
				cs.onTick()
			}
			cs.tickCount.Add(1)
		}
	}
}

func (cs *ClockScheduler) drainInbox() {
	for {
		select {
		case fn := <-cs.inbox:
			fn()
		default:
			return
		}
	}
}
