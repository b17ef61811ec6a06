package engine

import (
	"sync"

	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/constants"
)

// GameState is the single authoritative store for ball, paddle and blocks.
// Entity fields are mutated in place; systems operate on the same instance that
// snapshots are taken from, so a collision decision never sees a stale copy.
//
// Systems access fields directly while the game tick holds the write lock.
// Readers outside the tick go through Snapshot.
type GameState struct {
	mu sync.RWMutex

	Ball   components.BallComponent
	Paddle components.PaddleComponent
	Blocks [constants.BlockCount]components.BlockComponent

	// Tick counts all ticks since creation, EpisodeTick since the last reset
	Tick        uint64
	EpisodeTick uint64

	// Episode counts resets performed
	Episode uint64
}

// NewGameState creates a state populated with the initial entities, episode 0
func NewGameState() *GameState {
	gs := &GameState{}
	gs.restoreEntities()
	return gs
}

// Lock acquires exclusive access for the duration of a tick
func (gs *GameState) Lock() { gs.mu.Lock() }

// Unlock releases exclusive access
func (gs *GameState) Unlock() { gs.mu.Unlock() }

// SetPaddleX writes the paddle position, unclamped
func (gs *GameState) SetPaddleX(x float64) {
	gs.mu.Lock()
	gs.Paddle.X = x
	gs.mu.Unlock()
}

// Snapshot returns a read-only copy of the current state
func (gs *GameState) Snapshot() Snapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.snapshotLocked()
}

// snapshotLocked copies state, caller holds the lock
func (gs *GameState) snapshotLocked() Snapshot {
	return Snapshot{
		Tick:        gs.Tick,
		Episode:     gs.Episode,
		EpisodeTick: gs.EpisodeTick,
		Ball:        gs.Ball,
		Paddle:      gs.Paddle,
		Blocks:      gs.Blocks,
	}
}
