package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the simulation clock period. Velocities are expressed in
	// arena units per tick, so changing it changes game speed.
	TickInterval = 10 * time.Millisecond

	// InputQueueSize bounds pending pointer writes between ticks
	InputQueueSize = 64
)

// Arena bounds in arena units
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0
)

// Initial ball state, restored on every reset
const (
	BallStartX  = 100.0
	BallStartY  = 100.0
	BallRadius  = 10.0
	BallStartDX = 3.0
	BallStartDY = -3.0
)

// Initial paddle state
const (
	PaddleStartX = 400.0
	PaddleY      = 580.0
	PaddleWidth  = 75.0
	PaddleHeight = 15.0
)

// Block row layout: block i is centered at ((i+1)*BlockSpacing, BlockRowY)
const (
	BlockCount   = 5
	BlockSpacing = 120.0
	BlockRowY    = 50.0
	BlockWidth   = 100.0
	BlockHeight  = 20.0
)
