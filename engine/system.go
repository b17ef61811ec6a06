package engine

// NoBlock marks a tick that destroyed no block
const NoBlock = -1

// TickReport describes what the resolver did during one tick
type TickReport struct {
	WallBounce     bool
	CeilingBounce  bool
	PaddleBounce   bool
	DestroyedBlock int
	Missed         bool
}

// System advances the state by one tick. Called with the state write lock held.
type System interface {
	Update(gs *GameState) TickReport
}

// Renderer consumes one snapshot per tick and has no effect on the simulation
type Renderer interface {
	Render(snap Snapshot)
}

// PaddleSink receives pointer positions
type PaddleSink interface {
	SetPaddleX(x float64) bool
}

// InputListener is the pointer source, attached on Start and detached on Dispose
type InputListener interface {
	Attach(sink PaddleSink)
	Detach()
}
