package components

import "fmt"

// BlockComponent is one destructible block, centered on (X, Y).
// Destroyed only goes from false to true within an episode.
type BlockComponent struct {
	X, Y          float64
	Width, Height float64
	Destroyed     bool
}

// Bounds returns the block rectangle edges
func (b BlockComponent) Bounds() (left, top, right, bottom float64) {
	hw, hh := b.Width/2, b.Height/2
	return b.X - hw, b.Y - hh, b.X + hw, b.Y + hh
}

// Destroy marks the block destroyed. Destroying twice is an invariant violation.
func (b *BlockComponent) Destroy() {
	if b.Destroyed {
		panic(fmt.Sprintf("block at (%v, %v) destroyed twice", b.X, b.Y))
	}
	b.Destroyed = true
}

// Validate panics on non-positive dimensions
func (b BlockComponent) Validate() {
	if b.Width <= 0 || b.Height <= 0 {
		panic(fmt.Sprintf("block dimensions must be positive, got %vx%v", b.Width, b.Height))
	}
}
