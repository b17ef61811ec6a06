package components

import "fmt"

// PaddleComponent is the player paddle, centered on (X, Y).
// X follows the pointer and is never clamped to the arena.
type PaddleComponent struct {
	X, Y          float64
	Width, Height float64
}

// Left returns the left edge
func (p PaddleComponent) Left() float64 { return p.X - p.Width/2 }

// Right returns the right edge
func (p PaddleComponent) Right() float64 { return p.X + p.Width/2 }

// Validate panics on non-positive dimensions
func (p PaddleComponent) Validate() {
	if p.Width <= 0 || p.Height <= 0 {
		panic(fmt.Sprintf("paddle dimensions must be positive, got %vx%v", p.Width, p.Height))
	}
}
