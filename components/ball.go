package components

import "fmt"

// BallComponent is the single ball. Position is the circle center, velocity is in
// arena units per tick.
type BallComponent struct {
	X, Y   float64
	Radius float64
	DX, DY float64
}

// Validate panics on a degenerate ball; geometry is constant configuration so a
// bad value is a programming error, not a runtime condition
func (b BallComponent) Validate() {
	if b.Radius <= 0 {
		panic(fmt.Sprintf("ball radius must be positive, got %v", b.Radius))
	}
	if b.DX == 0 || b.DY == 0 {
		panic(fmt.Sprintf("ball velocity must be nonzero on both axes, got (%v, %v)", b.DX, b.DY))
	}
}
