package physics

import (
	"math"

	"github.com/lixenwraith/vi-breakout/components"
)

// Project returns the position the ball is about to occupy: p + v
func Project(b *components.BallComponent) (x, y float64) {
	return b.X + b.DX, b.Y + b.DY
}

// Advance commits one tick of motion: p = p + v
// Called once per tick, after collision resolution has settled the velocity
func Advance(b *components.BallComponent) {
	b.X += b.DX
	b.Y += b.DY
}

// ReflectX flips horizontal velocity
func ReflectX(b *components.BallComponent) {
	b.DX = -b.DX
}

// ReflectY flips vertical velocity
func ReflectY(b *components.BallComponent) {
	b.DY = -b.DY
}

// ForceUp makes vertical velocity point up regardless of its current sign
func ForceUp(b *components.BallComponent) {
	b.DY = -math.Abs(b.DY)
}
