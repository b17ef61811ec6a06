package physics

import "github.com/lixenwraith/vi-breakout/components"

// All tests below use strict inequalities: a ball exactly tangent to a boundary
// is not in contact, otherwise a resting ball would re-trigger every tick.

// HitsSideWall reports whether a ball centered at x with radius r crosses the
// left (0) or right (width) wall
func HitsSideWall(x, r, width float64) bool {
	return x > width-r || x < r
}

// HitsCeiling reports whether a ball centered at y crosses y=0
func HitsCeiling(y, r float64) bool {
	return y < r
}

// HitsFloor reports whether a ball centered at y crosses the floor at height
func HitsFloor(y, r, height float64) bool {
	return y > height-r
}

// OverPaddle reports whether x lies strictly within the paddle's horizontal extent
func OverPaddle(x float64, p *components.PaddleComponent) bool {
	return x > p.Left() && x < p.Right()
}

// OverlapsBlock tests the ball's bounding square (center ± r) against the block
// rectangle on both axes
func OverlapsBlock(x, y, r float64, b *components.BlockComponent) bool {
	left, top, right, bottom := b.Bounds()
	return y-r < bottom &&
		y+r > top &&
		x+r > left &&
		x-r < right
}
