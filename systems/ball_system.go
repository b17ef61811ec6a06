package systems

import (
	"github.com/lixenwraith/vi-breakout/constants"
	"github.com/lixenwraith/vi-breakout/engine"
	"github.com/lixenwraith/vi-breakout/physics"
)

// BallSystem integrates the ball and resolves its contacts, one pass per tick.
//
// Every decision in a tick is taken against the projected position (current
// position plus pre-move velocity). The position is committed last, with the
// velocity as left by the resolution. Order: side walls, ceiling or floor,
// blocks, commit.
type BallSystem struct {
	arenaWidth  float64
	arenaHeight float64
}

// NewBallSystem creates the resolver for the standard arena
func NewBallSystem() *BallSystem {
	return &BallSystem{
		arenaWidth:  constants.ArenaWidth,
		arenaHeight: constants.ArenaHeight,
	}
}

// Update runs one tick against gs, caller holds the write lock
func (s *BallSystem) Update(gs *engine.GameState) engine.TickReport {
	report := engine.TickReport{DestroyedBlock: engine.NoBlock}

	ball := &gs.Ball
	r := ball.Radius
	nx, ny := physics.Project(ball)

	if physics.HitsSideWall(nx, r, s.arenaWidth) {
		physics.ReflectX(ball)
		report.WallBounce = true
	}

	if physics.HitsCeiling(ny, r) {
		physics.ReflectY(ball)
		report.CeilingBounce = true
	} else if physics.HitsFloor(ny, r, s.arenaHeight) {
		if physics.OverPaddle(nx, &gs.Paddle) {
			physics.ForceUp(ball)
			report.PaddleBounce = true
		} else {
			// Missed: fresh episode, nothing else this tick
			gs.Reset()
			report.Missed = true
			return report
		}
	}

	// One block per tick at most, first in index order wins
	for i := range gs.Blocks {
		block := &gs.Blocks[i]
		if block.Destroyed {
			continue
		}
		if physics.OverlapsBlock(nx, ny, r, block) {
			physics.ReflectY(ball)
			block.Destroy()
			report.DestroyedBlock = i
			break
		}
	}

	physics.Advance(ball)
	return report
}
