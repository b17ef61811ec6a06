package engine

import (
	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/constants"
)

// InitialBall returns the ball every episode starts with
func InitialBall() components.BallComponent {
	return components.BallComponent{
		X:      constants.BallStartX,
		Y:      constants.BallStartY,
		Radius: constants.BallRadius,
		DX:     constants.BallStartDX,
		DY:     constants.BallStartDY,
	}
}

// InitialPaddle returns the centered paddle
func InitialPaddle() components.PaddleComponent {
	return components.PaddleComponent{
		X:      constants.PaddleStartX,
		Y:      constants.PaddleY,
		Width:  constants.PaddleWidth,
		Height: constants.PaddleHeight,
	}
}

// InitialBlocks generates the full row, none destroyed
func InitialBlocks() [constants.BlockCount]components.BlockComponent {
	var blocks [constants.BlockCount]components.BlockComponent
	for i := range blocks {
		blocks[i] = components.BlockComponent{
			X:      float64(i+1) * constants.BlockSpacing,
			Y:      constants.BlockRowY,
			Width:  constants.BlockWidth,
			Height: constants.BlockHeight,
		}
	}
	return blocks
}

// Reset restores ball, paddle and blocks to their initial values and starts a
// new episode. All-or-nothing; caller holds the write lock (the tick does).
func (gs *GameState) Reset() {
	gs.restoreEntities()
	gs.Episode++
	gs.EpisodeTick = 0
}

func (gs *GameState) restoreEntities() {
	gs.Ball = InitialBall()
	gs.Paddle = InitialPaddle()
	gs.Blocks = InitialBlocks()
}
