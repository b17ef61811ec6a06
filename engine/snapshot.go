package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/constants"
)

// Snapshot is a value copy of GameState handed to renderers once per tick.
// Blocks is an array so the copy shares nothing with the store.
type Snapshot struct {
	Tick        uint64
	Episode     uint64
	EpisodeTick uint64

	Ball   components.BallComponent
	Paddle components.PaddleComponent
	Blocks [constants.BlockCount]components.BlockComponent
}

// LiveBlocks returns the blocks still in play, in index order
func (s Snapshot) LiveBlocks() []components.BlockComponent {
	live := make([]components.BlockComponent, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if !b.Destroyed {
			live = append(live, b)
		}
	}
	return live
}

// Fingerprint hashes entity geometry and block status, ignoring tick counters.
// Two snapshots with equal fingerprints describe the same arena.
func (s Snapshot) Fingerprint() uint64 {
	// 5 ball floats, 4 paddle floats, 4 floats + flag per block
	buf := make([]byte, 0, 8*9+len(s.Blocks)*(8*4+1))

	putFloat := func(f float64) {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
	}

	putFloat(s.Ball.X)
	putFloat(s.Ball.Y)
	putFloat(s.Ball.Radius)
	putFloat(s.Ball.DX)
	putFloat(s.Ball.DY)

	putFloat(s.Paddle.X)
	putFloat(s.Paddle.Y)
	putFloat(s.Paddle.Width)
	putFloat(s.Paddle.Height)

	for _, b := range s.Blocks {
		putFloat(b.X)
		putFloat(b.Y)
		putFloat(b.Width)
		putFloat(b.Height)
		if b.Destroyed {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}

	return xxhash.Sum64(buf)
}
