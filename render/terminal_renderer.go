package render

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-breakout/components"
	"github.com/lixenwraith/vi-breakout/constants"
	"github.com/lixenwraith/vi-breakout/engine"
)

type cellKind uint8

const (
	kindBlock cellKind = iota + 1
	kindPaddle
	kindBall
)

type rasterCell struct {
	col, row int
	kind     cellKind
}

// Stats counts presented and skipped frames
type Stats struct {
	Drawn   uint64
	Skipped uint64
}

var _ engine.Renderer = (*TerminalRenderer)(nil)

// TerminalRenderer draws snapshots onto a tcell screen.
// Each frame is rasterized first; when the cell layout hashes the same as the
// last presented frame the screen is left alone.
type TerminalRenderer struct {
	mu      sync.Mutex
	screen  tcell.Screen
	palette Palette

	raster  []rasterCell
	hashBuf []byte

	lastHash uint64
	lastView Viewport
	hasFrame bool
	stats    Stats
}

// NewTerminalRenderer creates a renderer for an initialized screen
func NewTerminalRenderer(screen tcell.Screen, palette Palette) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		palette: palette,
		raster:  make([]rasterCell, 0, 256),
	}
}

// Render draws the full arena from snap
func (r *TerminalRenderer) Render(snap engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := NewViewport(r.screen.Size())
	r.rasterize(view, &snap)

	hash := r.hashRaster(view)
	if r.hasFrame && hash == r.lastHash && view == r.lastView {
		r.stats.Skipped++
		return
	}

	r.screen.Clear()
	for _, c := range r.raster {
		r.screen.SetContent(c.col, c.row, r.glyph(c.kind), nil, r.style(c.kind))
	}
	r.screen.Show()

	r.lastHash, r.lastView, r.hasFrame = hash, view, true
	r.stats.Drawn++
}

// Stats returns frame counters
func (r *TerminalRenderer) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Invalidate forces the next frame to be presented
func (r *TerminalRenderer) Invalidate() {
	r.mu.Lock()
	r.hasFrame = false
	r.mu.Unlock()
}

// rasterize fills r.raster, later entries overwrite earlier ones on screen
func (r *TerminalRenderer) rasterize(view Viewport, snap *engine.Snapshot) {
	r.raster = r.raster[:0]

	for _, b := range snap.LiveBlocks() {
		left, top, right, bottom := b.Bounds()
		r.fillRect(view, left, top, right, bottom, kindBlock)
	}

	p := &snap.Paddle
	r.fillRect(view, p.Left(), p.Y-p.Height/2, p.Right(), p.Y+p.Height/2, kindPaddle)

	r.fillCircle(view, &snap.Ball)
}

func (r *TerminalRenderer) fillRect(view Viewport, left, top, right, bottom float64, kind cellKind) {
	c0, c1, okC := view.colSpan(left, right)
	r0, r1, okR := view.rowSpan(top, bottom)
	if !okC || !okR {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.raster = append(r.raster, rasterCell{col: col, row: row, kind: kind})
		}
	}
}

// fillCircle marks cells whose centers lie inside the ball, or the center cell
// when the ball is smaller than a cell
func (r *TerminalRenderer) fillCircle(view Viewport, b *components.BallComponent) {
	c0, c1, okC := view.colSpan(b.X-b.Radius, b.X+b.Radius)
	r0, r1, okR := view.rowSpan(b.Y-b.Radius, b.Y+b.Radius)
	if !okC || !okR {
		return
	}

	before := len(r.raster)
	rr := b.Radius * b.Radius
	for row := r0; row <= r1; row++ {
		dy := view.ArenaY(row) - b.Y
		for col := c0; col <= c1; col++ {
			dx := view.ArenaX(col) - b.X
			if dx*dx+dy*dy <= rr {
				r.raster = append(r.raster, rasterCell{col: col, row: row, kind: kindBall})
			}
		}
	}

	if len(r.raster) == before {
		col, row := view.Col(b.X), view.Row(b.Y)
		if col >= 0 && col < view.Cols && row >= 0 && row < view.Rows {
			r.raster = append(r.raster, rasterCell{col: col, row: row, kind: kindBall})
		}
	}
}

func (r *TerminalRenderer) hashRaster(view Viewport) uint64 {
	buf := r.hashBuf[:0]
	buf = binary.LittleEndian.AppendUint32(buf, uint32(view.Cols))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(view.Rows))
	for _, c := range r.raster {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(c.col))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(c.row))
		buf = append(buf, byte(c.kind))
	}
	r.hashBuf = buf
	return xxhash.Sum64(buf)
}

func (r *TerminalRenderer) glyph(kind cellKind) rune {
	switch kind {
	case kindBall:
		return constants.BallChar
	case kindPaddle:
		return constants.PaddleChar
	default:
		return constants.BlockChar
	}
}

func (r *TerminalRenderer) style(kind cellKind) tcell.Style {
	switch kind {
	case kindBall:
		return r.palette.Ball
	case kindPaddle:
		return r.palette.Paddle
	default:
		return r.palette.Block
	}
}
