package render

import (
	"math"

	"github.com/lixenwraith/vi-breakout/constants"
)

// Viewport maps arena coordinates onto a grid of terminal cells.
// The whole 800x600 arena is stretched over the screen.
type Viewport struct {
	Cols, Rows int
}

// NewViewport creates a viewport, degenerate sizes collapse to one cell
func NewViewport(cols, rows int) Viewport {
	return Viewport{Cols: max(cols, 1), Rows: max(rows, 1)}
}

// CellWidth is the arena width covered by one column
func (v Viewport) CellWidth() float64 { return constants.ArenaWidth / float64(v.Cols) }

// CellHeight is the arena height covered by one row
func (v Viewport) CellHeight() float64 { return constants.ArenaHeight / float64(v.Rows) }

// Col returns the column containing arena x, unclipped
func (v Viewport) Col(x float64) int { return int(math.Floor(x / v.CellWidth())) }

// Row returns the row containing arena y, unclipped
func (v Viewport) Row(y float64) int { return int(math.Floor(y / v.CellHeight())) }

// ArenaX returns the arena x at the center of a column; the inverse used for pointer input
func (v Viewport) ArenaX(col int) float64 { return (float64(col) + 0.5) * v.CellWidth() }

// ArenaY returns the arena y at the center of a row
func (v Viewport) ArenaY(row int) float64 { return (float64(row) + 0.5) * v.CellHeight() }

// colSpan returns the columns covered by [lo, hi), clipped to the screen
func (v Viewport) colSpan(lo, hi float64) (first, last int, ok bool) {
	return span(lo, hi, v.CellWidth(), v.Cols)
}

// rowSpan returns the rows covered by [lo, hi), clipped to the screen
func (v Viewport) rowSpan(lo, hi float64) (first, last int, ok bool) {
	return span(lo, hi, v.CellHeight(), v.Rows)
}

func span(lo, hi, size float64, count int) (first, last int, ok bool) {
	first = int(math.Floor(lo / size))
	last = int(math.Ceil(hi/size)) - 1
	if last < first {
		last = first
	}
	first = max(first, 0)
	last = min(last, count-1)
	return first, last, first <= last
}
