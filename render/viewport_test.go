package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportMapping(t *testing.T) {
	v := NewViewport(80, 24)

	assert.Equal(t, 10.0, v.CellWidth())
	assert.Equal(t, 25.0, v.CellHeight())
	assert.Equal(t, 10, v.Col(100))
	assert.Equal(t, 4, v.Row(100))
	assert.Equal(t, 405.0, v.ArenaX(40))
	assert.Equal(t, -1, v.Col(-0.5), "columns are not clipped")
}

func TestViewportDegenerateSize(t *testing.T) {
	v := NewViewport(0, -3)
	assert.Equal(t, Viewport{Cols: 1, Rows: 1}, v)
}

func TestColSpanClipping(t *testing.T) {
	v := NewViewport(80, 24)

	tests := []struct {
		name        string
		lo, hi      float64
		first, last int
		ok          bool
	}{
		{"Inside", 362.5, 437.5, 36, 43, true},
		{"Exact boundaries", 70, 170, 7, 16, true},
		{"Past left edge", -57.5, 17.5, 0, 1, true},
		{"Past right edge", 782.5, 857.5, 78, 79, true},
		{"Fully off screen", -137.5, -62.5, 0, -7, false},
		{"Thinner than a cell", 101, 102, 10, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, ok := v.colSpan(tt.lo, tt.hi)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.first, first)
				assert.Equal(t, tt.last, last)
			}
		})
	}
}
