package input

import (
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-breakout/render"
)

type recordingSink struct {
	mu  sync.Mutex
	xs  []float64
	ack bool
}

func (s *recordingSink) SetPaddleX(x float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.xs = append(s.xs, x)
	return s.ack
}

func newAdapter(t *testing.T, onResize func()) *MouseAdapter {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)
	return NewMouseAdapter(sim, onResize)
}

func TestTranslate(t *testing.T) {
	view := render.NewViewport(80, 24)

	tests := []struct {
		name string
		ev   tcell.Event
		want *Intent
	}{
		{"Mouse move", tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone), &Intent{Type: IntentPointerMove, X: 405}},
		{"Mouse at first column", tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone), &Intent{Type: IntentPointerMove, X: 5}},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), &Intent{Type: IntentQuit}},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), &Intent{Type: IntentQuit}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), &Intent{Type: IntentQuit}},
		{"Other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), nil},
		{"Resize", tcell.NewEventResize(100, 30), &Intent{Type: IntentResize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.ev, view))
		})
	}
}

func TestMouseAdapterForwardsUnclamped(t *testing.T) {
	a := newAdapter(t, nil)
	sink := &recordingSink{ack: true}
	a.Attach(sink)

	assert.True(t, a.HandleEvent(tcell.NewEventMouse(0, 5, tcell.ButtonNone, tcell.ModNone)))
	assert.True(t, a.HandleEvent(tcell.NewEventMouse(79, 5, tcell.Button1, tcell.ModNone)))
	assert.True(t, a.HandleEvent(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone)))

	assert.Equal(t, []float64{5, 795, 125}, sink.xs)
	forwarded, dropped := a.Counts()
	assert.Equal(t, uint64(3), forwarded)
	assert.Zero(t, dropped)
}

func TestMouseAdapterDetach(t *testing.T) {
	a := newAdapter(t, nil)
	sink := &recordingSink{ack: true}

	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	a.Attach(sink)
	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	a.Detach()
	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))

	assert.Len(t, sink.xs, 1)
	forwarded, dropped := a.Counts()
	assert.Equal(t, uint64(1), forwarded)
	assert.Equal(t, uint64(2), dropped)
}

func TestMouseAdapterRejectedWriteCountsAsDropped(t *testing.T) {
	a := newAdapter(t, nil)
	a.Attach(&recordingSink{ack: false})

	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))

	_, dropped := a.Counts()
	assert.Equal(t, uint64(1), dropped)
}

func TestMouseAdapterQuitAndResize(t *testing.T) {
	resized := 0
	a := newAdapter(t, func() { resized++ })

	assert.True(t, a.HandleEvent(tcell.NewEventResize(120, 40)))
	assert.Equal(t, 1, resized)
	assert.False(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
