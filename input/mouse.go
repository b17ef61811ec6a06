package input

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-breakout/engine"
	"github.com/lixenwraith/vi-breakout/render"
)

var _ engine.InputListener = (*MouseAdapter)(nil)

// Translate parses a tcell event against the current viewport.
// Returns nil for events the game ignores.
func Translate(ev tcell.Event, view render.Viewport) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, _ := ev.Position()
		return &Intent{Type: IntentPointerMove, X: view.ArenaX(col)}
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return &Intent{Type: IntentQuit}
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return &Intent{Type: IntentQuit}
			}
		}
	}
	return nil
}

// MouseAdapter forwards pointer columns to the paddle. The position is passed
// through as-is: no clamping, smoothing or interpolation.
type MouseAdapter struct {
	screen tcell.Screen

	mu   sync.RWMutex
	sink engine.PaddleSink

	onResize func()

	forwarded atomic.Uint64
	dropped   atomic.Uint64
}

// NewMouseAdapter creates an adapter reading viewport size from screen.
// onResize, if set, runs on every resize event.
func NewMouseAdapter(screen tcell.Screen, onResize func()) *MouseAdapter {
	return &MouseAdapter{screen: screen, onResize: onResize}
}

// Attach starts forwarding to sink
func (m *MouseAdapter) Attach(sink engine.PaddleSink) {
	m.mu.Lock()
	m.sink = sink
	m.mu.Unlock()
}

// Detach stops forwarding; later pointer events are dropped
func (m *MouseAdapter) Detach() {
	m.mu.Lock()
	m.sink = nil
	m.mu.Unlock()
}

// HandleEvent processes one event, returns false when the user asked to quit
func (m *MouseAdapter) HandleEvent(ev tcell.Event) bool {
	intent := Translate(ev, render.NewViewport(m.screen.Size()))
	if intent == nil {
		return true
	}

	switch intent.Type {
	case IntentQuit:
		return false

	case IntentResize:
		if m.onResize != nil {
			m.onResize()
		}

	case IntentPointerMove:
		m.mu.RLock()
		sink := m.sink
		m.mu.RUnlock()

		if sink != nil && sink.SetPaddleX(intent.X) {
			m.forwarded.Add(1)
		} else {
			m.dropped.Add(1)
		}
	}
	return true
}

// Counts returns forwarded and dropped pointer events
func (m *MouseAdapter) Counts() (forwarded, dropped uint64) {
	return m.forwarded.Load(), m.dropped.Load()
}
