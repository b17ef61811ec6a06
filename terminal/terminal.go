package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal owns a tcell screen for the lifetime of one game session
type Terminal struct {
	screen   tcell.Screen
	initOnce sync.Once
	finiOnce sync.Once
	initErr  error
}

// NewScreen creates the real terminal screen for the given color mode
func NewScreen(mode ColorMode) (tcell.Screen, error) {
	mode.apply()
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return screen, nil
}

// New wraps an uninitialized screen. Tests pass a tcell simulation screen.
func New(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init enters the alternate screen with mouse motion reporting on
func (t *Terminal) Init() error {
	t.initOnce.Do(func() {
		if err := t.screen.Init(); err != nil {
			t.initErr = fmt.Errorf("init screen: %w", err)
			return
		}
		t.screen.EnableMouse(tcell.MouseMotionEvents)
		t.screen.HideCursor()
		t.screen.Clear()
	})
	return t.initErr
}

// Screen returns the underlying screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Fini restores the terminal. Safe to call multiple times.
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		t.screen.DisableMouse()
		t.screen.Fini()
	})
}

// PollEvents feeds screen events to handle until handle returns false, the
// screen is finalized, or ctx is cancelled
func (t *Terminal) PollEvents(ctx context.Context, handle func(tcell.Event) bool) error {
	done := make(chan struct{})
	defer close(done)

	// PollEvent blocks; an interrupt wakes it on cancellation
	go func() {
		select {
		case <-ctx.Done():
			_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		ev := t.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			t.screen.Sync()
		}
		if !handle(ev) {
			return nil
		}
	}
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini cannot be called normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
