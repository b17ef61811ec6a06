package terminal

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	term := New(sim)
	require.NoError(t, term.Init())
	sim.SetSize(80, 24)
	t.Cleanup(term.Fini)
	return term, sim
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorModeAuto, false},
		{"auto", ColorModeAuto, false},
		{"256", ColorMode256, false},
		{"TrueColor", ColorModeTrueColor, false},
		{"24bit", ColorModeTrueColor, false},
		{"cga", ColorModeAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPollEventsStopsWhenHandlerDeclines(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	var keys []tcell.Key
	err := term.PollEvents(context.Background(), func(ev tcell.Event) bool {
		if k, ok := ev.(*tcell.EventKey); ok {
			keys = append(keys, k.Key())
			return k.Key() != tcell.KeyEscape
		}
		return true
	})

	require.NoError(t, err)
	assert.Equal(t, []tcell.Key{tcell.KeyRune, tcell.KeyEscape}, keys)
}

func TestPollEventsReturnsOnCancel(t *testing.T) {
	term, _ := newSimTerminal(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- term.PollEvents(ctx, func(tcell.Event) bool { return true })
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}

func TestFiniIsIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t)
	assert.NotPanics(t, func() {
		term.Fini()
		term.Fini()
	})
}

func TestEmergencyResetWritesRestoreSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	assert.Contains(t, out, string(csiCursorShow))
	assert.Contains(t, out, string(csiAltScreenExit))
	assert.Contains(t, out, string(csiMouseMotionOff))
}
