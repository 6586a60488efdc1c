package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinema/input"
)

// keyHold is how long a key event counts as "still pressed". Terminals
// report repeats, not releases, so a held key is one whose last event is
// recent enough.
const keyHold = 150 * time.Millisecond

// wheelNotch is the raw delta one wheel click accumulates. With the
// default wheel scale this lands a quarter of full deflection per click.
const wheelNotch = 25.0

// termSource adapts tcell events into the pipeline's Raw snapshots. Events
// and Refresh both run on the sandbox's main goroutine, so no locking.
type termSource struct {
	held    map[string]time.Time
	wheelX  float64
	wheelY  float64
	current input.Raw
}

func newTermSource() *termSource {
	return &termSource{held: make(map[string]time.Time)}
}

func (s *termSource) keyEvent(ev *tcell.EventKey) {
	now := time.Now()
	if ev.Modifiers()&tcell.ModShift != 0 {
		s.held["shift"] = now
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch r := ev.Rune(); r {
	case ' ':
		s.held["space"] = now
	default:
		if r >= 'a' && r <= 'z' {
			s.held[string(r)] = now
		}
	}
}

func (s *termSource) mouseEvent(ev *tcell.EventMouse) {
	btns := ev.Buttons()
	if btns&tcell.WheelUp != 0 {
		s.wheelY += wheelNotch
	}
	if btns&tcell.WheelDown != 0 {
		s.wheelY -= wheelNotch
	}
	if btns&tcell.WheelRight != 0 {
		s.wheelX += wheelNotch
	}
	if btns&tcell.WheelLeft != 0 {
		s.wheelX -= wheelNotch
	}
}

// Refresh latches the frame snapshot: keys seen within the hold window
// plus the wheel deltas accumulated since the previous frame.
func (s *termSource) Refresh() {
	keys := make(map[string]bool, len(s.held))
	cutoff := time.Now().Add(-keyHold)
	for key, at := range s.held {
		if at.After(cutoff) {
			keys[key] = true
		} else {
			delete(s.held, key)
		}
	}
	s.current = input.Raw{Keys: keys, WheelX: s.wheelX, WheelY: s.wheelY}
	s.wheelX = 0
	s.wheelY = 0
}

func (s *termSource) Snapshot() input.Raw {
	return s.current
}
