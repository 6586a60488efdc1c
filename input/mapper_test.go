package input

import (
	"testing"
)

// Test keyboard sensitivity is emitted as the action value
func TestMapKeyboardSensitivity(t *testing.T) {
	m := Mapping{
		Keyboard:    map[string]string{"w": ActionForward},
		Sensitivity: map[string]float64{SourceKeyboard: 2.0},
	}
	raw := Raw{Keys: map[string]bool{"w": true}}

	actions := Map(raw, m)
	if got := actions[ActionForward]; got != 2.0 {
		t.Errorf("Expected forward = 2.0, got %v", got)
	}
	if len(actions) != 1 {
		t.Errorf("Expected 1 action, got %d", len(actions))
	}
}

// Test unmapped pressed keys produce no entries
func TestMapUnmappedKey(t *testing.T) {
	m := Mapping{Keyboard: map[string]string{"w": ActionForward}}
	raw := Raw{Keys: map[string]bool{"a": true}}

	actions := Map(raw, m)
	if len(actions) != 0 {
		t.Errorf("Expected no actions for unmapped key, got %v", actions)
	}
}

// Test unpressed mapped keys produce no entries, not zeros
func TestMapUnpressedKeyAbsent(t *testing.T) {
	m := DefaultMapping()
	actions := Map(Raw{}, m)

	if _, ok := actions[ActionForward]; ok {
		t.Errorf("Expected absence for unpressed key, got entry %v", actions[ActionForward])
	}
}

func TestMapWheelAxes(t *testing.T) {
	m := Mapping{
		Wheel:       Wheel{Horizontal: ActionTurn, Vertical: ActionPitch},
		Sensitivity: map[string]float64{SourceWheel: 1.0},
	}

	cases := []struct {
		name      string
		wx, wy    float64
		turn      float64
		pitch     float64
		wantTurn  bool
		wantPitch bool
	}{
		{"horizontal only", 50, 0, 0.5, 0, true, false},
		{"vertical only", 0, -30, 0, -0.3, false, true},
		{"clamped high", 500, 0, 1.0, 0, true, false},
		{"clamped low", -500, 0, -1.0, 0, true, false},
		{"zero deltas", 0, 0, 0, 0, false, false},
	}

	for _, c := range cases {
		actions := Map(Raw{WheelX: c.wx, WheelY: c.wy}, m)

		v, ok := actions[ActionTurn]
		if ok != c.wantTurn {
			t.Errorf("%s: expected turn presence %v, got %v", c.name, c.wantTurn, ok)
		}
		if ok && v != c.turn {
			t.Errorf("%s: expected turn %v, got %v", c.name, c.turn, v)
		}

		v, ok = actions[ActionPitch]
		if ok != c.wantPitch {
			t.Errorf("%s: expected pitch presence %v, got %v", c.name, c.wantPitch, ok)
		}
		if ok && v != c.pitch {
			t.Errorf("%s: expected pitch %v, got %v", c.name, c.pitch, v)
		}
	}
}

// Test wheel sensitivity scales before clamping
func TestMapWheelSensitivity(t *testing.T) {
	m := Mapping{
		Wheel:       Wheel{Vertical: ActionPitch},
		Sensitivity: map[string]float64{SourceWheel: 0.5},
	}
	actions := Map(Raw{WheelY: 100}, m)

	if got := actions[ActionPitch]; got != 0.5 {
		t.Errorf("Expected pitch 0.5, got %v", got)
	}
}

// Test determinism: identical inputs give identical results
func TestMapDeterministic(t *testing.T) {
	m := DefaultMapping()
	raw := Raw{Keys: map[string]bool{"w": true, "space": true}, WheelX: 25}

	a := Map(raw, m)
	b := Map(raw, m)
	if len(a) != len(b) {
		t.Fatalf("Expected identical maps, got %v vs %v", a, b)
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("Expected %s = %v both times, got %v", k, v, b[k])
		}
	}
}

func TestMergeLaterWins(t *testing.T) {
	a := Actions{ActionForward: 1.0, ActionJump: 1.0}
	b := Actions{ActionForward: 0.25}

	merged := Merge(a, b)
	if merged[ActionForward] != 0.25 {
		t.Errorf("Expected later map to win, got %v", merged[ActionForward])
	}
	if merged[ActionJump] != 1.0 {
		t.Errorf("Expected jump preserved, got %v", merged[ActionJump])
	}

	// Sources untouched
	if a[ActionForward] != 1.0 {
		t.Errorf("Expected source map unmodified, got %v", a[ActionForward])
	}
}

func TestMappingClone(t *testing.T) {
	m := DefaultMapping()
	c := m.Clone()

	c.Keyboard["w"] = ActionBack
	c.Sensitivity[SourceKeyboard] = 9

	if m.Keyboard["w"] != ActionForward {
		t.Errorf("Expected original keyboard table untouched, got %v", m.Keyboard["w"])
	}
	if m.SensitivityFor(SourceKeyboard) != 1.0 {
		t.Errorf("Expected original sensitivity untouched, got %v", m.SensitivityFor(SourceKeyboard))
	}
}
