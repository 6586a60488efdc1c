package input

import (
	"github.com/lixenwraith/kinema/parameter"
)

// Map converts a raw snapshot into named action values under the given
// mapping. Pure: no side effects, identical inputs give identical results.
//
// Pressed mapped keys emit the keyboard sensitivity as their value.
// Unpressed or unmapped keys emit nothing. Wheel axes emit only on a
// non-zero delta, normalized by sensitivity and parameter.WheelScale and
// clamped to [-1, 1].
func Map(raw Raw, m Mapping) Actions {
	actions := make(Actions)

	keyboard := m.SensitivityFor(SourceKeyboard)
	for key, action := range m.Keyboard {
		if raw.Pressed(key) {
			actions[action] = keyboard
		}
	}

	wheel := m.SensitivityFor(SourceWheel)
	if m.Wheel.Horizontal != "" && raw.WheelX != 0 {
		actions[m.Wheel.Horizontal] = clampAxis(raw.WheelX * wheel * parameter.WheelScale)
	}
	if m.Wheel.Vertical != "" && raw.WheelY != 0 {
		actions[m.Wheel.Vertical] = clampAxis(raw.WheelY * wheel * parameter.WheelScale)
	}

	return actions
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
