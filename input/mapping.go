package input

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/kinema/parameter"
)

// Input sources named by sensitivity tables.
const (
	SourceKeyboard = "keyboard"
	SourceWheel    = "wheel"
)

// Wheel assigns the two pointer-wheel axes to action names. An empty name
// leaves that axis unmapped.
type Wheel struct {
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
}

// Mapping is the declarative input configuration: key to action-name table,
// wheel-axis assignments, and per-source sensitivity multipliers. A Mapping
// is immutable once attached to a transformer; replace it whole via the
// transformer's setter.
type Mapping struct {
	Keyboard    map[string]string  `json:"keyboard,omitempty"`
	Wheel       Wheel              `json:"wheel,omitempty"`
	Sensitivity map[string]float64 `json:"sensitivity,omitempty"`
}

// SensitivityFor returns the multiplier for source, defaulting when the
// mapping names none.
func (m Mapping) SensitivityFor(source string) float64 {
	if s, ok := m.Sensitivity[source]; ok {
		return s
	}
	return parameter.DefaultSensitivity
}

// Clone returns a deep copy so callers can derive variants without
// mutating a shared mapping.
func (m Mapping) Clone() Mapping {
	out := Mapping{Wheel: m.Wheel}
	if m.Keyboard != nil {
		out.Keyboard = make(map[string]string, len(m.Keyboard))
		for k, v := range m.Keyboard {
			out.Keyboard[k] = v
		}
	}
	if m.Sensitivity != nil {
		out.Sensitivity = make(map[string]float64, len(m.Sensitivity))
		for k, v := range m.Sensitivity {
			out.Sensitivity[k] = v
		}
	}
	return out
}

// DefaultMapping returns the WASD preset used when a scene names no
// override: movement on WASD, jump on space, signed turn on the horizontal
// wheel, pitch on the vertical wheel.
func DefaultMapping() Mapping {
	return Mapping{
		Keyboard: map[string]string{
			parameter.KeyForward: ActionForward,
			parameter.KeyBack:    ActionBack,
			parameter.KeyLeft:    ActionLeft,
			parameter.KeyRight:   ActionRight,
			parameter.KeyJump:    ActionJump,
		},
		Wheel: Wheel{
			Horizontal: ActionTurn,
			Vertical:   ActionPitch,
		},
		Sensitivity: map[string]float64{
			SourceKeyboard: parameter.DefaultSensitivity,
			SourceWheel:    parameter.DefaultSensitivity,
		},
	}
}

// ParseMapping decodes a JSON mapping document.
func ParseMapping(data []byte) (Mapping, error) {
	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return Mapping{}, fmt.Errorf("parse input mapping: %w", err)
	}
	return m, nil
}
