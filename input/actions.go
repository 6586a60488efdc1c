package input

// Canonical action names consumed by the built-in transformers. Mappings
// and scripts may introduce additional names; these are just the ones the
// built-ins read.
const (
	// Character
	ActionForward = "forward"
	ActionBack    = "back"
	ActionLeft    = "left"
	ActionRight   = "right"
	ActionJump    = "jump"
	ActionTurn    = "turn" // signed axis, positive turns left

	// Car
	ActionThrottle   = "throttle"
	ActionBrake      = "brake"
	ActionSteerLeft  = "steer_left"
	ActionSteerRight = "steer_right"
	ActionHandbrake  = "handbrake"

	// Airplane
	ActionThrust = "thrust"
	ActionPitch  = "pitch" // signed axes
	ActionYaw    = "yaw"
	ActionRoll   = "roll"
)

// Actions maps action names to values: [0,1] for buttons, [-1,1] for axes.
// Absence of a name means "no input", not zero — transformers must treat a
// missing entry as no contribution.
type Actions map[string]float64

// Get returns the value for name, zero when absent.
func (a Actions) Get(name string) float64 {
	return a[name]
}

// Merge overlays action maps left to right, later maps overriding earlier
// ones on name collision. The inputs are not modified.
func Merge(maps ...Actions) Actions {
	out := make(Actions)
	for _, m := range maps {
		for name, v := range m {
			out[name] = v
		}
	}
	return out
}
