package parameter

// Input Scaling
const (
	// WheelScale normalizes accumulated pointer-wheel deltas (~100 per
	// notch) into the [-1, 1] action range before sensitivity is applied.
	WheelScale = 0.01

	// DefaultSensitivity applies when a mapping names no multiplier for a
	// source.
	DefaultSensitivity = 1.0
)

// Default Key Bindings
const (
	KeyForward  = "w"
	KeyLeft     = "a"
	KeyBack     = "s"
	KeyRight    = "d"
	KeyJump     = "space"
	KeyModifier = "shift"
)
