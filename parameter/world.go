package parameter

// Reference World Defaults
const (
	WorldGravity = -9.81

	// Body-level damping, applied by the physics step (transformers must
	// never damp manually)
	WorldLinearDamping  = 0.5
	WorldAngularDamping = 1.0

	WorldDefaultMass   = 1.0
	WorldDefaultRadius = 0.5

	// WorldGroundEpsilon is the contact tolerance for the ground plane
	WorldGroundEpsilon = 1e-6
)

// Frame Pacing
const (
	DefaultFrameRate = 60
	// MaxFrameDelta clamps pathological deltas after stalls (seconds)
	MaxFrameDelta = 0.25
)
