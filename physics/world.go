// Package physics defines the engine boundary the motion pipeline drives:
// per-entity force/impulse/torque application, a synchronous step, and
// cached pose readback. KineticWorld is the in-repo reference engine; a
// production integration substitutes its own World.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a pose snapshot cached at step time. Consumers read these
// instead of live body handles so a foreign-memory engine behind World
// cannot alias mid-frame.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Contact reports one overlapping body pair from the last step.
type Contact struct {
	A string
	B string
}

// Body is the live handle for one simulated entity.
type Body interface {
	Position() mgl64.Vec3
	Rotation() mgl64.Quat
	Velocity() mgl64.Vec3
	AngularVelocity() mgl64.Vec3
	Grounded() bool

	SetPosition(p mgl64.Vec3)
	SetRotation(q mgl64.Quat)
}

// World is the engine surface the pipeline consumes. Apply calls between
// steps accumulate; Step integrates and refreshes the cached transforms
// and contact set. Lookups for unknown ids are no-ops or (zero, false),
// never panics. Dispose is idempotent.
type World interface {
	ApplyForce(id string, f mgl64.Vec3)
	ApplyImpulse(id string, imp mgl64.Vec3)
	ApplyTorque(id string, t mgl64.Vec3)

	Body(id string) (Body, bool)
	CachedTransform(id string) (Transform, bool)
	SetPosition(id string, p mgl64.Vec3)

	Step(dt float64)
	Contacts() []Contact
	Dispose()
}
