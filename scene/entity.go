// Package scene pairs loaded entities with their visual objects and
// optional physics bodies, and drives the per-frame pipeline over them:
// transformer execution before the physics step, pose synchronization
// after it.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/script"
	"github.com/lixenwraith/kinema/spatial"
	"github.com/lixenwraith/kinema/transform"
)

// PhysicsSpec describes the body a simulated entity gets. Zero Mass and
// Radius fall back to the world's defaults.
type PhysicsSpec struct {
	Mass   float64 `json:"mass,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Static bool    `json:"static,omitempty"`
}

// Entity is one logical record from a loaded scene document. Orientation
// is quaternion here; the document's Euler triple is converted at parse
// time and never carried further.
type Entity struct {
	ID       string
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	Physics      *PhysicsSpec
	Transformers []transform.Config
	Hooks        script.Hooks
}

// Pose returns the record's pose.
func (e *Entity) Pose() spatial.Pose {
	return spatial.Pose{Position: e.Position, Rotation: e.Rotation}
}

// Visual is the per-entity render handle the pipeline writes poses onto.
// The scene graph behind it is an external collaborator.
type Visual interface {
	SetPosition(p mgl64.Vec3)
	SetRotation(q mgl64.Quat)
	SetScale(s mgl64.Vec3)
	Dispose()
}
