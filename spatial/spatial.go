// Package spatial provides the 3D pose types and quaternion helpers shared
// by the motion pipeline. Orientation is quaternion everywhere inside the
// pipeline; Euler triples exist only in scene documents and cross the
// boundary through the adapter in euler.go.
package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is an entity placement: position plus orientation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityPose returns a pose at the origin with no rotation.
func IdentityPose() Pose {
	return Pose{Rotation: mgl64.QuatIdent()}
}

// Local basis vectors. Forward follows the scene convention of -Z.
var (
	axisForward = mgl64.Vec3{0, 0, -1}
	axisRight   = mgl64.Vec3{1, 0, 0}
	axisUp      = mgl64.Vec3{0, 1, 0}
)

// WorldUp is the global up axis, also the flat-ground contact normal.
var WorldUp = mgl64.Vec3{0, 1, 0}

// Forward returns the entity-local forward axis in world space.
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(axisForward)
}

// Right returns the entity-local right axis in world space.
func Right(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(axisRight)
}

// Up returns the entity-local up axis in world space.
func Up(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(axisUp)
}

// IsZero reports whether every component of v is exactly zero.
func IsZero(v mgl64.Vec3) bool {
	return v == mgl64.Vec3{}
}

// Horizontal projects v onto the ground plane.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}
