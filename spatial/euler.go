package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Scene documents author rotation as XYZ-order Euler degrees; the runtime is
// quaternion only. These two functions are the entire conversion surface.

// EulerToQuat converts an XYZ-order Euler triple in degrees to a quaternion.
func EulerToQuat(deg mgl64.Vec3) mgl64.Quat {
	return mgl64.AnglesToQuat(
		mgl64.DegToRad(deg[0]),
		mgl64.DegToRad(deg[1]),
		mgl64.DegToRad(deg[2]),
		mgl64.XYZ,
	)
}

// QuatToEuler converts a quaternion to an XYZ-order Euler triple in degrees.
// At the gimbal singularity (|pitch| = 90°) roll is folded into yaw and the
// Z angle is reported as zero.
func QuatToEuler(q mgl64.Quat) mgl64.Vec3 {
	q = q.Normalize()
	x, y, z, w := q.X(), q.Y(), q.Z(), q.W

	// Rotation matrix terms for the XYZ extraction
	m11 := 1 - 2*(y*y+z*z)
	m12 := 2 * (x*y - w*z)
	m13 := 2 * (x*z + w*y)
	m22 := 1 - 2*(x*x+z*z)
	m23 := 2 * (y*z - w*x)
	m32 := 2 * (y*z + w*x)
	m33 := 1 - 2*(x*x+y*y)

	var ex, ey, ez float64
	ey = math.Asin(mgl64.Clamp(m13, -1, 1))
	if math.Abs(m13) < 0.9999999 {
		ex = math.Atan2(-m23, m33)
		ez = math.Atan2(-m12, m11)
	} else {
		ex = math.Atan2(m32, m22)
		ez = 0
	}

	return mgl64.Vec3{
		mgl64.RadToDeg(ex),
		mgl64.RadToDeg(ey),
		mgl64.RadToDeg(ez),
	}
}
