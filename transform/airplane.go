package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/input"
	"github.com/lixenwraith/kinema/parameter"
	"github.com/lixenwraith/kinema/spatial"
)

// NewAirplane returns the flight variant with default parameters.
func NewAirplane() *Transformer {
	return &Transformer{
		kind:     KindAirplane,
		Priority: parameter.PriorityAirplane,
		Enabled:  true,
		airplane: defaultAirplaneParams(),
	}
}

func (t *Transformer) airplaneTransform(in *Input) Output {
	p := t.airplane
	var out Output

	if thrust := in.Action(input.ActionThrust); thrust != 0 {
		out.Force = spatial.Forward(in.Rotation).Mul(thrust * p.Thrust)
	}

	speed := in.Velocity.Len()
	up := mgl64.Vec3{0, 1, 0}

	// Lift perpendicular to the velocity direction, magnitude speed * coefficient.
	// Near-zero velocity has no usable direction; degenerate to vertical.
	liftDir := up
	if speed > parameter.AirplaneLiftSpeedEpsilon {
		dir := in.Velocity.Mul(1 / speed)
		perp := up.Sub(dir.Mul(up.Dot(dir)))
		if l := perp.Len(); l > parameter.AirplaneLiftSpeedEpsilon {
			liftDir = perp.Mul(1 / l)
		}

		// Drag opposes motion, quadratic in speed
		out.Force = out.Force.Sub(dir.Mul(speed * speed * p.DragCoefficient))
	}
	out.Force = out.Force.Add(liftDir.Mul(speed * p.LiftCoefficient))

	// Wind is additive
	out.Force = out.Force.Add(in.WindVec())

	pitch := in.Action(input.ActionPitch) * p.PitchSensitivity
	yaw := in.Action(input.ActionYaw) * p.YawSensitivity
	roll := in.Action(input.ActionRoll) * p.RollSensitivity
	if pitch != 0 || yaw != 0 || roll != 0 {
		out.Torque = mgl64.Vec3{pitch, yaw, roll}
	}

	return out
}
