package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/input"
	"github.com/lixenwraith/kinema/parameter"
	"github.com/lixenwraith/kinema/spatial"
)

// NewCar returns the driving variant with default parameters.
func NewCar() *Transformer {
	return &Transformer{
		kind:     KindCar,
		Priority: parameter.PriorityCar,
		Enabled:  true,
		car:      defaultCarParams(),
	}
}

func (t *Transformer) carTransform(in *Input) Output {
	p := t.car
	var out Output

	drive := (in.Action(input.ActionThrottle) - in.Action(input.ActionBrake)) * p.Acceleration
	if drive != 0 {
		out.Force = spatial.Forward(in.Rotation).Mul(drive)
	}

	speed := in.Velocity.Len()

	// Steering authority scales with speed, floored so a parked car can
	// still turn and saturating at full authority
	if steer := in.Action(input.ActionSteerRight) - in.Action(input.ActionSteerLeft); steer != 0 {
		factor := speed / parameter.CarSteeringSaturation
		if factor > 1 {
			factor = 1
		}
		if factor < parameter.CarSteeringFloor {
			factor = parameter.CarSteeringFloor
		}
		out.Torque = mgl64.Vec3{0, steer * p.Steering * factor, 0}
	}

	// Handbrake opposes the current velocity direction. No general damping
	// here: body-level damping is the physics engine's job.
	if hb := in.Action(input.ActionHandbrake); hb > 0 && speed > 0 {
		dir := in.Velocity.Mul(1 / speed)
		out.Force = out.Force.Sub(dir.Mul(speed * p.HandbrakeMultiplier * p.Acceleration * hb))
	}

	return out
}
