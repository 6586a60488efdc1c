package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/input"
	"github.com/lixenwraith/kinema/parameter"
	"github.com/lixenwraith/kinema/spatial"
)

// NewCharacter returns the walking variant with default parameters.
func NewCharacter() *Transformer {
	return &Transformer{
		kind:      KindCharacter,
		Priority:  parameter.PriorityCharacter,
		Enabled:   true,
		character: defaultCharacterParams(),
	}
}

func (t *Transformer) characterTransform(in *Input) Output {
	p := t.character
	var out Output

	move := in.Action(input.ActionForward) - in.Action(input.ActionBack)
	strafe := in.Action(input.ActionRight) - in.Action(input.ActionLeft)
	if move != 0 {
		out.Force = out.Force.Add(spatial.Forward(in.Rotation).Mul(move * p.WalkSpeed))
	}
	if strafe != 0 {
		out.Force = out.Force.Add(spatial.Right(in.Rotation).Mul(strafe * p.WalkSpeed))
	}

	// Jump is an impulse, and only from the ground
	if jump := in.Action(input.ActionJump); jump > 0 && in.GroundedFlag() {
		out.Impulse = mgl64.Vec3{0, p.JumpForce * jump, 0}
	}

	if turn := in.Action(input.ActionTurn); turn != 0 {
		out.Torque = mgl64.Vec3{0, turn * p.TurnSpeed, 0}
	}

	return out
}
