package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/input"
)

func TestAirplaneThrustAlongForward(t *testing.T) {
	plane := NewAirplane()
	plane.SetParam("thrust", 50)

	out := plane.Transform(newTestInput(input.Actions{input.ActionThrust: 1.0}), 1.0/60)
	if out.Force != (mgl64.Vec3{0, 0, -50}) {
		t.Errorf("Expected thrust along -Z at rest, got %v", out.Force)
	}
}

// Test lift is perpendicular to the velocity direction and scales with speed
func TestAirplaneLift(t *testing.T) {
	plane := NewAirplane()
	plane.SetParam("lift_coefficient", 0.5)
	plane.SetParam("drag_coefficient", 0)

	in := newTestInput(nil)
	in.Velocity = mgl64.Vec3{0, 0, -10}

	out := plane.Transform(in, 1.0/60)
	// Level flight: lift is straight up, magnitude speed * coefficient
	if math.Abs(out.Force[1]-5) > 1e-9 || math.Abs(out.Force[0]) > 1e-9 || math.Abs(out.Force[2]) > 1e-9 {
		t.Errorf("Expected pure vertical lift {0 5 0}, got %v", out.Force)
	}

	// Lift stays perpendicular to an inclined velocity
	in.Velocity = mgl64.Vec3{0, 7, -7}
	out = plane.Transform(in, 1.0/60)
	if dot := out.Force.Dot(in.Velocity); math.Abs(dot) > 1e-9 {
		t.Errorf("Expected lift perpendicular to velocity, dot %v", dot)
	}
}

// Test drag opposes velocity quadratically
func TestAirplaneDrag(t *testing.T) {
	plane := NewAirplane()
	plane.SetParam("lift_coefficient", 0)
	plane.SetParam("drag_coefficient", 0.1)

	in := newTestInput(nil)
	in.Velocity = mgl64.Vec3{4, 0, 0}

	out := plane.Transform(in, 1.0/60)
	// speed² * coefficient = 16 * 0.1 opposing +X
	if math.Abs(out.Force[0]+1.6) > 1e-9 {
		t.Errorf("Expected drag {-1.6 0 0}, got %v", out.Force)
	}
}

func TestAirplaneWindAdditive(t *testing.T) {
	plane := NewAirplane()
	plane.SetParam("lift_coefficient", 0)
	plane.SetParam("drag_coefficient", 0)

	in := newTestInput(nil)
	in.Environment = &Environment{Wind: mgl64.Vec3{2, 0, 1}}

	out := plane.Transform(in, 1.0/60)
	if out.Force != (mgl64.Vec3{2, 0, 1}) {
		t.Errorf("Expected the wind term alone, got %v", out.Force)
	}
}

func TestAirplaneTorqueSensitivities(t *testing.T) {
	plane := NewAirplane()
	plane.SetParam("pitch_sensitivity", 3)
	plane.SetParam("yaw_sensitivity", 2)
	plane.SetParam("roll_sensitivity", 4)

	out := plane.Transform(newTestInput(input.Actions{
		input.ActionPitch: 1.0,
		input.ActionYaw:   -0.5,
		input.ActionRoll:  0.25,
	}), 1.0/60)

	if out.Torque != (mgl64.Vec3{3, -1, 1}) {
		t.Errorf("Expected torque {3 -1 1}, got %v", out.Torque)
	}
}

// Test repeated identical calls are bit-identical (no hidden state)
func TestAirplanePure(t *testing.T) {
	plane := NewAirplane()
	in := newTestInput(input.Actions{input.ActionThrust: 0.6, input.ActionRoll: -0.2})
	in.Velocity = mgl64.Vec3{3, 1, -9}
	in.Environment = &Environment{Wind: mgl64.Vec3{0.5, 0, 0}}

	first := plane.Transform(in, 1.0/60)
	for i := 0; i < 5; i++ {
		if again := plane.Transform(in, 1.0/60); again != first {
			t.Fatalf("Expected bit-identical output, got %+v then %+v", first, again)
		}
	}
}
