package transform

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// Test the heading is horizontal, unit length, and scaled by speed
func TestAnimalHeadingForce(t *testing.T) {
	a := NewAnimal(rand.New(rand.NewSource(1)))
	a.SetParam("speed", 10)

	out := a.Transform(newTestInput(nil), 1.0/60)
	if out.Force[1] != 0 {
		t.Errorf("Expected horizontal wander force, got %v", out.Force)
	}
	if mag := out.Force.Len(); math.Abs(mag-10) > 1e-9 {
		t.Errorf("Expected force magnitude 10, got %v", mag)
	}
}

// Test the heading holds steady inside the interval and re-rolls after it
func TestAnimalDirectionChange(t *testing.T) {
	a := NewAnimal(rand.New(rand.NewSource(7)))
	a.SetParam("direction_change_interval", 1.0)

	first := a.Transform(newTestInput(nil), 0.4)
	second := a.Transform(newTestInput(nil), 0.4)
	if first.Force != second.Force {
		t.Errorf("Expected steady heading inside interval, got %v then %v", first.Force, second.Force)
	}

	// Crossing the interval re-rolls
	third := a.Transform(newTestInput(nil), 0.4)
	if third.Force == first.Force {
		t.Errorf("Expected a new heading after the interval, still %v", third.Force)
	}
}

// Test actions are ignored entirely
func TestAnimalIgnoresActions(t *testing.T) {
	a := NewAnimal(rand.New(rand.NewSource(3)))

	quiet := a.Transform(newTestInput(nil), 0.01)
	loud := a.Transform(newTestInput(map[string]float64{"forward": 1, "jump": 1}), 0.01)
	if quiet.Force != loud.Force {
		t.Errorf("Expected identical force regardless of actions, got %v vs %v", quiet.Force, loud.Force)
	}
}

// Test two animals with the same seed walk the same heading sequence
func TestAnimalDeterministicWithPinnedSource(t *testing.T) {
	a := NewAnimal(rand.New(rand.NewSource(42)))
	b := NewAnimal(rand.New(rand.NewSource(42)))
	a.SetParam("direction_change_interval", 0.5)
	b.SetParam("direction_change_interval", 0.5)

	for i := 0; i < 8; i++ {
		fa := a.Transform(newTestInput(nil), 0.2)
		fb := b.Transform(newTestInput(nil), 0.2)
		if fa.Force != fb.Force {
			t.Fatalf("Step %d: expected identical sequences, got %v vs %v", i, fa.Force, fb.Force)
		}
	}
}

func TestAnimalEmitsNoTorqueOrImpulse(t *testing.T) {
	a := NewAnimal(rand.New(rand.NewSource(9)))
	out := a.Transform(newTestInput(nil), 0.1)
	if out.Torque != (mgl64.Vec3{}) || out.Impulse != (mgl64.Vec3{}) || out.EarlyExit {
		t.Errorf("Expected force only, got %+v", out)
	}
}
