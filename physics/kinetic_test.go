package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/spatial"
)

// freeWorld has no gravity, damping, or floor; motion comes only from
// explicit applies.
func freeWorld() *KineticWorld {
	return NewKineticWorld(WorldConfig{})
}

func TestBodyDefaults(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	b := w.AddBody("crate", BodySpec{Position: mgl64.Vec3{1, 2, 3}})
	if b.Rotation() != mgl64.QuatIdent() {
		t.Errorf("Expected identity rotation, got %v", b.Rotation())
	}

	// Cached pose serves reads before the first step
	tr, ok := w.CachedTransform("crate")
	if !ok || tr.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Expected primed cache, got %v %v", tr, ok)
	}

	// Default mass 1: unit impulse produces unit velocity
	w.ApplyImpulse("crate", mgl64.Vec3{1, 0, 0})
	if b.Velocity() != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Expected default mass 1, got velocity %v", b.Velocity())
	}
}

func TestGravityIntegration(t *testing.T) {
	w := NewKineticWorld(WorldConfig{Gravity: mgl64.Vec3{0, -10, 0}})
	defer w.Dispose()

	b := w.AddBody("ball", BodySpec{Position: mgl64.Vec3{0, 100, 0}})
	w.Step(0.1)

	// Semi-implicit Euler: v first, then p with the new v
	if math.Abs(b.Velocity()[1]+1.0) > 1e-12 {
		t.Errorf("Expected velocity -1, got %v", b.Velocity()[1])
	}
	if math.Abs(b.Position()[1]-99.9) > 1e-12 {
		t.Errorf("Expected position 99.9, got %v", b.Position()[1])
	}
}

func TestImpulseImmediate(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	b := w.AddBody("heavy", BodySpec{Mass: 2})
	w.ApplyImpulse("heavy", mgl64.Vec3{2, 0, 0})

	// No step needed: v += impulse / mass
	if b.Velocity() != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Expected velocity {1 0 0}, got %v", b.Velocity())
	}
}

func TestForceScaledByMass(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	b := w.AddBody("heavy", BodySpec{Mass: 2})
	w.ApplyForce("heavy", mgl64.Vec3{10, 0, 0})
	w.Step(0.1)

	if math.Abs(b.Velocity()[0]-0.5) > 1e-12 {
		t.Errorf("Expected velocity 0.5, got %v", b.Velocity()[0])
	}
}

// Test accumulated forces are consumed by the step, not carried over
func TestForcesClearAfterStep(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	b := w.AddBody("ball", BodySpec{})
	w.ApplyForce("ball", mgl64.Vec3{5, 0, 0})
	w.Step(0.1)
	v1 := b.Velocity()

	w.Step(0.1)
	if b.Velocity() != v1 {
		t.Errorf("Expected velocity unchanged without new force, got %v then %v", v1, b.Velocity())
	}
}

func TestLinearDamping(t *testing.T) {
	w := NewKineticWorld(WorldConfig{LinearDamping: 1.0})
	defer w.Dispose()

	b := w.AddBody("ball", BodySpec{})
	w.ApplyImpulse("ball", mgl64.Vec3{10, 0, 0})
	w.Step(0.5)

	// v' = v / (1 + damping*dt) = 10 / 1.5
	want := 10.0 / 1.5
	if math.Abs(b.Velocity()[0]-want) > 1e-9 {
		t.Errorf("Expected damped velocity %v, got %v", want, b.Velocity()[0])
	}
}

func TestGroundClampAndGroundedFlag(t *testing.T) {
	w := NewKineticWorld(WorldConfig{
		Gravity:     mgl64.Vec3{0, -9.81, 0},
		GroundPlane: true,
	})
	defer w.Dispose()

	b := w.AddBody("walker", BodySpec{Position: mgl64.Vec3{0, 3, 0}, Radius: 0.5})

	w.Step(1.0 / 60)
	if b.Grounded() {
		t.Errorf("Expected airborne after first step")
	}

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}
	if !b.Grounded() {
		t.Errorf("Expected grounded after falling")
	}
	if b.Position()[1] != 0.5 {
		t.Errorf("Expected clamped to radius height, got %v", b.Position()[1])
	}
	if b.Velocity()[1] != 0 {
		t.Errorf("Expected vertical velocity zeroed on contact, got %v", b.Velocity()[1])
	}
}

func TestStaticBodyInert(t *testing.T) {
	w := NewKineticWorld(WorldConfig{Gravity: mgl64.Vec3{0, -9.81, 0}})
	defer w.Dispose()

	b := w.AddBody("wall", BodySpec{Position: mgl64.Vec3{5, 1, 0}, Static: true})
	w.ApplyForce("wall", mgl64.Vec3{100, 0, 0})
	w.ApplyImpulse("wall", mgl64.Vec3{100, 0, 0})
	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60)
	}

	if b.Position() != (mgl64.Vec3{5, 1, 0}) || b.Velocity() != (mgl64.Vec3{}) {
		t.Errorf("Expected static body inert, got pos %v vel %v", b.Position(), b.Velocity())
	}
}

func TestTorqueRotatesBody(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	b := w.AddBody("top", BodySpec{})
	w.ApplyTorque("top", mgl64.Vec3{0, 1, 0})
	w.Step(1.0)
	// Angular velocity held: integrate yaw for ~1 radian total
	for i := 0; i < 100; i++ {
		w.Step(0.01)
	}

	q := b.Rotation()
	if math.Abs(q.Len()-1) > 1e-9 {
		t.Errorf("Expected unit quaternion, got length %v", q.Len())
	}

	// Positive yaw turns forward (-Z) toward -X
	fwd := spatial.Forward(q)
	if fwd[0] > -0.5 {
		t.Errorf("Expected forward rotated toward -X, got %v", fwd)
	}
}

func TestContactsSphereOverlap(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	w.AddBody("a", BodySpec{Position: mgl64.Vec3{0, 0, 0}, Radius: 0.5})
	w.AddBody("b", BodySpec{Position: mgl64.Vec3{0.9, 0, 0}, Radius: 0.5})
	w.AddBody("c", BodySpec{Position: mgl64.Vec3{5, 0, 0}, Radius: 0.5})
	w.Step(1.0 / 60)

	contacts := w.Contacts()
	if len(contacts) != 1 || contacts[0] != (Contact{A: "a", B: "b"}) {
		t.Errorf("Expected single a-b contact, got %v", contacts)
	}
}

func TestContactsSkipStaticPairs(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	w.AddBody("wall1", BodySpec{Static: true, Radius: 1})
	w.AddBody("wall2", BodySpec{Position: mgl64.Vec3{0.5, 0, 0}, Static: true, Radius: 1})
	w.AddBody("ball", BodySpec{Position: mgl64.Vec3{0, 0.5, 0}, Radius: 0.5})
	w.Step(1.0 / 60)

	for _, c := range w.Contacts() {
		if c.A != "ball" && c.B != "ball" {
			t.Errorf("Expected no static-static contact, got %v", c)
		}
	}
}

func TestSetPositionRefreshesCache(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	w.AddBody("crate", BodySpec{})
	w.SetPosition("crate", mgl64.Vec3{7, 8, 9})

	tr, ok := w.CachedTransform("crate")
	if !ok || tr.Position != (mgl64.Vec3{7, 8, 9}) {
		t.Errorf("Expected cache updated with teleport, got %v", tr.Position)
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	w.ApplyForce("ghost", mgl64.Vec3{1, 0, 0})
	w.ApplyImpulse("ghost", mgl64.Vec3{1, 0, 0})
	w.ApplyTorque("ghost", mgl64.Vec3{1, 0, 0})
	w.SetPosition("ghost", mgl64.Vec3{1, 0, 0})

	if _, ok := w.Body("ghost"); ok {
		t.Errorf("Expected no body")
	}
	if _, ok := w.CachedTransform("ghost"); ok {
		t.Errorf("Expected no cached transform")
	}
}

func TestRemoveBody(t *testing.T) {
	w := freeWorld()
	defer w.Dispose()

	w.AddBody("a", BodySpec{})
	w.AddBody("b", BodySpec{Position: mgl64.Vec3{0.1, 0, 0}})
	w.RemoveBody("a")

	if _, ok := w.Body("a"); ok {
		t.Errorf("Expected body removed")
	}
	w.Step(1.0 / 60)
	for _, c := range w.Contacts() {
		if c.A == "a" || c.B == "a" {
			t.Errorf("Expected removed body out of contacts, got %v", c)
		}
	}
}

func TestDisposeIdempotent(t *testing.T) {
	w := freeWorld()
	w.AddBody("a", BodySpec{})

	w.Dispose()
	w.Dispose()

	if b := w.AddBody("b", BodySpec{}); b != nil {
		t.Errorf("Expected disposed world to reject bodies")
	}
	w.Step(1.0 / 60)
	if len(w.Contacts()) != 0 {
		t.Errorf("Expected no contacts after dispose")
	}
}
