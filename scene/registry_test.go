package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/kinema/physics"
	"github.com/lixenwraith/kinema/transform"
)

func buildCtx() transform.BuildContext {
	return transform.BuildContext{Logger: zerolog.Nop()}
}

func TestRegistryAddResolvesBodyAndChain(t *testing.T) {
	w := physics.NewKineticWorld(physics.WorldConfig{})
	defer w.Dispose()
	w.AddBody("car1", physics.BodySpec{})

	reg := NewRegistry(w, zerolog.Nop())
	e := &Entity{ID: "car1", Transformers: []transform.Config{
		{Type: "car"},
		{Type: "warp_drive"},
	}}

	it := reg.Add(e, &fakeVisual{}, buildCtx())
	if !it.HasBody() {
		t.Errorf("Expected body resolved by id")
	}
	// The unknown type is skipped, the valid one survives
	if it.Chain == nil || it.Chain.Len() != 1 {
		t.Fatalf("Expected one-member chain, got %+v", it.Chain)
	}
	if it.Chain.FindByKind(transform.KindCar) == nil {
		t.Errorf("Expected the car transformer kept")
	}
}

func TestRegistryAddPlacesVisual(t *testing.T) {
	reg := NewRegistry(nil, zerolog.Nop())
	v := &fakeVisual{}
	reg.Add(&Entity{
		ID:       "crate",
		Position: mgl64.Vec3{1, 2, 3},
		Scale:    mgl64.Vec3{2, 2, 2},
	}, v, buildCtx())

	if v.pos != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Expected visual at record position, got %v", v.pos)
	}
	if v.rot != mgl64.QuatIdent() {
		t.Errorf("Expected identity rotation, got %v", v.rot)
	}
	if v.scale != (mgl64.Vec3{2, 2, 2}) {
		t.Errorf("Expected scale applied, got %v", v.scale)
	}
}

func TestRegistryExecuteAppliesToWorld(t *testing.T) {
	w := physics.NewKineticWorld(physics.WorldConfig{})
	defer w.Dispose()
	b := w.AddBody("e1", physics.BodySpec{})

	reg := NewRegistry(w, zerolog.Nop())
	reg.Add(&Entity{ID: "e1", Transformers: []transform.Config{{
		Type: "custom",
		Code: `return {force = {x = 6, y = 0, z = 0}, impulse = {x = 0, y = 3, z = 0}}`,
	}}}, nil, buildCtx())

	reg.ExecuteTransformers(1.0/60, mgl64.Vec3{})

	// Impulse lands immediately, force waits for the step
	if b.Velocity() != (mgl64.Vec3{0, 3, 0}) {
		t.Fatalf("Expected impulse routed before the step, got %v", b.Velocity())
	}
	w.Step(0.5)
	if math.Abs(b.Velocity()[0]-3.0) > 1e-12 {
		t.Errorf("Expected force integrated to 3.0, got %v", b.Velocity()[0])
	}
}

func TestRegistryExecuteSkipsNonSimulated(t *testing.T) {
	w := physics.NewKineticWorld(physics.WorldConfig{})
	defer w.Dispose()
	b := w.AddBody("plain", physics.BodySpec{})

	reg := NewRegistry(w, zerolog.Nop())
	// Chain but no body: transformers only drive simulated entities
	reg.Add(&Entity{ID: "ghost", Transformers: []transform.Config{{
		Type: "custom",
		Code: `return {impulse = {x = 100, y = 0, z = 0}}`,
	}}}, &fakeVisual{}, buildCtx())
	// Body but no chain
	reg.Add(&Entity{ID: "plain"}, nil, buildCtx())

	reg.ExecuteTransformers(1.0/60, mgl64.Vec3{})
	w.Step(1.0 / 60)

	if b.Velocity() != (mgl64.Vec3{}) {
		t.Errorf("Expected nothing applied, got %v", b.Velocity())
	}
}

// Test the frame snapshot carries wind and the grounded contact state
func TestRegistryExecuteEnvironment(t *testing.T) {
	w := physics.NewKineticWorld(physics.WorldConfig{
		Gravity:     mgl64.Vec3{0, -9.81, 0},
		GroundPlane: true,
	})
	defer w.Dispose()
	b := w.AddBody("walker", physics.BodySpec{Position: mgl64.Vec3{0, 0.5, 0}, Radius: 0.5})
	w.Step(1.0 / 60)
	if !b.Grounded() {
		t.Fatalf("Expected resting body grounded")
	}

	reg := NewRegistry(w, zerolog.Nop())
	reg.Add(&Entity{ID: "walker", Transformers: []transform.Config{{
		Type: "custom",
		Code: `return {impulse = {x = input.wind.x, y = input.grounded and 1 or 0, z = 0}}`,
	}}}, nil, buildCtx())

	reg.ExecuteTransformers(1.0/60, mgl64.Vec3{2, 0, 0})
	v := b.Velocity()
	if v[0] != 2 || v[1] != 1 {
		t.Errorf("Expected wind and grounded visible to the chain, got %v", v)
	}
}

func TestRegistrySyncFromPhysics(t *testing.T) {
	w := physics.NewKineticWorld(physics.WorldConfig{})
	defer w.Dispose()
	w.AddBody("ball", physics.BodySpec{})

	reg := NewRegistry(w, zerolog.Nop())
	simulated := &fakeVisual{}
	reg.Add(&Entity{ID: "ball"}, simulated, buildCtx())
	plain := &fakeVisual{}
	reg.Add(&Entity{ID: "decor", Position: mgl64.Vec3{5, 5, 5}}, plain, buildCtx())
	placements := plain.posSets

	w.ApplyImpulse("ball", mgl64.Vec3{1, 0, 0})
	w.Step(0.5)
	reg.SyncFromPhysics()

	cached, _ := w.CachedTransform("ball")
	if simulated.pos != cached.Position {
		t.Errorf("Expected visual at cached pose %v, got %v", cached.Position, simulated.pos)
	}
	if plain.posSets != placements {
		t.Errorf("Expected visual-only item untouched by sync")
	}
}

func TestRegistryAllPoses(t *testing.T) {
	w := physics.NewKineticWorld(physics.WorldConfig{})
	defer w.Dispose()
	w.AddBody("ball", physics.BodySpec{Position: mgl64.Vec3{0, 7, 0}})

	reg := NewRegistry(w, zerolog.Nop())
	reg.Add(&Entity{ID: "ball"}, nil, buildCtx())
	reg.Add(&Entity{ID: "decor", Position: mgl64.Vec3{5, 5, 5}}, nil, buildCtx())

	poses := reg.AllPoses()
	if len(poses) != 2 {
		t.Fatalf("Expected two poses, got %d", len(poses))
	}
	if poses["ball"].Position != (mgl64.Vec3{0, 7, 0}) {
		t.Errorf("Expected body pose exported, got %v", poses["ball"].Position)
	}
	if poses["decor"].Position != (mgl64.Vec3{5, 5, 5}) {
		t.Errorf("Expected record pose exported, got %v", poses["decor"].Position)
	}
}

func TestRegistryClear(t *testing.T) {
	w := physics.NewKineticWorld(physics.WorldConfig{})
	defer w.Dispose()
	w.AddBody("e1", physics.BodySpec{})

	reg := NewRegistry(w, zerolog.Nop())
	v := &fakeVisual{}
	reg.Add(&Entity{ID: "e1", Transformers: []transform.Config{{
		Type: "custom",
		Code: `return {}`,
	}}}, v, buildCtx())

	reg.Clear()
	reg.Clear()

	if !v.disposed {
		t.Errorf("Expected visual released")
	}
	if reg.Len() != 0 {
		t.Errorf("Expected empty registry, got %d", reg.Len())
	}

	// The physics world belongs to another owner and must survive
	if _, ok := w.Body("e1"); !ok {
		t.Errorf("Expected the world untouched by registry clear")
	}
	if w.AddBody("e2", physics.BodySpec{}) == nil {
		t.Errorf("Expected the world still usable")
	}
}
