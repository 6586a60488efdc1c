package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/kinema/input"
	"github.com/lixenwraith/kinema/physics"
	"github.com/lixenwraith/kinema/spatial"
	"github.com/lixenwraith/kinema/transform"
)

// Registry owns all items of one loaded scene. It is built once per load
// and cleared on unload; a cleared registry is not reusable. All access
// happens on the frame loop's goroutine.
type Registry struct {
	log   zerolog.Logger
	world physics.World
	items map[string]*Item
	order []string
}

// NewRegistry builds an empty registry over an optional physics world.
func NewRegistry(world physics.World, log zerolog.Logger) *Registry {
	return &Registry{
		log:   log,
		world: world,
		items: make(map[string]*Item),
	}
}

// Add builds the item for one entity: the physics body is resolved by id
// when a world is attached, and the transformer chain compiled from the
// entity's configs. Unknown or unbuildable transformer configs are skipped
// with a warning, never fatal. The visual is placed at the record's pose
// immediately.
func (r *Registry) Add(e *Entity, v Visual, ctx transform.BuildContext) *Item {
	it := &Item{Entity: e, Visual: v, world: r.world}

	if r.world != nil {
		if b, ok := r.world.Body(e.ID); ok {
			it.body = b
		}
	}

	if len(e.Transformers) > 0 {
		chain := transform.NewChain()
		for _, cfg := range e.Transformers {
			tr, err := transform.Build(cfg, ctx)
			if err != nil {
				r.log.Warn().Str("entity", e.ID).Str("type", cfg.Type).Err(err).Msg("transformer skipped")
				continue
			}
			chain.Add(tr)
		}
		if chain.Len() > 0 {
			it.Chain = chain
		}
	}

	if v != nil {
		v.SetPosition(e.Position)
		v.SetRotation(it.Rotation())
		if e.Scale != (mgl64.Vec3{}) {
			v.SetScale(e.Scale)
		}
	}

	if _, exists := r.items[e.ID]; !exists {
		r.order = append(r.order, e.ID)
	}
	r.items[e.ID] = it
	return it
}

// Item looks up one item by entity id.
func (r *Registry) Item(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// IDs returns entity ids in load order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the item count.
func (r *Registry) Len() int {
	return len(r.items)
}

// ExecuteTransformers runs every simulated entity's chain and applies the
// results to the physics world. Items without both a chain and a body are
// skipped: transformers only drive simulated entities. The frame snapshot
// reads pose from the cached transform, kinematics from the body.
func (r *Registry) ExecuteTransformers(dt float64, wind mgl64.Vec3) {
	for _, id := range r.order {
		it := r.items[id]
		if it.Chain == nil || it.body == nil {
			continue
		}

		pose, ok := r.world.CachedTransform(id)
		if !ok {
			pose = physics.Transform{Position: it.body.Position(), Rotation: it.body.Rotation()}
		}

		env := &transform.Environment{
			Wind:     wind,
			Grounded: it.body.Grounded(),
		}
		if env.Grounded {
			env.GroundNormal = spatial.WorldUp
		}

		in := &transform.Input{
			EntityID:        id,
			Actions:         make(input.Actions),
			Position:        pose.Position,
			Rotation:        pose.Rotation,
			Velocity:        it.body.Velocity(),
			AngularVelocity: it.body.AngularVelocity(),
			Environment:     env,
			DeltaTime:       dt,
		}

		out := it.Chain.Execute(in, dt)
		if out == transform.Empty || out.IsZero() {
			continue
		}
		if out.Force != (mgl64.Vec3{}) {
			r.world.ApplyForce(id, out.Force)
		}
		if out.Impulse != (mgl64.Vec3{}) {
			r.world.ApplyImpulse(id, out.Impulse)
		}
		if out.Torque != (mgl64.Vec3{}) {
			r.world.ApplyTorque(id, out.Torque)
		}
	}
}

// SyncFromPhysics copies each simulated entity's cached transform onto its
// visual. The cache, not the live body, is read so a foreign-memory engine
// cannot alias mid-copy.
func (r *Registry) SyncFromPhysics() {
	if r.world == nil {
		return
	}
	for _, id := range r.order {
		it := r.items[id]
		if it.body == nil || it.Visual == nil {
			continue
		}
		if pose, ok := r.world.CachedTransform(id); ok {
			it.Visual.SetPosition(pose.Position)
			it.Visual.SetRotation(pose.Rotation)
		}
	}
}

// AllPoses exports every entity's current pose, for carrying state across
// scene reloads.
func (r *Registry) AllPoses() map[string]spatial.Pose {
	poses := make(map[string]spatial.Pose, len(r.items))
	for id, it := range r.items {
		poses[id] = it.Pose()
	}
	return poses
}

// Clear releases visuals and closes chains. The physics world is never
// disposed here; that belongs to the scene loader. Idempotent.
func (r *Registry) Clear() {
	for _, it := range r.items {
		if it.Chain != nil {
			it.Chain.Close()
		}
		if it.Visual != nil {
			it.Visual.Dispose()
		}
	}
	r.items = make(map[string]*Item)
	r.order = nil
}
