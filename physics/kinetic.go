package physics

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/parameter"
)

// WorldConfig tunes the reference engine.
type WorldConfig struct {
	Gravity        mgl64.Vec3
	LinearDamping  float64
	AngularDamping float64
	// GroundPlane enables the infinite y=0 floor that supplies the
	// grounded flag
	GroundPlane bool
}

// DefaultWorldConfig returns the tuning the binaries run with.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:        mgl64.Vec3{0, parameter.WorldGravity, 0},
		LinearDamping:  parameter.WorldLinearDamping,
		AngularDamping: parameter.WorldAngularDamping,
		GroundPlane:    true,
	}
}

// BodySpec describes one body at creation.
type BodySpec struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Mass     float64 // defaults to parameter.WorldDefaultMass
	Radius   float64 // sphere collider radius, defaults to parameter.WorldDefaultRadius
	Static   bool    // static bodies never integrate, they only obstruct
}

type kineticBody struct {
	id     string
	mass   float64
	radius float64
	static bool

	position mgl64.Vec3
	rotation mgl64.Quat
	velocity mgl64.Vec3
	angular  mgl64.Vec3

	force    mgl64.Vec3
	torque   mgl64.Vec3
	grounded bool
}

func (b *kineticBody) Position() mgl64.Vec3        { return b.position }
func (b *kineticBody) Rotation() mgl64.Quat        { return b.rotation }
func (b *kineticBody) Velocity() mgl64.Vec3        { return b.velocity }
func (b *kineticBody) AngularVelocity() mgl64.Vec3 { return b.angular }
func (b *kineticBody) Grounded() bool              { return b.grounded }

func (b *kineticBody) SetPosition(p mgl64.Vec3) { b.position = p }
func (b *kineticBody) SetRotation(q mgl64.Quat) { b.rotation = q.Normalize() }

// KineticWorld is the reference engine: semi-implicit Euler integration,
// body-level damping, an optional ground plane, and sphere-sphere contact
// reporting. It is deliberately simple; it exists so the pipeline runs end
// to end without an external engine.
type KineticWorld struct {
	cfg      WorldConfig
	bodies   map[string]*kineticBody
	order    []string
	cache    map[string]Transform
	contacts []Contact
	disposed bool
}

// NewKineticWorld builds an empty world.
func NewKineticWorld(cfg WorldConfig) *KineticWorld {
	return &KineticWorld{
		cfg:    cfg,
		bodies: make(map[string]*kineticBody),
		cache:  make(map[string]Transform),
	}
}

// AddBody registers a body under id, replacing any previous body with the
// same id. The cached transform is primed immediately so pose reads work
// before the first step.
func (w *KineticWorld) AddBody(id string, spec BodySpec) Body {
	if w.disposed {
		return nil
	}

	rot := spec.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = parameter.WorldDefaultMass
	}
	radius := spec.Radius
	if radius <= 0 {
		radius = parameter.WorldDefaultRadius
	}

	b := &kineticBody{
		id:       id,
		mass:     mass,
		radius:   radius,
		static:   spec.Static,
		position: spec.Position,
		rotation: rot.Normalize(),
	}
	if _, exists := w.bodies[id]; !exists {
		w.order = append(w.order, id)
	}
	w.bodies[id] = b
	w.cache[id] = Transform{Position: b.position, Rotation: b.rotation}
	return b
}

// RemoveBody drops a body and its cached transform.
func (w *KineticWorld) RemoveBody(id string) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	delete(w.cache, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// ApplyForce accumulates a force consumed by the next step.
func (w *KineticWorld) ApplyForce(id string, f mgl64.Vec3) {
	if b, ok := w.bodies[id]; ok && !b.static {
		b.force = b.force.Add(f)
	}
}

// ApplyImpulse changes velocity immediately: v += impulse / mass.
func (w *KineticWorld) ApplyImpulse(id string, imp mgl64.Vec3) {
	if b, ok := w.bodies[id]; ok && !b.static {
		b.velocity = b.velocity.Add(imp.Mul(1 / b.mass))
	}
}

// ApplyTorque accumulates a torque consumed by the next step.
func (w *KineticWorld) ApplyTorque(id string, t mgl64.Vec3) {
	if b, ok := w.bodies[id]; ok && !b.static {
		b.torque = b.torque.Add(t)
	}
}

func (w *KineticWorld) Body(id string) (Body, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return nil, false
	}
	return b, true
}

// CachedTransform returns the pose snapshot taken at the last step (or at
// AddBody before any step has run).
func (w *KineticWorld) CachedTransform(id string) (Transform, bool) {
	t, ok := w.cache[id]
	return t, ok
}

// SetPosition teleports a body, updating the cached transform in the same
// call so pose readers agree immediately.
func (w *KineticWorld) SetPosition(id string, p mgl64.Vec3) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	b.position = p
	w.cache[id] = Transform{Position: b.position, Rotation: b.rotation}
}

// Step integrates accumulated forces: v = v + a*dt, damp, p = p + v*dt,
// rotation from angular velocity, then ground clamp, contact rebuild, and
// cache refresh. Accumulators zero on exit.
func (w *KineticWorld) Step(dt float64) {
	if w.disposed || dt <= 0 {
		return
	}

	linDamp := 1 / (1 + w.cfg.LinearDamping*dt)
	angDamp := 1 / (1 + w.cfg.AngularDamping*dt)

	for _, id := range w.order {
		b := w.bodies[id]
		if b.static {
			b.force = mgl64.Vec3{}
			b.torque = mgl64.Vec3{}
			continue
		}

		accel := w.cfg.Gravity.Add(b.force.Mul(1 / b.mass))
		b.velocity = b.velocity.Add(accel.Mul(dt)).Mul(linDamp)
		b.position = b.position.Add(b.velocity.Mul(dt))

		b.angular = b.angular.Add(b.torque.Mul(dt / b.mass)).Mul(angDamp)
		b.rotation = integrateRotation(b.rotation, b.angular, dt)

		if w.cfg.GroundPlane {
			floor := b.radius
			if b.position[1] < floor {
				b.position[1] = floor
				if b.velocity[1] < 0 {
					b.velocity[1] = 0
				}
			}
			b.grounded = b.position[1]-floor <= parameter.WorldGroundEpsilon
		}

		b.force = mgl64.Vec3{}
		b.torque = mgl64.Vec3{}
	}

	w.rebuildContacts()
	for _, id := range w.order {
		b := w.bodies[id]
		w.cache[id] = Transform{Position: b.position, Rotation: b.rotation}
	}
}

// integrateRotation advances q by angular velocity omega over dt:
// q' = normalize(q + 0.5*dt * (0,omega) * q).
func integrateRotation(q mgl64.Quat, omega mgl64.Vec3, dt float64) mgl64.Quat {
	if omega == (mgl64.Vec3{}) {
		return q
	}
	dq := mgl64.Quat{W: 0, V: omega}.Mul(q).Scale(0.5 * dt)
	return q.Add(dq).Normalize()
}

// Contacts returns the overlapping pairs found by the last step.
func (w *KineticWorld) Contacts() []Contact {
	return w.contacts
}

// rebuildContacts runs the O(n²) sphere sweep. Pair order follows body
// insertion order so collision hooks fire deterministically.
func (w *KineticWorld) rebuildContacts() {
	w.contacts = w.contacts[:0]
	for i := 0; i < len(w.order); i++ {
		for j := i + 1; j < len(w.order); j++ {
			a, b := w.bodies[w.order[i]], w.bodies[w.order[j]]
			if a.static && b.static {
				continue
			}
			minDist := a.radius + b.radius
			if a.position.Sub(b.position).LenSqr() < minDist*minDist {
				w.contacts = append(w.contacts, Contact{A: a.id, B: b.id})
			}
		}
	}
}

// BodyIDs returns all registered ids, sorted.
func (w *KineticWorld) BodyIDs() []string {
	ids := make([]string, len(w.order))
	copy(ids, w.order)
	sort.Strings(ids)
	return ids
}

// Dispose clears all bodies. Idempotent; a disposed world ignores every
// call.
func (w *KineticWorld) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	w.bodies = map[string]*kineticBody{}
	w.cache = map[string]Transform{}
	w.order = nil
	w.contacts = nil
}

// Speed is a convenience for tests and demos: |v| of a body, 0 if absent.
func (w *KineticWorld) Speed(id string) float64 {
	b, ok := w.bodies[id]
	if !ok {
		return 0
	}
	return b.velocity.Len()
}
