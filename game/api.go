// Package game exposes the narrow surface user scripts drive a loaded
// scene through.
package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/kinema/physics"
	"github.com/lixenwraith/kinema/scene"
	"github.com/lixenwraith/kinema/script"
	"github.com/lixenwraith/kinema/transform"
)

// API is the façade handed to the script runner. It holds no state of its
// own; every call reads through the registry, world, and clock it closes
// over. Missing entities produce zero values, never panics.
type API struct {
	reg   *scene.Registry
	world physics.World
	now   func() float64
	log   zerolog.Logger
}

var _ script.GameBinding = (*API)(nil)

// New builds the API over a loaded scene. now supplies simulation time,
// nil freezes it at zero. world may be nil; force and impulse calls are
// then no-ops.
func New(reg *scene.Registry, world physics.World, now func() float64, log zerolog.Logger) *API {
	if now == nil {
		now = func() float64 { return 0 }
	}
	return &API{reg: reg, world: world, now: now, log: log}
}

// Time returns current simulation time in seconds.
func (a *API) Time() float64 {
	return a.now()
}

// EntityIDs lists loaded entities in load order.
func (a *API) EntityIDs() []string {
	return a.reg.IDs()
}

// Entity resolves an id to its identity pair.
func (a *API) Entity(id string) (script.EntityRef, bool) {
	it, ok := a.reg.Item(id)
	if !ok {
		return script.EntityRef{}, false
	}
	return script.EntityRef{ID: it.Entity.ID, Name: it.Entity.Name}, true
}

// Position reads an entity's current pose position, body-first.
func (a *API) Position(id string) (mgl64.Vec3, bool) {
	it, ok := a.reg.Item(id)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return it.Position(), true
}

// SetPosition moves an entity through the item's pose setter, so scripts
// and the physics-driven pipeline never disagree about placement.
func (a *API) SetPosition(id string, p mgl64.Vec3) {
	if it, ok := a.reg.Item(id); ok {
		it.SetPosition(p)
	}
}

// ApplyForce passes a force to the physics world. No-op without one.
func (a *API) ApplyForce(id string, f mgl64.Vec3) {
	if a.world != nil {
		a.world.ApplyForce(id, f)
	}
}

// ApplyImpulse passes an impulse to the physics world. No-op without one.
func (a *API) ApplyImpulse(id string, imp mgl64.Vec3) {
	if a.world != nil {
		a.world.ApplyImpulse(id, imp)
	}
}

// SetTransformerEnabled flips the enable flag on the first transformer of
// the given type in the entity's chain.
func (a *API) SetTransformerEnabled(id, typ string, enabled bool) bool {
	tr := a.findTransformer(id, typ)
	if tr == nil {
		return false
	}
	tr.Enabled = enabled
	return true
}

// SetTransformerParam forwards one parameter update, reporting whether the
// transformer recognized the name.
func (a *API) SetTransformerParam(id, typ, name string, value float64) bool {
	tr := a.findTransformer(id, typ)
	if tr == nil {
		return false
	}
	return tr.SetParam(name, value)
}

func (a *API) findTransformer(id, typ string) *transform.Transformer {
	kind, ok := transform.ParseKind(typ)
	if !ok {
		return nil
	}
	it, ok := a.reg.Item(id)
	if !ok || it.Chain == nil {
		return nil
	}
	return it.Chain.FindByKind(kind)
}

// Log emits a script-authored line through the scene's logger.
func (a *API) Log(msg string) {
	a.log.Info().Str("source", "script").Msg(msg)
}
