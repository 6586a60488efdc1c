package scene

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/kinema/input"
	"github.com/lixenwraith/kinema/physics"
	"github.com/lixenwraith/kinema/script"
	"github.com/lixenwraith/kinema/transform"
)

// BodyFactory is implemented by worlds that create bodies from entity
// physics specs. The reference engine implements it; an external engine
// that manages its own bodies does not need to, the loader then only
// resolves existing bodies by id.
type BodyFactory interface {
	AddBody(id string, spec physics.BodySpec) physics.Body
}

// Deps carries everything Load needs beyond the document. World, Visual,
// Source, Binding, and Rand are all optional.
type Deps struct {
	// World receives bodies and the per-frame step. Nil loads a scene
	// without physics.
	World physics.World
	// Visual builds the render handle for one entity. Nil loads without
	// visuals.
	Visual func(e *Entity) Visual
	// Source is the live raw-input source handed to relay transformers.
	Source input.Source
	// Binding builds the scripting surface over the finished registry,
	// typically the game package's API. Nil disables scripts.
	Binding func(reg *Registry) script.GameBinding
	// Rand pins the wander variant's randomness, for reproducible runs.
	Rand   *rand.Rand
	Logger zerolog.Logger
}

// Loader owns one loaded scene: the world's bodies, the registry, and the
// script runner, in load order. Unload tears them down in reverse.
type Loader struct {
	log      zerolog.Logger
	world    physics.World
	reg      *Registry
	runner   *script.Runner
	wind     mgl64.Vec3
	unloaded bool
}

// Load materializes a document: bodies first, then items with chains, then
// scripts, then the spawn hooks. Entities without an id, or with a
// duplicate id, are skipped with a warning.
func Load(doc *Document, deps Deps) *Loader {
	l := &Loader{
		log:   deps.Logger,
		world: deps.World,
		wind:  doc.WindVec(),
	}

	entities := make([]*Entity, 0, len(doc.Entities))
	seen := make(map[string]bool, len(doc.Entities))
	for i := range doc.Entities {
		ed := &doc.Entities[i]
		if ed.ID == "" {
			l.log.Warn().Int("index", i).Msg("entity without id skipped")
			continue
		}
		if seen[ed.ID] {
			l.log.Warn().Str("entity", ed.ID).Msg("duplicate entity id skipped")
			continue
		}
		seen[ed.ID] = true
		entities = append(entities, ed.Entity())
	}

	if factory, ok := deps.World.(BodyFactory); ok {
		for _, e := range entities {
			if e.Physics == nil {
				continue
			}
			factory.AddBody(e.ID, physics.BodySpec{
				Position: e.Position,
				Rotation: e.Rotation,
				Mass:     e.Physics.Mass,
				Radius:   e.Physics.Radius,
				Static:   e.Physics.Static,
			})
		}
	}

	l.reg = NewRegistry(deps.World, deps.Logger)
	ctx := transform.BuildContext{
		Source: deps.Source,
		Logger: deps.Logger,
		Rand:   deps.Rand,
	}
	for _, e := range entities {
		var v Visual
		if deps.Visual != nil {
			v = deps.Visual(e)
		}
		l.reg.Add(e, v, ctx)
	}

	if deps.Binding != nil {
		l.runner = script.NewRunner(deps.Binding(l.reg), deps.Logger)
		l.runner.LoadAll(doc.Scripts)
		for _, e := range entities {
			if e.Hooks != (script.Hooks{}) {
				l.runner.Bind(e.ID, e.Hooks)
			}
		}
		l.runner.RunSpawn()
	}

	return l
}

// Registry returns the loaded scene's registry.
func (l *Loader) Registry() *Registry {
	return l.reg
}

// Runner returns the script runner, nil when scripts are disabled.
func (l *Loader) Runner() *script.Runner {
	return l.runner
}

// World returns the physics world the scene was loaded into.
func (l *Loader) World() physics.World {
	return l.world
}

// Wind returns the document's ambient wind.
func (l *Loader) Wind() mgl64.Vec3 {
	return l.wind
}

// Unload tears the scene down: runner first, then registry, then the
// physics world. Idempotent; each stage tolerates a second call.
func (l *Loader) Unload() {
	if l.unloaded {
		return
	}
	l.unloaded = true

	if l.runner != nil {
		l.runner.Close()
	}
	l.reg.Clear()
	if l.world != nil {
		l.world.Dispose()
	}
}
