package script

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"
)

// EntityRef is the identity pair hooks receive for their own entity and,
// on collision, the other party.
type EntityRef struct {
	ID   string
	Name string
}

// GameBinding is the narrow surface scripts drive the scene through. The
// game package satisfies it; tests substitute their own. Missing entities
// return zero values and false, never panic.
type GameBinding interface {
	Time() float64
	EntityIDs() []string
	Entity(id string) (EntityRef, bool)
	Position(id string) (mgl64.Vec3, bool)
	SetPosition(id string, p mgl64.Vec3)
	ApplyForce(id string, f mgl64.Vec3)
	ApplyImpulse(id string, imp mgl64.Vec3)
	SetTransformerEnabled(id, typ string, enabled bool) bool
	SetTransformerParam(id, typ, name string, value float64) bool
	Log(msg string)
}

// Hooks names the scripts an entity runs at each lifecycle point. Names
// refer to the scene document's script table; an empty name means no hook.
type Hooks struct {
	OnSpawn     string `json:"onSpawn,omitempty"`
	OnUpdate    string `json:"onUpdate,omitempty"`
	OnCollision string `json:"onCollision,omitempty"`
}

// Runner owns one restricted interpreter for a scene's scripts. Script
// bodies are compiled once by name; entities bind hook names to those
// bodies. All dispatch happens on the frame loop's goroutine.
type Runner struct {
	ls      *lua.LState
	log     zerolog.Logger
	binding GameBinding
	game    *lua.LTable

	scripts map[string]*lua.LFunction
	hooks   map[string]Hooks
	order   []string
	closed  bool
}

// NewRunner builds a runner over the given binding. The game table handed
// to every hook is constructed once here.
func NewRunner(binding GameBinding, logger zerolog.Logger) *Runner {
	r := &Runner{
		ls:      NewRestrictedState(),
		log:     logger,
		binding: binding,
		scripts: make(map[string]*lua.LFunction),
		hooks:   make(map[string]Hooks),
	}
	r.game = r.buildGameTable()
	return r
}

// Load compiles one named script body. Hooks receive `(game, dt, entity,
// other)` via vararg capture. On failure the name stays unavailable.
func (r *Runner) Load(name, src string) error {
	if r.closed {
		return nil
	}
	fn, err := Compile(r.ls, name, src, "game", "dt", "entity", "other")
	if err != nil {
		return err
	}
	r.scripts[name] = fn
	return nil
}

// LoadAll compiles a script table, names in sorted order. Failures are
// logged and skipped; the rest of the table still loads.
func (r *Runner) LoadAll(sources map[string]string) {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.Load(name, sources[name]); err != nil {
			r.log.Warn().Str("script", name).Err(err).Msg("script rejected")
		}
	}
}

// Bind attaches hook names to an entity. Rebinding an id replaces its
// hooks without changing its position in the dispatch order.
func (r *Runner) Bind(id string, h Hooks) {
	if _, ok := r.hooks[id]; !ok {
		r.order = append(r.order, id)
	}
	r.hooks[id] = h
}

// RunSpawn invokes every bound entity's spawn hook, in bind order.
func (r *Runner) RunSpawn() {
	for _, id := range r.order {
		r.call(r.hooks[id].OnSpawn, 0, id, "")
	}
}

// RunUpdate invokes every bound entity's update hook, in bind order.
func (r *Runner) RunUpdate(dt float64) {
	for _, id := range r.order {
		r.call(r.hooks[id].OnUpdate, dt, id, "")
	}
}

// RunCollision invokes both parties' collision hooks, each seeing itself
// as entity and the counterpart as other.
func (r *Runner) RunCollision(dt float64, a, b string) {
	if h, ok := r.hooks[a]; ok {
		r.call(h.OnCollision, dt, a, b)
	}
	if h, ok := r.hooks[b]; ok {
		r.call(h.OnCollision, dt, b, a)
	}
}

// Close releases the interpreter. Idempotent; a closed runner ignores all
// dispatch.
func (r *Runner) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.ls.Close()
}

func (r *Runner) call(scriptName string, dt float64, entityID, otherID string) {
	if r.closed || scriptName == "" {
		return
	}
	fn, ok := r.scripts[scriptName]
	if !ok {
		return
	}

	top := r.ls.GetTop()
	err := r.ls.CallByParam(
		lua.P{Fn: fn, NRet: 0, Protect: true},
		r.game, lua.LNumber(dt), r.entityRef(entityID), r.entityRef(otherID),
	)
	if err != nil {
		r.log.Warn().Str("script", scriptName).Str("entity", entityID).Err(err).Msg("script hook failed")
	}
	r.ls.SetTop(top)
}

func (r *Runner) entityRef(id string) lua.LValue {
	if id == "" {
		return lua.LNil
	}
	ref, ok := r.binding.Entity(id)
	if !ok {
		ref = EntityRef{ID: id}
	}
	tbl := r.ls.NewTable()
	tbl.RawSetString("id", lua.LString(ref.ID))
	tbl.RawSetString("name", lua.LString(ref.Name))
	return tbl
}

// --- Game table ---

func luaVec(ls *lua.LState, v mgl64.Vec3) *lua.LTable {
	tbl := ls.NewTable()
	tbl.RawSetString("x", lua.LNumber(v[0]))
	tbl.RawSetString("y", lua.LNumber(v[1]))
	tbl.RawSetString("z", lua.LNumber(v[2]))
	return tbl
}

func checkVec(L *lua.LState, first int) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(L.CheckNumber(first)),
		float64(L.CheckNumber(first + 1)),
		float64(L.CheckNumber(first + 2)),
	}
}

// buildGameTable exposes the binding as `game`. Keys are camelCase to
// match the scene-document conventions user code is written against.
func (r *Runner) buildGameTable() *lua.LTable {
	ls := r.ls
	tbl := ls.NewTable()
	reg := func(name string, fn lua.LGFunction) {
		tbl.RawSetString(name, ls.NewFunction(fn))
	}

	reg("time", func(L *lua.LState) int {
		L.Push(lua.LNumber(r.binding.Time()))
		return 1
	})
	reg("entities", func(L *lua.LState) int {
		arr := L.NewTable()
		for i, id := range r.binding.EntityIDs() {
			arr.RawSetInt(i+1, lua.LString(id))
		}
		L.Push(arr)
		return 1
	})
	reg("entity", func(L *lua.LState) int {
		ref, ok := r.binding.Entity(L.CheckString(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		t := L.NewTable()
		t.RawSetString("id", lua.LString(ref.ID))
		t.RawSetString("name", lua.LString(ref.Name))
		L.Push(t)
		return 1
	})
	reg("position", func(L *lua.LState) int {
		p, ok := r.binding.Position(L.CheckString(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(luaVec(L, p))
		return 1
	})
	reg("setPosition", func(L *lua.LState) int {
		r.binding.SetPosition(L.CheckString(1), checkVec(L, 2))
		return 0
	})
	reg("applyForce", func(L *lua.LState) int {
		r.binding.ApplyForce(L.CheckString(1), checkVec(L, 2))
		return 0
	})
	reg("applyImpulse", func(L *lua.LState) int {
		r.binding.ApplyImpulse(L.CheckString(1), checkVec(L, 2))
		return 0
	})
	reg("setTransformerEnabled", func(L *lua.LState) int {
		ok := r.binding.SetTransformerEnabled(L.CheckString(1), L.CheckString(2), lua.LVAsBool(L.Get(3)))
		L.Push(lua.LBool(ok))
		return 1
	})
	reg("setTransformerParam", func(L *lua.LState) int {
		ok := r.binding.SetTransformerParam(
			L.CheckString(1), L.CheckString(2), L.CheckString(3), float64(L.CheckNumber(4)),
		)
		L.Push(lua.LBool(ok))
		return 1
	})
	reg("log", func(L *lua.LState) int {
		r.binding.Log(L.CheckString(1))
		return 0
	})

	return tbl
}
