package transform

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/lixenwraith/kinema/parameter"
	"github.com/lixenwraith/kinema/script"
)

// customState holds the compiled user chunk and its interpreter. One
// interpreter per transformer; the frame loop is single-threaded so no
// locking is needed.
type customState struct {
	ls     *lua.LState
	fn     *lua.LFunction
	log    zerolog.Logger
	closed bool
}

// NewCustom compiles user source into the custom variant. The chunk runs
// per frame with `input` (the frame snapshot as a table), `dt`, and an
// `action(name)` getter in scope, plus the restricted interpreter's math
// library, and returns a table with optional force/impulse/torque vectors
// and an earlyExit flag. A compile failure is returned here, before the
// transformer ever joins a chain.
func NewCustom(code string, logger zerolog.Logger) (*Transformer, error) {
	ls := script.NewRestrictedState()
	fn, err := script.Compile(ls, "custom_transformer", code, "input", "dt", "action")
	if err != nil {
		ls.Close()
		return nil, err
	}

	return &Transformer{
		kind:     KindCustom,
		Priority: parameter.PriorityCustom,
		Enabled:  true,
		custom:   &customState{ls: ls, fn: fn, log: logger},
	}, nil
}

// customTransform evaluates the user chunk under protection. Any runtime
// error is logged and yields the empty contribution; the chain never sees
// the failure.
func (t *Transformer) customTransform(in *Input, dt float64) Output {
	st := t.custom
	if st == nil || st.closed {
		return Output{}
	}

	ls := st.ls
	top := ls.GetTop()

	action := ls.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(in.Action(L.CheckString(1))))
		return 1
	})

	err := ls.CallByParam(
		lua.P{Fn: st.fn, NRet: 1, Protect: true},
		inputToLua(ls, in), lua.LNumber(dt), action,
	)
	if err != nil {
		st.log.Warn().Str("entity", in.EntityID).Err(err).Msg("custom transformer failed")
		ls.SetTop(top)
		return Output{}
	}

	ret := ls.Get(-1)
	ls.SetTop(top)
	return outputFromLua(ret)
}

func (s *customState) close() {
	if s.closed {
		return
	}
	s.closed = true
	s.ls.Close()
}

// --- Lua value conversion ---

func vecToLua(ls *lua.LState, v mgl64.Vec3) *lua.LTable {
	tbl := ls.NewTable()
	tbl.RawSetString("x", lua.LNumber(v[0]))
	tbl.RawSetString("y", lua.LNumber(v[1]))
	tbl.RawSetString("z", lua.LNumber(v[2]))
	return tbl
}

func quatToLua(ls *lua.LState, q mgl64.Quat) *lua.LTable {
	tbl := ls.NewTable()
	tbl.RawSetString("x", lua.LNumber(q.X()))
	tbl.RawSetString("y", lua.LNumber(q.Y()))
	tbl.RawSetString("z", lua.LNumber(q.Z()))
	tbl.RawSetString("w", lua.LNumber(q.W))
	return tbl
}

// inputToLua mirrors the Input snapshot as a Lua table. Keys are camelCase
// to match the scene-document conventions user code is written against.
func inputToLua(ls *lua.LState, in *Input) *lua.LTable {
	tbl := ls.NewTable()
	tbl.RawSetString("entity", lua.LString(in.EntityID))
	tbl.RawSetString("position", vecToLua(ls, in.Position))
	tbl.RawSetString("rotation", quatToLua(ls, in.Rotation))
	tbl.RawSetString("velocity", vecToLua(ls, in.Velocity))
	tbl.RawSetString("angularVelocity", vecToLua(ls, in.AngularVelocity))
	tbl.RawSetString("accumulatedForce", vecToLua(ls, in.AccumulatedForce))
	tbl.RawSetString("accumulatedTorque", vecToLua(ls, in.AccumulatedTorque))
	tbl.RawSetString("deltaTime", lua.LNumber(in.DeltaTime))
	tbl.RawSetString("grounded", lua.LBool(in.GroundedFlag()))
	tbl.RawSetString("wind", vecToLua(ls, in.WindVec()))
	return tbl
}

// vecFromLua accepts {x=,y=,z=} or {1,2,3} style tables; anything else is
// the zero vector.
func vecFromLua(v lua.LValue) mgl64.Vec3 {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return mgl64.Vec3{}
	}

	x := tbl.RawGetString("x")
	if x == lua.LNil {
		return mgl64.Vec3{
			float64(lua.LVAsNumber(tbl.RawGetInt(1))),
			float64(lua.LVAsNumber(tbl.RawGetInt(2))),
			float64(lua.LVAsNumber(tbl.RawGetInt(3))),
		}
	}
	return mgl64.Vec3{
		float64(lua.LVAsNumber(x)),
		float64(lua.LVAsNumber(tbl.RawGetString("y"))),
		float64(lua.LVAsNumber(tbl.RawGetString("z"))),
	}
}

func outputFromLua(v lua.LValue) Output {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return Output{}
	}
	return Output{
		Force:     vecFromLua(tbl.RawGetString("force")),
		Impulse:   vecFromLua(tbl.RawGetString("impulse")),
		Torque:    vecFromLua(tbl.RawGetString("torque")),
		EarlyExit: lua.LVAsBool(tbl.RawGetString("earlyExit")),
	}
}
