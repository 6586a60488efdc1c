// Package transform implements the per-entity behavior units that turn
// action state into force, impulse, and torque contributions, and the
// priority-ordered chain that runs them once per frame.
package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/input"
)

// Kind discriminates the transformer variants. The set is closed; every
// per-kind operation dispatches through one switch so a new variant fails
// loudly everywhere it is missing.
type Kind uint8

const (
	KindInputRelay Kind = iota
	KindCharacter
	KindCar
	KindAirplane
	KindAnimal
	KindFlutter
	KindCustom
)

// Config type names, also used in logs.
func (k Kind) String() string {
	switch k {
	case KindInputRelay:
		return "input_relay"
	case KindCharacter:
		return "character"
	case KindCar:
		return "car"
	case KindAirplane:
		return "airplane"
	case KindAnimal:
		return "animal"
	case KindFlutter:
		return "flutter"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

// ParseKind resolves a config type name, reporting whether it names a
// variant.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "input_relay":
		return KindInputRelay, true
	case "character":
		return KindCharacter, true
	case "car":
		return KindCar, true
	case "airplane":
		return KindAirplane, true
	case "animal":
		return KindAnimal, true
	case "flutter":
		return KindFlutter, true
	case "custom":
		return KindCustom, true
	}
	return 0, false
}

// Environment carries the optional world context a transformer may read.
type Environment struct {
	Wind         mgl64.Vec3
	Grounded     bool
	GroundNormal mgl64.Vec3
}

// Input is one entity's per-frame snapshot handed to every transformer in
// its chain. The chain rewrites AccumulatedForce/AccumulatedTorque before
// each call so a transformer observes exactly what its predecessors
// contributed this pass. Relay transformers add entries to Actions; nothing
// else mutates the snapshot.
type Input struct {
	EntityID string
	Actions  input.Actions

	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	AccumulatedForce  mgl64.Vec3
	AccumulatedTorque mgl64.Vec3

	Environment *Environment
	DeltaTime   float64
}

// Action returns the named action value, zero when absent.
func (in *Input) Action(name string) float64 {
	return in.Actions.Get(name)
}

// GroundedFlag reports the environment grounded flag, false without an
// environment.
func (in *Input) GroundedFlag() bool {
	return in.Environment != nil && in.Environment.Grounded
}

// WindVec returns the environment wind, zero without an environment.
func (in *Input) WindVec() mgl64.Vec3 {
	if in.Environment == nil {
		return mgl64.Vec3{}
	}
	return in.Environment.Wind
}

// Output is one transformer's contribution. Zero vectors are the additive
// identity: "no contribution", not a demand for zero force.
type Output struct {
	Force     mgl64.Vec3
	Impulse   mgl64.Vec3
	Torque    mgl64.Vec3
	EarlyExit bool
}

// Empty is the shared sentinel a chain returns when nothing contributed.
// Callers test identity (out == Empty) to skip physics application cheaply.
var Empty = &Output{}

// IsZero reports whether o carries no contribution and no early exit.
func (o *Output) IsZero() bool {
	return o.Force == (mgl64.Vec3{}) && o.Impulse == (mgl64.Vec3{}) &&
		o.Torque == (mgl64.Vec3{}) && !o.EarlyExit
}

// Transformer is the tagged union over all variants. Priority orders chain
// execution (lower runs first); Enabled gates it without removing the
// transformer. Variant parameters and state live in the kind-selected
// fields; only the fields for the active kind are meaningful.
type Transformer struct {
	kind     Kind
	Priority int
	Enabled  bool

	character CharacterParams
	car       CarParams
	airplane  AirplaneParams
	animal    AnimalParams
	flutter   FlutterParams

	relay  *relayState
	custom *customState

	wander wanderState
	osc    flutterState
}

// Kind returns the variant discriminant.
func (t *Transformer) Kind() Kind {
	return t.kind
}

// Transform produces this transformer's contribution for the frame.
// Character, car, airplane, and relay are pure functions of the input;
// animal and flutter advance their sanctioned heading/phase state once per
// call; custom runs user code under protection.
func (t *Transformer) Transform(in *Input, dt float64) Output {
	switch t.kind {
	case KindInputRelay:
		return t.relayTransform(in)
	case KindCharacter:
		return t.characterTransform(in)
	case KindCar:
		return t.carTransform(in)
	case KindAirplane:
		return t.airplaneTransform(in)
	case KindAnimal:
		return t.animalTransform(dt)
	case KindFlutter:
		return t.flutterTransform(in, dt)
	case KindCustom:
		return t.customTransform(in, dt)
	}
	return Output{}
}

// SetParam updates one named parameter, reporting whether the active
// variant recognizes the name.
func (t *Transformer) SetParam(name string, value float64) bool {
	switch t.kind {
	case KindInputRelay:
		return false
	case KindCharacter:
		return t.character.set(name, value)
	case KindCar:
		return t.car.set(name, value)
	case KindAirplane:
		return t.airplane.set(name, value)
	case KindAnimal:
		return t.animal.set(name, value)
	case KindFlutter:
		return t.flutter.set(name, value)
	case KindCustom:
		return false
	}
	return false
}

// ApplyParams merges a partial parameter update. Unrecognized names are
// ignored.
func (t *Transformer) ApplyParams(params map[string]float64) {
	for name, v := range params {
		t.SetParam(name, v)
	}
}

// SetMapping replaces a relay transformer's input mapping whole. No-op for
// other kinds.
func (t *Transformer) SetMapping(m input.Mapping) {
	if t.kind == KindInputRelay && t.relay != nil {
		t.relay.mapping = m.Clone()
	}
}

// Close releases variant resources. Only the custom variant holds any (its
// interpreter); Close is idempotent and safe on every kind.
func (t *Transformer) Close() {
	if t.kind == KindCustom && t.custom != nil {
		t.custom.close()
	}
}
