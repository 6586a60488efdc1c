package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/parameter"
)

// flutterState is the flutter variant's sanctioned mutable state: the
// vertical oscillation phase and the horizontal wander angle.
type flutterState struct {
	phase  float64
	wander float64
}

// NewFlutter returns the oscillating-flight variant with default parameters.
func NewFlutter() *Transformer {
	return &Transformer{
		kind:     KindFlutter,
		Priority: parameter.PriorityFlutter,
		Enabled:  true,
		flutter:  defaultFlutterParams(),
	}
}

// flutterTransform emits a sinusoidal vertical force plus a proportional
// correction toward the target height, and a slowly rotating horizontal
// wander force.
func (t *Transformer) flutterTransform(in *Input, dt float64) Output {
	p := t.flutter
	s := &t.osc

	s.phase += dt * p.Frequency
	s.wander += dt * p.WanderTurn

	vertical := math.Sin(s.phase)*p.Amplitude + (p.TargetHeight-in.Position.Y())*p.HeightGain

	return Output{Force: mgl64.Vec3{
		math.Cos(s.wander) * p.WanderForce,
		vertical,
		math.Sin(s.wander) * p.WanderForce,
	}}
}
