package transform

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/parameter"
)

// wanderState is the animal variant's sanctioned mutable state: the current
// horizontal heading and the time accumulated toward the next re-roll.
type wanderState struct {
	heading mgl64.Vec3
	elapsed float64
	rng     *rand.Rand
}

// NewAnimal returns the wander variant. rng pins the heading sequence for
// deterministic tests; pass nil for a time-seeded source.
func NewAnimal(rng *rand.Rand) *Transformer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t := &Transformer{
		kind:     KindAnimal,
		Priority: parameter.PriorityAnimal,
		Enabled:  true,
		animal:   defaultAnimalParams(),
		wander:   wanderState{rng: rng},
	}
	t.wander.reroll()
	return t
}

func (s *wanderState) reroll() {
	angle := s.rng.Float64() * 2 * math.Pi
	s.heading = mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}
}

// animalTransform ignores actions entirely: constant force along the
// current heading, re-randomized on the configured interval.
func (t *Transformer) animalTransform(dt float64) Output {
	p := t.animal
	s := &t.wander

	s.elapsed += dt
	if s.elapsed >= p.DirectionChangeInterval {
		s.elapsed = 0
		s.reroll()
	}

	return Output{Force: s.heading.Mul(p.Speed)}
}
