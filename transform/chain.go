package transform

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Chain is one entity's ordered transformer pipeline. Execution order is
// the stable ascending sort by Priority, with relay (enrichment)
// transformers as a structural first stage so action enrichment never
// depends on a priority convention. Ties keep insertion order.
type Chain struct {
	transformers []*Transformer

	// Cached execution order, rebuilt after membership changes
	ordered []*Transformer
	dirty   bool
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Add appends a transformer. Priority is read at sort time; mutating it
// after Add requires Invalidate.
func (c *Chain) Add(t *Transformer) {
	c.transformers = append(c.transformers, t)
	c.dirty = true
}

// Remove drops the first occurrence of t, reporting whether it was present.
// The transformer is not closed; the caller still owns it.
func (c *Chain) Remove(t *Transformer) bool {
	for i, have := range c.transformers {
		if have == t {
			c.transformers = append(c.transformers[:i], c.transformers[i+1:]...)
			c.dirty = true
			return true
		}
	}
	return false
}

// Clear empties the chain without closing members.
func (c *Chain) Clear() {
	c.transformers = c.transformers[:0]
	c.ordered = nil
	c.dirty = false
}

// Len returns the member count.
func (c *Chain) Len() int {
	return len(c.transformers)
}

// Invalidate forces a re-sort before the next execution, for callers that
// changed a member's Priority in place.
func (c *Chain) Invalidate() {
	c.dirty = true
}

// FindByKind returns the first member of the given kind in insertion
// order, or nil.
func (c *Chain) FindByKind(k Kind) *Transformer {
	for _, t := range c.transformers {
		if t.kind == k {
			return t
		}
	}
	return nil
}

// Snapshot returns a copy of the execution order.
func (c *Chain) Snapshot() []*Transformer {
	src := c.executionOrder()
	out := make([]*Transformer, len(src))
	copy(out, src)
	return out
}

func stageOf(t *Transformer) int {
	if t.kind == KindInputRelay {
		return 0
	}
	return 1
}

func (c *Chain) executionOrder() []*Transformer {
	if c.ordered == nil || c.dirty {
		c.ordered = append(c.ordered[:0], c.transformers...)
		sort.SliceStable(c.ordered, func(i, j int) bool {
			si, sj := stageOf(c.ordered[i]), stageOf(c.ordered[j])
			if si != sj {
				return si < sj
			}
			return c.ordered[i].Priority < c.ordered[j].Priority
		})
		c.dirty = false
	}
	return c.ordered
}

// Execute runs the chain once for the frame. Disabled members are never
// invoked. Before each call the running totals are written into the input
// so a transformer observes exactly its predecessors' contributions; force
// and impulse merge into the one force total later members read, torque
// runs separately. The returned output keeps force and impulse apart so
// the physics boundary can route each through its own apply call. EarlyExit
// stops the chain with the totals up to and including that transformer. A
// pass in which every accumulator stayed exactly zero with no early exit
// returns the shared Empty sentinel.
func (c *Chain) Execute(in *Input, dt float64) *Output {
	var accForce, accImpulse, accTorque mgl64.Vec3
	contributed := false

	for _, t := range c.executionOrder() {
		if !t.Enabled {
			continue
		}

		in.AccumulatedForce = accForce.Add(accImpulse)
		in.AccumulatedTorque = accTorque

		out := t.Transform(in, dt)

		if out.Force != (mgl64.Vec3{}) || out.Impulse != (mgl64.Vec3{}) || out.Torque != (mgl64.Vec3{}) {
			contributed = true
		}
		accForce = accForce.Add(out.Force)
		accImpulse = accImpulse.Add(out.Impulse)
		accTorque = accTorque.Add(out.Torque)

		if out.EarlyExit {
			return &Output{Force: accForce, Impulse: accImpulse, Torque: accTorque, EarlyExit: true}
		}
	}

	if !contributed {
		return Empty
	}
	return &Output{Force: accForce, Impulse: accImpulse, Torque: accTorque}
}

// Close closes every member that owns resources and empties the chain.
func (c *Chain) Close() {
	for _, t := range c.transformers {
		t.Close()
	}
	c.Clear()
}
