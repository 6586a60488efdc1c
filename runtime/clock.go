// Package runtime drives loaded scenes: the per-frame pipeline sequence
// and the clock that paces it.
package runtime

import (
	"github.com/lixenwraith/kinema/parameter"
)

// Clock tracks simulation time for one scene. It is advanced once at the
// start of every frame; everything downstream reads the same clamped
// delta, so a stalled process resumes without a catastrophic physics step.
type Clock struct {
	simTime  float64
	delta    float64
	frame    int64
	maxDelta float64
}

// NewClock starts a clock at zero with the default delta clamp.
func NewClock() *Clock {
	return &Clock{maxDelta: parameter.MaxFrameDelta}
}

// Advance clamps dt to [0, MaxFrameDelta], accumulates simulation time,
// and returns the delta this frame integrates with.
func (c *Clock) Advance(dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.delta = dt
	c.simTime += dt
	c.frame++
	return dt
}

// Now returns accumulated simulation time in seconds.
func (c *Clock) Now() float64 {
	return c.simTime
}

// Delta returns the last frame's clamped delta.
func (c *Clock) Delta() float64 {
	return c.delta
}

// Frame returns the number of frames advanced.
func (c *Clock) Frame() int64 {
	return c.frame
}
