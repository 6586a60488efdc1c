package runtime

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/kinema/scene"
)

// Refresher is implemented by input sources that latch a frame snapshot
// from accumulated hardware events. The loop calls Refresh once at the
// top of every frame, before any relay transformer reads the source.
type Refresher interface {
	Refresh()
}

// Loop drives one loaded scene through the fixed frame sequence:
// input refresh, transformer execution, physics step, pose sync, script
// update hooks, script collision hooks. Everything runs synchronously on
// the caller's goroutine; there is exactly one Loop per loaded scene.
type Loop struct {
	log    zerolog.Logger
	loader *scene.Loader
	clock  *Clock
	input  Refresher
}

// NewLoop builds the driver for a loaded scene. input may be nil when no
// live source needs per-frame latching (headless runs, static fixtures).
func NewLoop(loader *scene.Loader, input Refresher, log zerolog.Logger) *Loop {
	return &Loop{
		log:    log,
		loader: loader,
		clock:  NewClock(),
		input:  input,
	}
}

// Clock returns the loop's clock, the scene's simulation time source.
func (l *Loop) Clock() *Clock {
	return l.clock
}

// Frame advances the scene by dt seconds, running every pipeline stage in
// order. Stages never panic on user data; a broken script or transformer
// has already been contained by its own layer before control returns here.
func (l *Loop) Frame(dt float64) {
	dt = l.clock.Advance(dt)

	if l.input != nil {
		l.input.Refresh()
	}

	reg := l.loader.Registry()
	world := l.loader.World()

	reg.ExecuteTransformers(dt, l.loader.Wind())

	if world != nil {
		world.Step(dt)
	}

	reg.SyncFromPhysics()

	if runner := l.loader.Runner(); runner != nil {
		runner.RunUpdate(dt)
		if world != nil {
			for _, c := range world.Contacts() {
				runner.RunCollision(dt, c.A, c.B)
			}
		}
	}
}

// Run paces Frame off a wall-clock ticker until ctx is cancelled. Deltas
// are measured, not assumed, so a slow terminal does not slow simulation
// time. Library users integrating their own loop call Frame directly.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Frame(now.Sub(last).Seconds())
			last = now
		}
	}
}
