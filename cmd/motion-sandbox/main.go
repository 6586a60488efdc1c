// motion-sandbox drives a scene interactively in the terminal: WASD and
// the mouse wheel feed the relay transformers, the viewport shows a
// top-down projection of the simulated entities, and physics contacts
// play a short tone.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/config"
	"github.com/lixenwraith/kinema/game"
	"github.com/lixenwraith/kinema/logging"
	"github.com/lixenwraith/kinema/physics"
	"github.com/lixenwraith/kinema/runtime"
	"github.com/lixenwraith/kinema/scene"
	"github.com/lixenwraith/kinema/script"
)

// demoScene is what runs when no -scene is given: a drivable car, a
// wandering animal, and a fluttering entity sharing one field.
const demoScene = `{
	"name": "sandbox demo",
	"wind": {"x": 1.5, "y": 0, "z": 0},
	"entities": [
		{
			"id": "car",
			"name": "Car",
			"position": {"x": 0, "y": 0.5, "z": 0},
			"physics": {"mass": 4, "radius": 0.5},
			"transformers": [
				{"type": "input_relay", "inputMapping": {
					"keyboard": {"w": "throttle", "s": "brake", "a": "steer_left", "d": "steer_right", "space": "handbrake"}
				}},
				{"type": "car"}
			]
		},
		{
			"id": "critter",
			"name": "Critter",
			"position": {"x": -8, "y": 0.5, "z": -5},
			"physics": {"mass": 1, "radius": 0.4},
			"transformers": [{"type": "animal"}]
		},
		{
			"id": "moth",
			"name": "Moth",
			"position": {"x": 6, "y": 4, "z": 4},
			"physics": {"mass": 0.2, "radius": 0.3},
			"transformers": [{"type": "flutter"}]
		}
	]
}`

func main() {
	scenePath := flag.String("scene", "", "scene document (default: built-in demo)")
	configDir := flag.String("config", ".", "directory holding kinema.toml")
	seed := flag.Int64("seed", 0, "wander randomness seed (0 = time)")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	// The screen owns the terminal, logs go to a quiet level on stderr
	log := logging.Stderr("error", false)

	data := []byte(demoScene)
	if *scenePath != "" {
		if data, err = os.ReadFile(*scenePath); err != nil {
			fmt.Fprintf(os.Stderr, "read scene: %v\n", err)
			os.Exit(1)
		}
	}
	doc, err := scene.ParseDocument(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse scene: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	world := physics.NewKineticWorld(physics.WorldConfig{
		Gravity:        mgl64.Vec3{0, cfg.World.Gravity, 0},
		LinearDamping:  cfg.World.LinearDamping,
		AngularDamping: cfg.World.AngularDamping,
		GroundPlane:    cfg.World.GroundPlane,
	})

	src := newTermSource()
	view := newViewport(screen)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	var loop *runtime.Loop
	loader := scene.Load(doc, scene.Deps{
		World:  world,
		Source: src,
		Visual: view.visualFor,
		Binding: func(reg *scene.Registry) script.GameBinding {
			return game.New(reg, world, func() float64 {
				if loop == nil {
					return 0
				}
				return loop.Clock().Now()
			}, log)
		},
		Rand:   rand.New(rand.NewSource(*seed)),
		Logger: log,
	})
	loop = runtime.NewLoop(loader, src, log)

	cue := newContactCue(cfg.Audio.Enabled)

	s := &sandbox{
		screen: screen,
		src:    src,
		view:   view,
		loop:   loop,
		loader: loader,
		world:  world,
		cue:    cue,
		rate:   cfg.FrameRate,
	}
	s.run()

	loader.Unload()
	cue.close()
	screen.Fini()
}

type sandbox struct {
	screen tcell.Screen
	src    *termSource
	view   *viewport
	loop   *runtime.Loop
	loader *scene.Loader
	world  *physics.KineticWorld
	cue    *contactCue
	rate   int
}

func (s *sandbox) run() {
	rate := s.rate
	if rate < 1 || rate > 240 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			s.loop.Frame(now.Sub(last).Seconds())
			last = now

			if len(s.world.Contacts()) > 0 {
				s.cue.play()
			}
			s.view.draw(s.loader.Registry(), s.loop.Clock())
		}
	}
}

func (s *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		s.src.keyEvent(ev)

	case *tcell.EventMouse:
		s.src.mouseEvent(ev)

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}
