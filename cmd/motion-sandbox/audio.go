package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// contactCue plays a short tone when physics reports contacts, throttled
// so a resting contact pair does not buzz every frame.
type contactCue struct {
	ready    bool
	lastPlay time.Time
}

const cueThrottle = 250 * time.Millisecond

func newContactCue(enabled bool) *contactCue {
	c := &contactCue{}
	if !enabled {
		return c
	}
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		c.ready = true
	}
	return c
}

func (c *contactCue) play() {
	if !c.ready || time.Since(c.lastPlay) < cueThrottle {
		return
	}
	c.lastPlay = time.Now()

	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

func (c *contactCue) close() {
	if c.ready {
		speaker.Close()
	}
}
