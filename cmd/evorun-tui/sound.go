package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// beeper plays short sine blips. It stays silent when disabled or when
// no audio device could be opened.
type beeper struct {
	sr    beep.SampleRate
	ready bool
}

func newBeeper(enabled bool) *beeper {
	b := &beeper{sr: beep.SampleRate(44100)}
	if !enabled {
		return b
	}
	if err := speaker.Init(b.sr, b.sr.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[Sound] speaker init failed: %v", err)
		return b
	}
	b.ready = true
	return b
}

func (b *beeper) play(freq float64, d time.Duration) {
	if b == nil || !b.ready {
		return
	}
	sine, err := generators.SineTone(b.sr, freq)
	if err != nil {
		log.Printf("[Sound] %v", err)
		return
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	speaker.Play(beep.Take(b.sr.N(d), quiet))
}

func (b *beeper) close() {
	if b != nil && b.ready {
		speaker.Close()
	}
}
