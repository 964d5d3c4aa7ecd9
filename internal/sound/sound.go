package sound

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Effect is a short cue played in response to the game.
type Effect int

const (
	Clear Effect = iota // arrow matched
	Fail                // early fail
	Ranked              // run finished with a rank
)

// Engine owns the audio context and one pre-rendered player per effect.
// A disabled Engine, or a nil one, is silent.
type Engine struct {
	ctx     *audio.Context
	players map[Effect]*audio.Player
	enabled bool
}

// New prepares the effects. ebiten allows one audio context per
// process, so New must be called once.
func New(enabled bool) *Engine {
	e := &Engine{enabled: enabled}
	if !enabled {
		return e
	}
	e.ctx = audio.NewContext(SampleRate)
	e.players = map[Effect]*audio.Player{
		Clear:  e.ctx.NewPlayerFromBytes(Tone(880, 0.08)),
		Fail:   e.ctx.NewPlayerFromBytes(Tone(220, 0.5)),
		Ranked: e.ctx.NewPlayerFromBytes(Sweep(440, 1320, 0.6)),
	}
	for _, p := range e.players {
		p.SetVolume(0.5)
	}
	return e
}

// Play restarts the effect from the beginning.
func (e *Engine) Play(fx Effect) {
	if e == nil || !e.enabled {
		return
	}
	p, ok := e.players[fx]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("[Sound] rewind: %v", err)
		return
	}
	p.Play()
}

// Tone renders a decaying sine as 16-bit little-endian stereo PCM.
func Tone(freq, durSec float64) []byte {
	return Sweep(freq, freq, durSec)
}

// Sweep glides linearly from one frequency to another.
func Sweep(from, to, durSec float64) []byte {
	n := int(SampleRate * durSec)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq := from + (to-from)*float64(i)/float64(n)
		phase += 2 * math.Pi * freq / SampleRate
		envelope := math.Exp(-4 * t)
		v := int16(math.Sin(phase) * 6000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
