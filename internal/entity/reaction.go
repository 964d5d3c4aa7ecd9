package entity

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"evorun/internal/assets"
)

// Playback loops through frames with per-frame durations.
type Playback struct {
	delays []int // ms
	index  int
	timer  int // ms spent on the current frame
}

func NewPlayback(delays []int) Playback {
	return Playback{delays: delays}
}

// Update accumulates dt (ms) and moves to the next frame once the
// current one has been shown long enough.
func (p *Playback) Update(dt int) {
	if len(p.delays) == 0 {
		return
	}
	p.timer += dt
	if p.timer >= p.delays[p.index] {
		p.timer = 0
		p.index = (p.index + 1) % len(p.delays)
	}
}

func (p *Playback) Frame() int {
	return p.index
}

// Reaction is a decorative looping animation. The zero value draws nothing.
type Reaction struct {
	frames    []*ebiten.Image
	play      Playback
	maxHeight float64
}

// NewReaction uploads an animation. It never grows frames past maxHeight.
func NewReaction(anim assets.Animation, maxHeight float64) *Reaction {
	r := &Reaction{
		frames:    make([]*ebiten.Image, 0, len(anim.Frames)),
		play:      NewPlayback(anim.Delays),
		maxHeight: maxHeight,
	}
	for _, f := range anim.Frames {
		r.frames = append(r.frames, ebiten.NewImageFromImage(f))
	}
	return r
}

func (r *Reaction) Update(dt int) {
	if r == nil || len(r.frames) == 0 {
		return
	}
	r.play.Update(dt)
}

// Draw centres the current frame on (cx, cy).
func (r *Reaction) Draw(screen *ebiten.Image, cx, cy float64) {
	if r == nil || len(r.frames) == 0 {
		return
	}
	img := r.frames[r.play.Frame()]
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scale := math.Min(r.maxHeight/float64(h), 1)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, cy-float64(h)*scale/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
