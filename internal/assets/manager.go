package assets

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io/fs"
	"log"
	"math/rand"
	"sync"
)

// DefaultFrameDelay is used for frames that carry no delay, in ms.
const DefaultFrameDelay = 100

// Animation is a fully composed GIF: every frame is a complete picture.
type Animation struct {
	Name   string
	Frames []image.Image
	Delays []int // milliseconds, one per frame
}

func (a Animation) Empty() bool {
	return len(a.Frames) == 0
}

// LoadGIF decodes name from fsys and flattens its frames onto a canvas
// so each one can be drawn on its own.
func LoadGIF(fsys fs.FS, name string) (Animation, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Animation{}, fmt.Errorf("open gif %q: %w", name, err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return Animation{}, fmt.Errorf("decode gif %q: %w", name, err)
	}
	anim := compose(g)
	anim.Name = name
	return anim, nil
}

func compose(g *gif.GIF) Animation {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)
	anim := Animation{
		Frames: make([]image.Image, 0, len(g.Image)),
		Delays: make([]int, 0, len(g.Image)),
	}

	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		anim.Frames = append(anim.Frames, cloneRGBA(canvas))

		delay := DefaultFrameDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = g.Delay[i] * 10 // GIF delays are in 1/100 s
		}
		anim.Delays = append(anim.Delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return anim
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// Library picks and caches reaction animations from a folder. Missing
// or broken files are logged and skipped; callers get an empty
// Animation instead of an error.
type Library struct {
	fsys    fs.FS
	catalog Catalog
	rng     *rand.Rand

	mu    sync.Mutex
	cache map[string]Animation
}

func NewLibrary(fsys fs.FS, catalog Catalog, rng *rand.Rand) *Library {
	return &Library{
		fsys:    fsys,
		catalog: catalog,
		rng:     rng,
		cache:   make(map[string]Animation),
	}
}

// Normal returns a random dancing reaction for an active run.
func (l *Library) Normal() Animation {
	return l.pick(l.catalog.Normal)
}

// GameOver returns a random reaction for an early fail.
func (l *Library) GameOver() Animation {
	return l.pick(l.catalog.GameOver)
}

// Rank returns the reaction for a rank letter such as "B".
func (l *Library) Rank(letter string) Animation {
	name, ok := l.catalog.Rank[letter]
	if !ok {
		return Animation{}
	}
	return l.pick([]string{name})
}

// Available filters names down to files present in the folder.
func (l *Library) Available(names []string) []string {
	var out []string
	for _, name := range names {
		if _, err := fs.Stat(l.fsys, name); err == nil {
			out = append(out, name)
		}
	}
	return out
}

func (l *Library) pick(names []string) Animation {
	valid := l.Available(names)
	if len(valid) == 0 {
		return Animation{}
	}
	name := valid[l.rng.Intn(len(valid))]

	l.mu.Lock()
	defer l.mu.Unlock()
	if anim, ok := l.cache[name]; ok {
		return anim
	}
	anim, err := LoadGIF(l.fsys, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Assets] %v", err)
		}
		return Animation{}
	}
	l.cache[name] = anim
	return anim
}
