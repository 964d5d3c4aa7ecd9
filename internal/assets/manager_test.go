package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"math/rand"
	"testing"
	"testing/fstest"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func encodeGIF(t *testing.T) []byte {
	t.Helper()
	pal := color.Palette{red, blue}

	first := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	second := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	for i := range second.Pix {
		second.Pix[i] = 1
	}

	var buf bytes.Buffer
	err := gif.EncodeAll(&buf, &gif.GIF{
		Image: []*image.Paletted{first, second},
		Delay: []int{5, 0},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadGIFComposesFrames(t *testing.T) {
	fsys := fstest.MapFS{"dance.gif": {Data: encodeGIF(t)}}

	anim, err := LoadGIF(fsys, "dance.gif")
	if err != nil {
		t.Fatalf("LoadGIF: %v", err)
	}
	if len(anim.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(anim.Frames))
	}
	if anim.Delays[0] != 50 || anim.Delays[1] != DefaultFrameDelay {
		t.Fatalf("delays = %v, want [50 %d]", anim.Delays, DefaultFrameDelay)
	}

	second := anim.Frames[1]
	if got := color.RGBAModel.Convert(second.At(0, 0)); got != blue {
		t.Fatalf("patched pixel = %v, want %v", got, blue)
	}
	if got := color.RGBAModel.Convert(second.At(3, 3)); got != red {
		t.Fatalf("untouched pixel = %v, want %v", got, red)
	}
	if second.Bounds().Dx() != 4 {
		t.Fatalf("frame width = %d, want 4", second.Bounds().Dx())
	}
}

func TestLoadGIFErrors(t *testing.T) {
	fsys := fstest.MapFS{"broken.gif": {Data: []byte("not a gif")}}
	if _, err := LoadGIF(fsys, "missing.gif"); err == nil {
		t.Fatal("missing file: want error")
	}
	if _, err := LoadGIF(fsys, "broken.gif"); err == nil {
		t.Fatal("broken file: want error")
	}
}

func TestLibraryPicksOnlyPresentFiles(t *testing.T) {
	data := encodeGIF(t)
	fsys := fstest.MapFS{
		"Sylveon sad.gif": {Data: data},
		"Rank B.gif":      {Data: data},
	}
	lib := NewLibrary(fsys, DefaultCatalog(), rand.New(rand.NewSource(1)))

	for i := 0; i < 5; i++ {
		if got := lib.GameOver().Name; got != "Sylveon sad.gif" {
			t.Fatalf("GameOver() = %q, want %q", got, "Sylveon sad.gif")
		}
	}
	if got := lib.Rank("B").Name; got != "Rank B.gif" {
		t.Fatalf("Rank(B) = %q", got)
	}
	if !lib.Normal().Empty() {
		t.Fatal("Normal() without files should be empty")
	}
	if !lib.Rank("S").Empty() || !lib.Rank("?").Empty() {
		t.Fatal("missing rank reaction should be empty")
	}
}

func TestLibraryToleratesBrokenFile(t *testing.T) {
	fsys := fstest.MapFS{"Eevee dancing.gif": {Data: []byte("garbage")}}
	lib := NewLibrary(fsys, DefaultCatalog(), rand.New(rand.NewSource(1)))
	if !lib.Normal().Empty() {
		t.Fatal("broken gif should degrade to an empty animation")
	}
}
