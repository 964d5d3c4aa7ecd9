package gamemode

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	ColBlack  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColWhite  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColRed    = color.RGBA{0xc8, 0x00, 0x00, 0xff}
	ColYellow = color.RGBA{0xff, 0xfb, 0x00, 0xff}
)

// Fonts holds the faces used on every screen. Nil faces mean the debug
// font is used instead.
type Fonts struct {
	Regular text.Face
	Big     text.Face
}

func LoadFonts() (Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return Fonts{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return Fonts{}, fmt.Errorf("load bold font: %w", err)
	}
	return Fonts{
		Regular: &text.GoTextFace{Source: regular, Size: 26},
		Big:     &text.GoTextFace{Source: bold, Size: 48},
	}, nil
}

// Rainbow cycles smoothly through hues as t grows.
func Rainbow(t float64) color.RGBA {
	return color.RGBA{
		R: uint8(128 + 127*math.Sin(t)),
		G: uint8(128 + 127*math.Sin(t+2)),
		B: uint8(128 + 127*math.Sin(t+4)),
		A: 0xff,
	}
}

// FormatClock renders d as M:SS.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// FormatTimer renders d as M:SS:cc with hundredths.
func FormatTimer(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%s:%02d", FormatClock(d), (ms%1000)/10)
}

func drawBar(screen *ebiten.Image, clr color.Color) {
	vector.DrawFilledRect(screen, 0, BarY-BarThickness/2, ScreenWidth, BarThickness, clr, false)
}

// drawText draws s with its anchor at (x, y) using align on both axes.
func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
