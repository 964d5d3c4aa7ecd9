package entity

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a labelled clickable rectangle.
type Button struct {
	Rect  image.Rectangle
	Label string
}

func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw paints the button. A nil face falls back to the debug font.
func (b Button) Draw(screen *ebiten.Image, face text.Face, fill color.Color) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, true)

	cx, cy := float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+r.Dy()/2)
	if face == nil {
		ebitenutil.DebugPrintAt(screen, b.Label, int(cx)-len(b.Label)*3, int(cy)-8)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, b.Label, face, op)
}
