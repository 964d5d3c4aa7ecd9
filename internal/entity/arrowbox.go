package entity

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"evorun/internal/lapse"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ArrowBox is one falling arrow as drawn on screen.
type ArrowBox struct {
	X, Y, Size float32
	Direction  lapse.Direction
}

// Draw fills the box and puts a white triangle in it pointing the way.
func (b ArrowBox) Draw(screen *ebiten.Image, fill color.Color) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Size, b.Size, fill, true)

	cx, cy := b.X+b.Size/2, b.Y+b.Size/2
	pts := Triangle(b.Direction, cx, cy, 10)
	vs := make([]ebiten.Vertex, 0, len(pts))
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// Triangle returns the corners of an arrow head of half-size s centred
// on (cx, cy), tip first.
func Triangle(d lapse.Direction, cx, cy, s float32) [3][2]float32 {
	switch d {
	case lapse.Up:
		return [3][2]float32{{cx, cy - s}, {cx - s, cy + s}, {cx + s, cy + s}}
	case lapse.Down:
		return [3][2]float32{{cx, cy + s}, {cx - s, cy - s}, {cx + s, cy - s}}
	case lapse.Left:
		return [3][2]float32{{cx - s, cy}, {cx + s, cy - s}, {cx + s, cy + s}}
	case lapse.Right:
		return [3][2]float32{{cx + s, cy}, {cx - s, cy - s}, {cx - s, cy + s}}
	}
	return [3][2]float32{{cx, cy}, {cx, cy}, {cx, cy}}
}
