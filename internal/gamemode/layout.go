package gamemode

import (
	"image"

	"evorun/internal/entity"
	"evorun/internal/lapse"
)

// Logical screen, scaled by ebiten to the window.
const (
	ScreenWidth  = 800
	ScreenHeight = 600

	BarY              = ScreenHeight / 2
	BarThickness      = 8
	BoxSize           = 40
	ReactionMaxHeight = BarY - 30
)

var (
	StartButton = entity.Button{
		Rect:  image.Rect(ScreenWidth/2-75, BarY+100, ScreenWidth/2+75, BarY+150),
		Label: "Start",
	}
	PlayAgainButton = entity.Button{
		Rect:  image.Rect(ScreenWidth/2-100, ScreenHeight-70, ScreenWidth/2+100, ScreenHeight-20),
		Label: "Play Again",
	}
)

// LaneX is the left edge of the box column for d. Up and Down share the
// centre lane.
func LaneX(d lapse.Direction) float32 {
	switch d {
	case lapse.Left:
		return ScreenWidth*0.25 - BoxSize/2
	case lapse.Right:
		return ScreenWidth*0.75 - BoxSize/2
	case lapse.Up, lapse.Down:
		return ScreenWidth/2 - BoxSize/2
	}
	return ScreenWidth/2 - BoxSize/2
}

// BoxFor places an arrow on screen. Position 0 is the bar.
func BoxFor(a lapse.Arrow) entity.ArrowBox {
	return entity.ArrowBox{
		X:         LaneX(a.Direction),
		Y:         float32(BarY + a.Position),
		Size:      BoxSize,
		Direction: a.Direction,
	}
}
