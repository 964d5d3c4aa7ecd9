package gamemode

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"evorun/internal/entity"
	"evorun/internal/lapse"
)

// DrawPlaying shows the running timer, the reaction and every arrow.
func DrawPlaying(screen *ebiten.Image, fonts Fonts, t float64, snap lapse.Snapshot, reaction *entity.Reaction) {
	screen.Fill(ColBlack)
	clr := Rainbow(t)
	drawBar(screen, clr)

	reaction.Draw(screen, ScreenWidth/2, BarY/2)
	drawText(screen, FormatTimer(snap.Elapsed), fonts.Regular, ScreenWidth-20, 36, clr, text.AlignEnd)

	for _, a := range snap.Arrows {
		BoxFor(a).Draw(screen, clr)
	}
}
