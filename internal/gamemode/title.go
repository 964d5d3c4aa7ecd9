package gamemode

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawTitle shows the game name and the Start button.
func DrawTitle(screen *ebiten.Image, fonts Fonts, t float64) {
	screen.Fill(ColBlack)
	clr := Rainbow(t)
	drawBar(screen, clr)

	drawText(screen, "Evo Run!", fonts.Big, ScreenWidth/2, BarY/2-20, clr, text.AlignCenter)
	drawText(screen, "Endless Arrow Lapse", fonts.Regular, ScreenWidth/2, BarY/2+30, clr, text.AlignCenter)
	StartButton.Draw(screen, fonts.Regular, clr)
}
