package gamemode

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"evorun/internal/entity"
	"evorun/internal/lapse"
)

// ResultLine is the verdict shown above the reaction.
func ResultLine(o lapse.Outcome, elapsed string) string {
	switch o.Kind {
	case lapse.OutcomeEarlyFail:
		return "You failed"
	case lapse.OutcomeRanked:
		return fmt.Sprintf("You passed with rank %s at %s!", o.Rank, elapsed)
	}
	return ""
}

// DrawGameOver shows the verdict and the Play Again button.
func DrawGameOver(screen *ebiten.Image, fonts Fonts, t float64, snap lapse.Snapshot, reaction *entity.Reaction) {
	screen.Fill(ColBlack)
	clr := Rainbow(t)
	drawBar(screen, clr)

	vector.DrawFilledRect(screen, 0, BarY, ScreenWidth, ScreenHeight-BarY, ColRed, false)
	drawText(screen, "GAME OVER", fonts.Big, ScreenWidth/2, BarY+BarY/2-20, ColBlack, text.AlignCenter)

	reaction.Draw(screen, ScreenWidth/2, BarY/2)

	line := ResultLine(snap.Outcome, FormatClock(snap.Elapsed))
	switch snap.Outcome.Kind {
	case lapse.OutcomeEarlyFail:
		drawText(screen, line, fonts.Big, ScreenWidth/2, BarY/2-100, ColRed, text.AlignCenter)
	case lapse.OutcomeRanked:
		drawText(screen, line, fonts.Regular, ScreenWidth/2, BarY/2-100, ColYellow, text.AlignCenter)
	}

	PlayAgainButton.Draw(screen, fonts.Regular, clr)
}
