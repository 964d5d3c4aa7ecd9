package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"evorun/internal/assets"
	"evorun/internal/entity"
	"evorun/internal/gamemode"
	"evorun/internal/lapse"
	"evorun/internal/sound"
)

// Game adapts a lapse.Session to ebiten's Update/Draw loop.
type Game struct {
	debug bool

	session   *lapse.Session
	reactions *assets.Library
	reaction  *entity.Reaction
	sound     *sound.Engine
	fonts     gamemode.Fonts

	born       time.Time
	lastUpdate time.Time

	keys    []ebiten.Key
	presses []lapse.Direction
}

// keyDirection maps the four arrow keys; everything else is ignored.
func keyDirection(k ebiten.Key) (lapse.Direction, bool) {
	switch k {
	case ebiten.KeyArrowUp:
		return lapse.Up, true
	case ebiten.KeyArrowDown:
		return lapse.Down, true
	case ebiten.KeyArrowLeft:
		return lapse.Left, true
	case ebiten.KeyArrowRight:
		return lapse.Right, true
	}
	return 0, false
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	now := time.Now()
	dt := int(now.Sub(g.lastUpdate).Milliseconds())
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch g.session.State() {
	case lapse.NotStarted:
		if g.buttonPressed(gamemode.StartButton) && g.session.Start() {
			g.begin()
		}
	case lapse.GameOver:
		if g.buttonPressed(gamemode.PlayAgainButton) && g.session.PlayAgain() {
			g.begin()
		}
	}

	if g.session.State() == lapse.Playing {
		g.step()
	}

	g.reaction.Update(dt)
	return nil
}

func (g *Game) step() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	g.presses = g.presses[:0]
	for _, k := range g.keys {
		if d, ok := keyDirection(k); ok {
			g.presses = append(g.presses, d)
		}
	}

	res := g.session.Step(g.presses)
	if res.Cleared > 0 {
		g.sound.Play(sound.Clear)
	}
	if res.Ended {
		g.finish()
	}
}

// begin runs after Start or PlayAgain was accepted.
func (g *Game) begin() {
	g.reaction = g.newReaction(g.reactions.Normal())
	if g.debug {
		log.Printf("[Session] started")
	}
}

// finish runs once on the step that ended the session.
func (g *Game) finish() {
	out := g.session.Outcome()
	switch out.Kind {
	case lapse.OutcomeRanked:
		g.reaction = g.newReaction(g.reactions.Rank(out.Rank.String()))
		g.sound.Play(sound.Ranked)
	default:
		g.reaction = g.newReaction(g.reactions.GameOver())
		g.sound.Play(sound.Fail)
	}
	if g.debug {
		log.Printf("[Session] ended after %s: %s", gamemode.FormatTimer(g.session.Elapsed()), out)
	}
}

func (g *Game) newReaction(anim assets.Animation) *entity.Reaction {
	if anim.Empty() {
		return nil
	}
	return entity.NewReaction(anim, gamemode.ReactionMaxHeight)
}

// buttonPressed reports a click on b, or Enter/Space as a shortcut.
func (g *Game) buttonPressed(b entity.Button) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	t := float64(time.Since(g.born).Milliseconds()) / 500
	snap := g.session.Snapshot()

	switch snap.State {
	case lapse.NotStarted:
		gamemode.DrawTitle(screen, g.fonts, t)
	case lapse.Playing:
		gamemode.DrawPlaying(screen, g.fonts, t, snap, g.reaction)
	case lapse.GameOver:
		gamemode.DrawGameOver(screen, g.fonts, t, snap, g.reaction)
	}
}

// Layout: Scaling Strategy
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Always render at 800x600, let Ebiten scale it up
	return gamemode.ScreenWidth, gamemode.ScreenHeight
}
