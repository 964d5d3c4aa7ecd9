package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"evorun/internal/config"
	"evorun/internal/gamemode"
	"evorun/internal/lapse"
)

const WindowTitle = "Evo Run! Endless Arrow Lapse"

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// 1. Window Setup
	ebiten.SetWindowSize(gamemode.ScreenWidth*cfg.Scale, gamemode.ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(lapse.StepsPerSecond)

	// 2. Initialize Game
	game := NewGame(cfg)

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
