package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"evorun/internal/assets"
	"evorun/internal/config"
	"evorun/internal/gamemode"
	"evorun/internal/lapse"
	"evorun/internal/sound"
)

// NewGame wires the session to its window, sound and reactions.
func NewGame(cfg config.Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gifs := os.DirFS(cfg.GifDir)
	catalog, err := assets.LoadCatalog(gifs)
	if err != nil {
		log.Printf("[Assets] %v, using built-in reaction list", err)
	}

	fonts, err := gamemode.LoadFonts()
	if err != nil {
		log.Printf("[Font] %v, using debug font", err)
	}

	g := &Game{
		debug:     cfg.Debug,
		session:   lapse.NewSession(lapse.SystemClock{}, rand.New(rand.NewSource(seed))),
		reactions: assets.NewLibrary(gifs, catalog, rand.New(rand.NewSource(seed+1))),
		sound:     sound.New(cfg.Sound),
		fonts:     fonts,
		born:      time.Now(),
	}
	g.lastUpdate = g.born

	if len(g.reactions.Available(catalog.Normal)) == 0 {
		log.Printf("[Assets] no dancing reactions found in %q", cfg.GifDir)
	}
	return g
}
