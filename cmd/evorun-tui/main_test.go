package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"evorun/internal/config"
	"evorun/internal/lapse"
)

func TestKeyDirection(t *testing.T) {
	cases := map[tcell.Key]lapse.Direction{
		tcell.KeyUp:    lapse.Up,
		tcell.KeyDown:  lapse.Down,
		tcell.KeyLeft:  lapse.Left,
		tcell.KeyRight: lapse.Right,
	}
	for k, want := range cases {
		if got, ok := keyDirection(k); !ok || got != want {
			t.Errorf("keyDirection(%v) = %v, %v; want %v", k, got, ok, want)
		}
	}
	if _, ok := keyDirection(tcell.KeyTab); ok {
		t.Error("tab mapped to a direction")
	}
}

func TestArrowRow(t *testing.T) {
	if got := arrowRow(0, 10, 21); got != 10 {
		t.Fatalf("row at bar = %d, want 10", got)
	}
	if got := arrowRow(lapse.FloorDistance, 10, 21); got != 20 {
		t.Fatalf("row at floor = %d, want 20", got)
	}
	if got := arrowRow(lapse.FloorDistance*2, 10, 21); got != 20 {
		t.Fatalf("row past floor = %d, want clamp to 20", got)
	}
}

func TestLaneColumn(t *testing.T) {
	if laneColumn(lapse.Up, 80) != laneColumn(lapse.Down, 80) {
		t.Fatal("up and down should share a column")
	}
	if laneColumn(lapse.Left, 80) != 20 || laneColumn(lapse.Right, 80) != 60 {
		t.Fatalf("columns = %d, %d", laneColumn(lapse.Left, 80), laneColumn(lapse.Right, 80))
	}
}

func TestAppRunsASessionOnASimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Sound = false
	cfg.Seed = 3
	a := newApp(screen, cfg)

	if !a.handleKey(tcell.KeyEnter, 0) {
		t.Fatal("enter stopped the app")
	}
	if a.session.State() != lapse.Playing {
		t.Fatalf("state = %v, want playing", a.session.State())
	}
	for i := 0; i < lapse.SpawnEverySteps; i++ {
		a.tick()
	}
	front := a.session.Snapshot().Arrows[0]
	wrong := lapse.Directions[(int(front.Direction)+1)%len(lapse.Directions)]
	keys := map[lapse.Direction]tcell.Key{
		lapse.Up: tcell.KeyUp, lapse.Down: tcell.KeyDown,
		lapse.Left: tcell.KeyLeft, lapse.Right: tcell.KeyRight,
	}
	a.handleKey(keys[wrong], 0)
	a.tick()
	a.draw()

	if a.session.State() != lapse.GameOver {
		t.Fatalf("state = %v, want game over", a.session.State())
	}
	if a.session.Elapsed() > time.Minute {
		t.Fatalf("elapsed = %v", a.session.Elapsed())
	}
	if a.handleKey(tcell.KeyEscape, 0) {
		t.Fatal("escape did not stop the app")
	}
}
