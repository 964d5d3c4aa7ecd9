// Command evorun-tui plays Evo Run! in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"evorun/internal/config"
	"evorun/internal/lapse"
)

type app struct {
	screen  tcell.Screen
	session *lapse.Session
	sound   *beeper
	debug   bool
	born    time.Time

	presses []lapse.Direction
}

func newApp(screen tcell.Screen, cfg config.Config) *app {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &app{
		screen:  screen,
		session: lapse.NewSession(lapse.SystemClock{}, rand.New(rand.NewSource(seed))),
		sound:   newBeeper(cfg.Sound),
		debug:   cfg.Debug,
		born:    time.Now(),
	}
}

// handle applies one terminal event and reports whether to keep running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q') {
		return false
	}
	if key == tcell.KeyEnter || (key == tcell.KeyRune && r == ' ') {
		if a.session.Start() || a.session.PlayAgain() {
			a.presses = a.presses[:0]
			if a.debug {
				log.Printf("[Session] started")
			}
		}
		return true
	}
	if d, ok := keyDirection(key); ok && a.session.State() == lapse.Playing {
		a.presses = append(a.presses, d)
	}
	return true
}

// keyDirection maps the four arrow keys; everything else is ignored.
func keyDirection(k tcell.Key) (lapse.Direction, bool) {
	switch k {
	case tcell.KeyUp:
		return lapse.Up, true
	case tcell.KeyDown:
		return lapse.Down, true
	case tcell.KeyLeft:
		return lapse.Left, true
	case tcell.KeyRight:
		return lapse.Right, true
	}
	return 0, false
}

// tick drains the presses gathered since the last tick into one step.
func (a *app) tick() {
	res := a.session.Step(a.presses)
	a.presses = a.presses[:0]

	if res.Cleared > 0 {
		a.sound.play(880, 50*time.Millisecond)
	}
	if !res.Ended {
		return
	}
	out := a.session.Outcome()
	if out.Kind == lapse.OutcomeRanked {
		a.sound.play(1320, 300*time.Millisecond)
	} else {
		a.sound.play(220, 400*time.Millisecond)
	}
	if a.debug {
		log.Printf("[Session] ended after %v: %s", a.session.Elapsed().Round(time.Millisecond), out)
	}
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / lapse.StepsPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "evorun-tui: %v\n", err)
		os.Exit(2)
	}

	// The terminal belongs to tcell, so logs go to a file.
	logPath := filepath.Join(os.TempDir(), "evorun-tui.log")
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	a := newApp(screen, cfg)
	defer a.sound.close()
	defer screen.Fini()
	a.run()
}
