package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"evorun/internal/lapse"
)

var barColors = []tcell.Color{
	tcell.ColorRed, tcell.ColorOrange, tcell.ColorYellow,
	tcell.ColorGreen, tcell.ColorBlue, tcell.ColorPurple,
}

func glyph(d lapse.Direction) rune {
	switch d {
	case lapse.Up:
		return '▲'
	case lapse.Down:
		return '▼'
	case lapse.Left:
		return '◀'
	case lapse.Right:
		return '▶'
	}
	return '?'
}

// laneColumn mirrors the window layout: left and right at the quarter
// marks, up and down sharing the centre.
func laneColumn(d lapse.Direction, width int) int {
	switch d {
	case lapse.Left:
		return width / 4
	case lapse.Right:
		return width * 3 / 4
	}
	return width / 2
}

// arrowRow maps a fall distance onto the rows between the bar and the
// bottom line.
func arrowRow(pos float64, barRow, height int) int {
	span := float64(height - 1 - barRow)
	row := barRow + int(pos/lapse.FloorDistance*span)
	if row > height-1 {
		row = height - 1
	}
	return row
}

func (a *app) draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	barRow := h / 2

	cycle := int(time.Since(a.born) / (250 * time.Millisecond))
	barStyle := tcell.StyleDefault.Foreground(barColors[cycle%len(barColors)])
	for x := 0; x < w; x++ {
		s.SetContent(x, barRow, '━', nil, barStyle)
	}

	snap := a.session.Snapshot()
	bold := tcell.StyleDefault.Bold(true)
	switch snap.State {
	case lapse.NotStarted:
		center(s, barRow/2-1, "Evo Run!", bold.Foreground(barColors[cycle%len(barColors)]))
		center(s, barRow/2+1, "Endless Arrow Lapse", tcell.StyleDefault)
		center(s, barRow+3, "[ Enter to start ]", bold)

	case lapse.Playing:
		timer := fmt.Sprintf("%.2fs", snap.Elapsed.Seconds())
		put(s, w-len(timer)-2, 1, timer, bold)
		for _, arrow := range snap.Arrows {
			s.SetContent(laneColumn(arrow.Direction, w), arrowRow(arrow.Position, barRow, h), glyph(arrow.Direction), nil, barStyle)
		}

	case lapse.GameOver:
		red := tcell.StyleDefault.Background(tcell.ColorDarkRed)
		for y := barRow + 1; y < h; y++ {
			for x := 0; x < w; x++ {
				s.SetContent(x, y, ' ', nil, red)
			}
		}
		center(s, barRow+(h-barRow)/2, "GAME OVER", red.Bold(true))
		elapsed := snap.Elapsed.Truncate(time.Second)
		if snap.Outcome.Kind == lapse.OutcomeRanked {
			center(s, barRow/2, fmt.Sprintf("You passed with rank %s at %v!", snap.Outcome.Rank, elapsed), bold.Foreground(tcell.ColorYellow))
		} else {
			center(s, barRow/2, "You failed", bold.Foreground(tcell.ColorRed))
		}
		center(s, h-2, "[ Enter to play again ]", red.Bold(true))
	}
	s.Show()
}

func put(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func center(s tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	put(s, (w-len([]rune(text)))/2, y, text, style)
}
