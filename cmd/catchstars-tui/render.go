package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"catchstars/internal/config"
	"catchstars/internal/gamemode"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStar   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBox    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleLives  = tcell.StyleDefault.Foreground(tcell.ColorIndianRed)
	styleDanger = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGreen  = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleBlue   = tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	stylePink   = tcell.StyleDefault.Foreground(tcell.ColorPink)
)

// project maps a field coordinate onto a cell index in [0, cells).
func project(v, field float64, cells int) int {
	if cells <= 0 || field <= 0 {
		return 0
	}
	c := int(v * float64(cells) / field)
	switch {
	case c < 0:
		return 0
	case c >= cells:
		return cells - 1
	}
	return c
}

// span is the number of cells covering length, at least one.
func span(length, field float64, cells int) int {
	n := int(length*float64(cells)/field + 0.5)
	if n < 1 {
		return 1
	}
	return n
}

func draw(s tcell.Screen, m *gamemode.Machine, tick int) {
	s.Clear()
	switch m.Mode() {
	case gamemode.ModeMenu:
		drawMenu(s)
	case gamemode.ModePlaying:
		drawPlaying(s, m)
	case gamemode.ModeSettings:
		drawSettings(s, m)
	case gamemode.ModeLeaderboard:
		drawLeaderboard(s, m)
	case gamemode.ModeProfile:
		drawProfile(s, m, tick)
	case gamemode.ModeGameOver:
		drawGameOver(s, m)
	}
	s.Show()
}

func drawMenu(s tcell.Screen) {
	w, h := s.Size()
	x := max(0, w/2-8)
	puts(s, x, 2, styleTitle, config.WindowTitle)
	puts(s, x, 5, styleGreen, "[1] Start Game")
	puts(s, x, 6, styleBlue, "[2] Settings")
	puts(s, x, 7, styleText, "[3] Leaderboard")
	puts(s, x, 8, stylePink, "[4] Profile")
	puts(s, x, 10, styleDim, "ESC to quit")
	puts(s, 0, h-1, styleDim, config.Credits)
	puts(s, w-len(config.Version)-1, h-1, styleDim, config.Version)
}

func drawPlaying(s tcell.Screen, m *gamemode.Machine) {
	w, h := s.Size()
	wd := m.World()
	cfg := wd.Tuning()
	fw, fh := float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)

	for _, st := range wd.Stars() {
		cx := project(st.X+st.Width/2, fw, w)
		cy := project(st.Y+st.Height/2, fh, h)
		s.SetContent(cx, cy, '*', nil, styleStar)
	}

	p := wd.Player
	px := project(p.X, fw, w)
	py := project(p.Y+p.Height/2, fh, h)
	n := span(p.Width, fw, w)
	for i := 0; i < n; i++ {
		r := '='
		switch i {
		case 0:
			r = '['
		case n - 1:
			r = ']'
		}
		s.SetContent(px+i, py, r, nil, styleBox)
	}

	puts(s, 0, 0, styleText, fmt.Sprintf("Score: %d", p.Score))
	puts(s, 0, 1, styleLives, fmt.Sprintf("Lives: %d", p.Lives))
}

func drawSettings(s tcell.Screen, m *gamemode.Machine) {
	puts(s, 2, 1, styleText, "Settings - Use UP/DOWN to change volume. ESC to exit.")
	vol := m.Volume()
	puts(s, 2, 3, styleBlue, fmt.Sprintf("Music Volume: %d%%", int(vol*100+0.5)))

	const bar = 20
	filled := int(vol*bar + 0.5)
	for i := 0; i < bar; i++ {
		r := '-'
		if i < filled {
			r = '#'
		}
		s.SetContent(2+i, 4, r, nil, styleBlue)
	}
}

func drawLeaderboard(s tcell.Screen, m *gamemode.Machine) {
	w, _ := s.Size()
	x := max(0, w/2-12)
	p := m.Profile()
	puts(s, x, 2, styleTitle, "LEADERBOARD")
	puts(s, x, 4, styleText, fmt.Sprintf("%s - High Score: %d", p.Username, p.Highscore))
	puts(s, x, 8, styleDim, "Press ESC to return")
}

func drawProfile(s tcell.Screen, m *gamemode.Machine, tick int) {
	puts(s, 2, 2, styleText, "Enter your name (ENTER to confirm):")
	name := m.NameInput()
	if tick/30%2 == 0 {
		name += "_"
	}
	puts(s, 2, 4, styleStar, name)
	puts(s, 2, 6, styleDim, "ESC to cancel")
}

func drawGameOver(s tcell.Screen, m *gamemode.Machine) {
	w, h := s.Size()
	lines := []struct {
		style tcell.Style
		text  string
	}{
		{styleDanger, "Game Over!"},
		{styleText, fmt.Sprintf("Your Score: %d", m.FinalScore())},
		{styleStar, fmt.Sprintf("High Score: %d", m.Profile().Highscore)},
		{styleText, "Press [M] to go to Main Menu or [ESC] to Exit"},
	}
	y := max(0, h/2-len(lines))
	for i, l := range lines {
		puts(s, max(0, (w-len(l.text))/2), y+i*2, l.style, l.text)
	}
}

func puts(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
