// Package gamemode drives the screens of the game as one state machine.
//
// Transitions:
//
//	Menu        1 -> Playing, 2 -> Settings, 3 -> Leaderboard, 4 -> Profile, Esc -> quit
//	Playing     lives reach 0 -> GameOver, Esc -> quit
//	GameOver    M -> Menu (round reset), Esc -> quit
//	Settings    Up/Down volume, Esc -> Menu
//	Leaderboard Esc -> Menu
//	Profile     text, Backspace, Enter -> Menu (save), Esc -> Menu
//
// A close request quits from any mode.
package gamemode

import (
	"math"
	"strings"
	"unicode"

	"catchstars/internal/config"
	"catchstars/internal/profile"
	"catchstars/internal/world"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeSettings
	ModeLeaderboard
	ModeProfile
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeSettings:
		return "settings"
	case ModeLeaderboard:
		return "leaderboard"
	case ModeProfile:
		return "profile"
	case ModeGameOver:
		return "game over"
	}
	return "unknown"
}

// Frame reports what one Update did, for sound cues and logging.
type Frame struct {
	Caught       int
	Missed       int
	Entered      Mode // valid when Changed
	Changed      bool
	NewHighscore bool
	Saved        bool
	Quit         bool
}

// Machine owns the world, the loaded profile and the settings.
type Machine struct {
	mode    Mode
	cfg     config.Tuning
	world   *world.World
	store   profile.Store
	profile profile.Profile

	volume     float64
	nameInput  []rune
	finalScore int
	quit       bool
}

// New starts at the menu.
func New(w *world.World, store profile.Store, p profile.Profile) *Machine {
	cfg := w.Tuning()
	return &Machine{
		mode:    ModeMenu,
		cfg:     cfg,
		world:   w,
		store:   store,
		profile: p,
		volume:  cfg.Volume,
	}
}

func (m *Machine) Mode() Mode               { return m.mode }
func (m *Machine) World() *world.World      { return m.world }
func (m *Machine) Profile() profile.Profile { return m.profile }
func (m *Machine) Volume() float64          { return m.volume }
func (m *Machine) NameInput() string        { return string(m.nameInput) }
func (m *Machine) FinalScore() int          { return m.finalScore }
func (m *Machine) Done() bool               { return m.quit }

// Update advances one frame. The returned error is a persistence failure;
// the state change it belonged to has still been applied.
func (m *Machine) Update(in Input) (Frame, error) {
	var f Frame
	if m.quit || in.Close {
		m.quit = true
		f.Quit = true
		return f, nil
	}

	var err error
	switch m.mode {
	case ModeMenu:
		err = m.updateMenu(in, &f)
	case ModePlaying:
		err = m.updatePlaying(in, &f)
	case ModeGameOver:
		m.updateGameOver(in, &f)
	case ModeSettings:
		m.updateSettings(in, &f)
	case ModeLeaderboard:
		if in.JustPressed(KeyEscape) {
			m.enter(ModeMenu, &f)
		}
	case ModeProfile:
		err = m.updateProfile(in, &f)
	}
	f.Quit = m.quit
	return f, err
}

func (m *Machine) enter(mode Mode, f *Frame) {
	m.mode = mode
	f.Entered = mode
	f.Changed = true
}

func (m *Machine) updateMenu(in Input, f *Frame) error {
	switch {
	case in.JustPressed(KeyEscape):
		m.quit = true
	case in.JustPressed(Key1):
		m.enter(ModePlaying, f)
	case in.JustPressed(Key2):
		m.enter(ModeSettings, f)
	case in.JustPressed(Key3):
		m.enter(ModeLeaderboard, f)
		return m.commitScore(m.world.Player.Score, f)
	case in.JustPressed(Key4):
		m.nameInput = m.nameInput[:0]
		m.enter(ModeProfile, f)
	}
	return nil
}

func (m *Machine) updatePlaying(in Input, f *Frame) error {
	if in.JustPressed(KeyEscape) {
		m.quit = true
		return nil
	}

	res := m.world.Step(in.Direction())
	f.Caught, f.Missed = res.Caught, res.Missed

	if !m.world.Over() {
		return nil
	}
	m.finalScore = m.world.Player.Score
	m.enter(ModeGameOver, f)
	return m.commitScore(m.finalScore, f)
}

func (m *Machine) updateGameOver(in Input, f *Frame) {
	switch {
	case in.JustPressed(KeyEscape):
		m.quit = true
	case in.JustPressed(KeyM):
		m.world.Reset()
		m.enter(ModeMenu, f)
	}
}

func (m *Machine) updateSettings(in Input, f *Frame) {
	if in.JustPressed(KeyEscape) {
		m.enter(ModeMenu, f)
		return
	}
	if in.JustPressed(KeyUp) {
		m.volume = math.Min(m.volume+m.cfg.VolumeStep, 1)
	}
	if in.JustPressed(KeyDown) {
		m.volume = math.Max(m.volume-m.cfg.VolumeStep, 0)
	}
	// Keep repeated steps landing on exact tenths.
	m.volume = math.Round(m.volume*1000) / 1000
}

func (m *Machine) updateProfile(in Input, f *Frame) error {
	for _, r := range in.Text {
		if unicode.IsPrint(r) && len(m.nameInput) < m.cfg.MaxNameLen {
			m.nameInput = append(m.nameInput, r)
		}
	}
	for _, k := range in.Pressed {
		switch k {
		case KeyBackspace:
			if n := len(m.nameInput); n > 0 {
				m.nameInput = m.nameInput[:n-1]
			}
		case KeyEscape:
			m.enter(ModeMenu, f)
			return nil
		case KeyEnter:
			m.enter(ModeMenu, f)
			name := strings.TrimSpace(string(m.nameInput))
			if name == "" || name == m.profile.Username {
				return nil
			}
			m.profile.Username = name
			return m.save(f)
		}
	}
	return nil
}

// commitScore promotes score to highscore and persists it only when it
// is a new best.
func (m *Machine) commitScore(score int, f *Frame) error {
	if !m.profile.Beat(score) {
		return nil
	}
	f.NewHighscore = true
	return m.save(f)
}

func (m *Machine) save(f *Frame) error {
	if err := m.store.Save(m.profile); err != nil {
		return err
	}
	f.Saved = true
	return nil
}
