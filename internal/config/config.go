package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for inconsistent tuning values.
var ErrInvalid = errors.New("invalid tuning")

// Window and title
const (
	WindowTitle = "Catch the Stars"
	Version     = "v0.2"
	Credits     = "Developed By s34g & Ghaymar | (c) 2025"
)

// Tuning holds every gameplay constant. Positions and sizes are in
// logical pixels of the 800x600 play field.
type Tuning struct {
	ScreenWidth  int
	ScreenHeight int
	TPS          int

	PlayerWidth  float64
	PlayerHeight float64
	PlayerStartX float64
	PlayerStartY float64
	PlayerSpeed  float64
	StartLives   int

	StarWidth     float64
	StarHeight    float64
	MaxStars      int
	SpawnInterval time.Duration
	MinFallSpeed  int // inclusive
	MaxFallSpeed  int // inclusive

	Volume     float64
	VolumeStep float64
	MaxNameLen int
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		ScreenWidth:  800,
		ScreenHeight: 600,
		TPS:          60,

		PlayerWidth:  65,
		PlayerHeight: 45,
		PlayerStartX: 800/2 - 40,
		PlayerStartY: 600 - 60,
		PlayerSpeed:  10,
		StartLives:   10,

		StarWidth:     50,
		StarHeight:    50,
		MaxStars:      3,
		SpawnInterval: 1200 * time.Millisecond,
		MinFallSpeed:  3,
		MaxFallSpeed:  6,

		Volume:     0.5,
		VolumeStep: 0.1,
		MaxNameLen: 20,
	}
}

// FrameDuration is the simulated time covered by one update.
func (t Tuning) FrameDuration() time.Duration {
	return time.Second / time.Duration(t.TPS)
}

// Validate reports the first inconsistency found.
func (t Tuning) Validate() error {
	switch {
	case t.ScreenWidth <= 0 || t.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, t.ScreenWidth, t.ScreenHeight)
	case t.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, t.TPS)
	case t.PlayerWidth <= 0 || t.PlayerHeight <= 0:
		return fmt.Errorf("%w: player size %.0fx%.0f", ErrInvalid, t.PlayerWidth, t.PlayerHeight)
	case t.PlayerWidth > float64(t.ScreenWidth):
		return fmt.Errorf("%w: player wider than screen", ErrInvalid)
	case t.StarWidth <= 0 || t.StarHeight <= 0 || t.StarWidth > float64(t.ScreenWidth):
		return fmt.Errorf("%w: star size %.0fx%.0f", ErrInvalid, t.StarWidth, t.StarHeight)
	case t.StartLives <= 0:
		return fmt.Errorf("%w: start lives %d", ErrInvalid, t.StartLives)
	case t.MaxStars < 0:
		return fmt.Errorf("%w: max stars %d", ErrInvalid, t.MaxStars)
	case t.SpawnInterval < 0:
		return fmt.Errorf("%w: spawn interval %v", ErrInvalid, t.SpawnInterval)
	case t.MinFallSpeed <= 0 || t.MaxFallSpeed < t.MinFallSpeed:
		return fmt.Errorf("%w: fall speed range [%d,%d]", ErrInvalid, t.MinFallSpeed, t.MaxFallSpeed)
	case t.Volume < 0 || t.Volume > 1:
		return fmt.Errorf("%w: volume %.2f", ErrInvalid, t.Volume)
	case t.VolumeStep <= 0 || t.VolumeStep > 1:
		return fmt.Errorf("%w: volume step %.2f", ErrInvalid, t.VolumeStep)
	case t.MaxNameLen <= 0:
		return fmt.Errorf("%w: max name length %d", ErrInvalid, t.MaxNameLen)
	}
	return nil
}
