package main

import (
	"log"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"catchstars/internal/assets"
	"catchstars/internal/gamemode"
)

var keyMap = map[ebiten.Key]gamemode.Key{
	ebiten.KeyArrowLeft:   gamemode.KeyLeft,
	ebiten.KeyArrowRight:  gamemode.KeyRight,
	ebiten.KeyArrowUp:     gamemode.KeyUp,
	ebiten.KeyArrowDown:   gamemode.KeyDown,
	ebiten.KeyEnter:       gamemode.KeyEnter,
	ebiten.KeyNumpadEnter: gamemode.KeyEnter,
	ebiten.KeyEscape:      gamemode.KeyEscape,
	ebiten.KeyBackspace:   gamemode.KeyBackspace,
	ebiten.KeyDigit1:      gamemode.Key1,
	ebiten.KeyDigit2:      gamemode.Key2,
	ebiten.KeyDigit3:      gamemode.Key3,
	ebiten.KeyDigit4:      gamemode.Key4,
	ebiten.KeyNumpad1:     gamemode.Key1,
	ebiten.KeyNumpad2:     gamemode.Key2,
	ebiten.KeyNumpad3:     gamemode.Key3,
	ebiten.KeyNumpad4:     gamemode.Key4,
	ebiten.KeyM:           gamemode.KeyM,
}

// Game adapts the mode machine to ebiten.
type Game struct {
	machine *gamemode.Machine
	sprites *assets.Sprites
	audio   *Audio // nil when muted
	tick    int

	face  text.Face
	small text.Face

	keys  []ebiten.Key
	chars []rune
	input gamemode.Input
}

func NewGame(m *gamemode.Machine, sprites *assets.Sprites, snd *Audio) *Game {
	return &Game{
		machine: m,
		sprites: sprites,
		audio:   snd,
		face:    text.NewGoXFace(bitmapfont.Face),
		small:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.tick++

	frame, err := g.machine.Update(g.pollInput())
	if err != nil {
		log.Printf("save profile: %v", err)
	}
	if frame.Changed {
		log.Printf("mode: %v", frame.Entered)
	}
	if frame.NewHighscore {
		log.Printf("new highscore %d", g.machine.Profile().Highscore)
	}

	if g.audio != nil {
		g.audio.SetVolume(g.machine.Volume())
		g.audio.Cue(frame)
	}

	if frame.Quit {
		if g.audio != nil {
			g.audio.Close()
		}
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollInput() gamemode.Input {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	g.chars = ebiten.AppendInputChars(g.chars[:0])

	in := &g.input
	in.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	in.Close = ebiten.IsWindowBeingClosed()
	in.Text = g.chars
	in.Pressed = in.Pressed[:0]
	for _, k := range g.keys {
		if mk, ok := keyMap[k]; ok {
			in.Pressed = append(in.Pressed, mk)
		}
	}
	return *in
}

// Layout: fixed logical field, ebiten scales the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.machine.World().Tuning()
	return cfg.ScreenWidth, cfg.ScreenHeight
}
