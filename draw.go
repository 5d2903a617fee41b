package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"catchstars/internal/config"
	"catchstars/internal/entity"
	"catchstars/internal/gamemode"
)

// --- Colors ---
var (
	ColMenuBg     = color.RGBA{25, 25, 35, 0xff}
	ColSettingsBg = color.RGBA{30, 30, 50, 0xff}
	ColBoardBg    = color.RGBA{20, 20, 40, 0xff}
	ColProfileBg  = color.RGBA{10, 10, 30, 0xff}
	ColWhite      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColLives      = color.RGBA{0xff, 100, 100, 0xff}
	ColRed        = color.RGBA{0xff, 0, 0, 0xff}
	ColYellow     = color.RGBA{0xff, 0xff, 0, 0xff}
	ColSoftBlue   = color.RGBA{200, 200, 0xff, 0xff}
	ColSoftGreen  = color.RGBA{200, 0xff, 200, 0xff}
	ColSoftYellow = color.RGBA{0xff, 0xff, 200, 0xff}
	ColSoftPink   = color.RGBA{0xff, 200, 0xff, 0xff}
	ColGrey       = color.RGBA{200, 200, 200, 0xff}
)

// Body text is the 12px bitmap font doubled.
const textScale = 2

// --- DRAW ---
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.machine.Mode() {
	case gamemode.ModeMenu:
		g.drawMenu(screen)
	case gamemode.ModePlaying:
		g.drawPlaying(screen)
	case gamemode.ModeSettings:
		g.drawSettings(screen)
	case gamemode.ModeLeaderboard:
		g.drawLeaderboard(screen)
	case gamemode.ModeProfile:
		g.drawProfile(screen)
	case gamemode.ModeGameOver:
		g.drawGameOver(screen)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(ColMenuBg)
	g.drawBackground(screen)

	cx := float64(g.width()/2 - 100)
	g.drawText(screen, config.WindowTitle, cx, 100, ColWhite)
	g.drawText(screen, "[1] Start Game", cx, 180, ColSoftGreen)
	g.drawText(screen, "[2] Settings", cx, 220, ColSoftBlue)
	g.drawText(screen, "[3] Leaderboard", cx, 260, ColSoftYellow)
	g.drawText(screen, "[4] Profile", cx, 300, ColSoftPink)

	h := float64(g.height())
	g.drawSmall(screen, config.Credits, 10, h-24, ColWhite)
	g.drawSmall(screen, config.Version, float64(g.width())-50, h-24, ColWhite)
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	g.drawBackground(screen)

	w := g.machine.World()
	for _, s := range w.Stars() {
		g.drawSprite(screen, g.sprites.Star, s.X, s.Y, s.Width, s.Height)
	}
	p := w.Player
	g.drawSprite(screen, g.sprites.Box, p.X, p.Y, p.Width, p.Height)

	// HUD
	g.drawText(screen, fmt.Sprintf("Score: %d", p.Score), 10, 10, ColWhite)
	g.drawText(screen, fmt.Sprintf("Lives: %d", p.Lives), 10, 40, ColLives)
}

func (g *Game) drawSettings(screen *ebiten.Image) {
	screen.Fill(ColSettingsBg)
	g.drawText(screen, "Settings - Use UP/DOWN to change volume. ESC to exit.", 50, 50, ColWhite)

	vol := g.machine.Volume()
	g.drawText(screen, fmt.Sprintf("Music Volume: %d%%", int(vol*100+0.5)), 50, 150, ColSoftBlue)

	// Volume bar
	const barW, barH = 300, 16
	vector.DrawFilledRect(screen, 50, 190, barW, barH, ColMenuBg, false)
	vector.DrawFilledRect(screen, 50, 190, float32(vol*barW), barH, ColSoftBlue, false)
	vector.StrokeRect(screen, 50, 190, barW, barH, 1, ColWhite, false)
}

func (g *Game) drawLeaderboard(screen *ebiten.Image) {
	screen.Fill(ColBoardBg)
	cx := float64(g.width() / 2)
	p := g.machine.Profile()
	g.drawText(screen, "LEADERBOARD", cx-100, 60, ColYellow)
	g.drawText(screen, fmt.Sprintf("%s - High Score: %d", p.Username, p.Highscore), cx-120, 120, ColWhite)
	g.drawText(screen, "Press ESC to return", cx-100, 300, ColGrey)
}

func (g *Game) drawProfile(screen *ebiten.Image) {
	screen.Fill(ColProfileBg)
	g.drawText(screen, "Enter your name (ENTER to confirm):", 50, 100, ColWhite)

	name := g.machine.NameInput()
	if g.tick/30%2 == 0 {
		name += "_"
	}
	g.drawText(screen, name, 50, 150, ColYellow)
	g.drawText(screen, "ESC to cancel", 50, 200, ColGrey)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cy := float64(g.height() / 2)

	g.drawCentered(screen, "Game Over!", cy-100, 4, ColRed)
	g.drawCentered(screen, fmt.Sprintf("Your Score: %d", g.machine.FinalScore()), cy-40, textScale, ColWhite)
	g.drawCentered(screen, fmt.Sprintf("High Score: %d", g.machine.Profile().Highscore), cy, textScale, ColYellow)
	g.drawCentered(screen, "Press [M] to go to Main Menu or [ESC] to Exit", cy+40, textScale, ColWhite)
}

// --- Helpers ---

func (g *Game) drawBackground(screen *ebiten.Image) {
	bg := g.sprites.Background
	b := bg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.width())/float64(b.Dx()), float64(g.height())/float64(b.Dy()))
	screen.DrawImage(bg, op)
}

// drawSprite stretches img over the w x h box at x,y so it matches the
// entity's hitbox whatever size the image file is.
func (g *Game) drawSprite(screen, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(entity.SpriteScale(b.Dx(), b.Dy(), w, h))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	drawString(screen, s, g.face, x, y, textScale, clr)
}

func (g *Game) drawSmall(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	drawString(screen, s, g.small, x, y, 1, clr)
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, y, scale float64, clr color.Color) {
	w, _ := text.Measure(s, g.face, 0)
	drawString(screen, s, g.face, (float64(g.width())-w*scale)/2, y, scale, clr)
}

func drawString(dst *ebiten.Image, s string, face text.Face, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func (g *Game) width() int  { return g.machine.World().Tuning().ScreenWidth }
func (g *Game) height() int { return g.machine.World().Tuning().ScreenHeight }
