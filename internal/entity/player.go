package entity

// Player is the catcher box at the bottom of the field.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64

	Score int
	Lives int
}

// Move shifts the player horizontally by dir*Speed and clamps it to
// [0, fieldWidth-Width]. dir is -1, 0 or 1.
func (p *Player) Move(dir int, fieldWidth float64) {
	p.X += float64(dir) * p.Speed
	p.Clamp(fieldWidth)
}

// Clamp keeps the player fully inside the field horizontally.
func (p *Player) Clamp(fieldWidth float64) {
	maxX := fieldWidth - p.Width
	if p.X > maxX {
		p.X = maxX
	}
	if p.X < 0 {
		p.X = 0
	}
}

// Alive reports whether the player still has lives left.
func (p *Player) Alive() bool {
	return p.Lives > 0
}
