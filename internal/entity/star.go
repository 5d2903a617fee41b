package entity

// Star is a falling item. X,Y is the top-left corner.
type Star struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Fall advances the star by one frame.
func (s *Star) Fall() {
	s.Y += s.Speed
}

// Below reports whether the star's top edge has passed bottom.
func (s *Star) Below(bottom float64) bool {
	return s.Y > bottom
}

// Overlaps reports whether the star's box and the player's box share
// interior area. Boxes that only touch along an edge do not overlap.
func (s *Star) Overlaps(p *Player) bool {
	return s.X < p.X+p.Width && p.X < s.X+s.Width &&
		s.Y < p.Y+p.Height && p.Y < s.Y+s.Height
}
