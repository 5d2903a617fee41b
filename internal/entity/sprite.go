package entity

// SpriteScale returns the factors that stretch an imgW x imgH image over
// a w x h box. A degenerate image yields 1,1.
func SpriteScale(imgW, imgH int, w, h float64) (sx, sy float64) {
	if imgW <= 0 || imgH <= 0 {
		return 1, 1
	}
	return w / float64(imgW), h / float64(imgH)
}
