package gamemode

// Key is a frontend-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyBackspace
	Key1
	Key2
	Key3
	Key4
	KeyM
)

// Input is everything a frontend collected for one frame.
type Input struct {
	// Held movement keys.
	Left, Right bool
	// Keys that went down this frame.
	Pressed []Key
	// Characters typed this frame.
	Text []rune
	// Window close or terminal interrupt.
	Close bool
}

// JustPressed reports whether k went down this frame.
func (in Input) JustPressed(k Key) bool {
	for _, p := range in.Pressed {
		if p == k {
			return true
		}
	}
	return false
}

// Direction folds the held keys into -1, 0 or 1.
func (in Input) Direction() int {
	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	return dir
}
