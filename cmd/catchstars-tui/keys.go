package main

import (
	"github.com/gdamore/tcell/v2"

	"catchstars/internal/gamemode"
)

type keyPress struct {
	key   gamemode.Key
	r     rune // typed character, 0 for none
	close bool
}

var runeKeys = map[rune]gamemode.Key{
	'1': gamemode.Key1,
	'2': gamemode.Key2,
	'3': gamemode.Key3,
	'4': gamemode.Key4,
	'm': gamemode.KeyM,
	'M': gamemode.KeyM,
}

func translateKey(ev *tcell.EventKey) keyPress {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return keyPress{close: true}
	case tcell.KeyLeft:
		return keyPress{key: gamemode.KeyLeft}
	case tcell.KeyRight:
		return keyPress{key: gamemode.KeyRight}
	case tcell.KeyUp:
		return keyPress{key: gamemode.KeyUp}
	case tcell.KeyDown:
		return keyPress{key: gamemode.KeyDown}
	case tcell.KeyEnter:
		return keyPress{key: gamemode.KeyEnter}
	case tcell.KeyEscape:
		return keyPress{key: gamemode.KeyEscape}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keyPress{key: gamemode.KeyBackspace}
	case tcell.KeyRune:
		r := ev.Rune()
		return keyPress{key: runeKeys[r], r: r}
	}
	return keyPress{}
}
