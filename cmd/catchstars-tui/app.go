package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"catchstars/internal/gamemode"
	"catchstars/internal/sound"
)

// Terminals report key repeats, not key state; a movement key counts as
// held for this many frames after its last press or repeat.
const holdFrames = 6

type app struct {
	screen  tcell.Screen
	machine *gamemode.Machine
	speaker *sound.Speaker // nil when audio is unavailable
	volume  float64

	holdLeft  int
	holdRight int
	pending   gamemode.Input
	tick      int
}

func newApp(screen tcell.Screen, m *gamemode.Machine) *app {
	return &app{
		screen:  screen,
		machine: m,
		volume:  m.Volume(),
	}
}

func (a *app) run(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.handleEvent(ev)

		case <-ticker.C:
			if !a.step() {
				return
			}
			draw(a.screen, a.machine, a.tick)
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := translateKey(ev)
		if k.close {
			a.pending.Close = true
			return
		}
		switch k.key {
		case gamemode.KeyLeft:
			a.holdLeft, a.holdRight = holdFrames, 0
		case gamemode.KeyRight:
			a.holdRight, a.holdLeft = holdFrames, 0
		}
		if k.key != gamemode.KeyUnknown {
			a.pending.Pressed = append(a.pending.Pressed, k.key)
		}
		if k.r != 0 {
			a.pending.Text = append(a.pending.Text, k.r)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// step feeds the collected input to the machine and reports whether to
// keep running.
func (a *app) step() bool {
	a.tick++
	in := a.pending
	in.Left = a.holdLeft > 0
	in.Right = a.holdRight > 0
	if a.holdLeft > 0 {
		a.holdLeft--
	}
	if a.holdRight > 0 {
		a.holdRight--
	}

	f, err := a.machine.Update(in)
	a.pending.Pressed = a.pending.Pressed[:0]
	a.pending.Text = a.pending.Text[:0]
	if err != nil {
		log.Printf("save profile: %v", err)
	}
	if f.Changed {
		log.Printf("mode: %v", f.Entered)
		a.holdLeft, a.holdRight = 0, 0
	}
	a.cue(f)
	return !f.Quit
}

func (a *app) cue(f gamemode.Frame) {
	if a.speaker == nil {
		return
	}
	if v := a.machine.Volume(); v != a.volume {
		a.volume = v
		a.speaker.SetVolume(v)
	}
	if f.Caught > 0 {
		if s, err := sound.Chime(sound.SampleRate); err == nil {
			a.speaker.Play(s, a.volume)
		}
	}
	if f.Missed > 0 {
		if s, err := sound.Buzz(sound.SampleRate); err == nil {
			a.speaker.Play(s, a.volume)
		}
	}
}

func (a *app) cleanup() {
	if a.speaker != nil {
		a.speaker.Close()
	}
	a.screen.Fini()
}
