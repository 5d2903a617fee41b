package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"catchstars/internal/gamemode"
	"catchstars/internal/sound"
)

// --- Audio System ---
type Audio struct {
	ctx   *audio.Context
	music *audio.Player
	file  *os.File // open mp3, if any
	chime []byte
	buzz  []byte
	level float64
}

// NewAudio starts the music loop. musicPath selects an mp3 to loop;
// empty uses the synthesised tune.
func NewAudio(musicPath string, level float64) (*Audio, error) {
	a := &Audio{
		ctx:   audio.NewContext(int(sound.SampleRate)),
		level: level,
	}

	src, err := a.musicSource(musicPath)
	if err != nil {
		return nil, err
	}
	a.music, err = a.ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}

	if a.chime, err = renderCue(sound.Chime); err != nil {
		return nil, fmt.Errorf("chime: %w", err)
	}
	if a.buzz, err = renderCue(sound.Buzz); err != nil {
		return nil, fmt.Errorf("buzz: %w", err)
	}

	a.music.SetVolume(level)
	a.music.Play()
	return a, nil
}

func (a *Audio) musicSource(path string) (io.Reader, error) {
	if path == "" {
		return sound.NewPCMReader(sound.NewLoop(sound.SampleRate)), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music: %w", err)
	}
	stream, err := mp3.DecodeWithSampleRate(int(sound.SampleRate), f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode music: %w", err)
	}
	a.file = f
	return audio.NewInfiniteLoop(stream, stream.Length()), nil
}

func renderCue(mk func(beep.SampleRate) (beep.Streamer, error)) ([]byte, error) {
	s, err := mk(sound.SampleRate)
	if err != nil {
		return nil, err
	}
	return sound.Render(s)
}

// SetVolume applies the settings level to music and later cues.
func (a *Audio) SetVolume(level float64) {
	if level == a.level {
		return
	}
	a.level = level
	a.music.SetVolume(level)
}

// Cue plays the sounds for what happened in a frame.
func (a *Audio) Cue(f gamemode.Frame) {
	if f.Caught > 0 {
		a.play(a.chime)
	}
	if f.Missed > 0 {
		a.play(a.buzz)
	}
}

func (a *Audio) play(pcm []byte) {
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(a.level)
	p.Play()
}

func (a *Audio) Close() {
	a.music.Pause()
	if a.file != nil {
		a.file.Close()
	}
}
