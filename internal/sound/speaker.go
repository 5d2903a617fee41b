package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays the loop and cues on the system output device directly.
// Only one Speaker may be open per process.
type Speaker struct {
	music *effects.Volume
}

// OpenSpeaker starts music at the given level.
func OpenSpeaker(sr beep.SampleRate, music beep.Streamer, level float64) (*Speaker, error) {
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	vol := NewVolume(music, level)
	speaker.Play(vol)
	return &Speaker{music: vol}, nil
}

// SetVolume changes the music level.
func (s *Speaker) SetVolume(level float64) {
	speaker.Lock()
	SetLevel(s.music, level)
	speaker.Unlock()
}

// Play mixes a one-shot cue in at level.
func (s *Speaker) Play(cue beep.Streamer, level float64) {
	speaker.Play(NewVolume(cue, level))
}

func (s *Speaker) Close() {
	speaker.Close()
}
