// Package sound synthesises the background loop and gameplay cues with
// beep. Streams are played through ebiten (PCMReader) on the desktop and
// through the beep speaker in the terminal.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by every stream and both playback paths.
const SampleRate = beep.SampleRate(44100)

// envelope fades a stream in and out and scales it by amp.
type envelope struct {
	streamer beep.Streamer
	amp      float64
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, amp float64, duration, attack, release time.Duration, sr beep.SampleRate) *envelope {
	return &envelope{
		streamer: beep.Take(sr.N(duration), s),
		amp:      amp,
		attack:   sr.N(attack),
		release:  sr.N(release),
		total:    sr.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.amp
		if e.attack > 0 && e.pos < e.attack {
			vol *= float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol *= float64(left) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func tone(freq, amp float64, d time.Duration, sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return newEnvelope(sine, amp, d, 5*time.Millisecond, d/3, sr), nil
}

// Chime is the two-note cue for a caught star.
func Chime(sr beep.SampleRate) (beep.Streamer, error) {
	lo, err := tone(880, 0.35, 60*time.Millisecond, sr)
	if err != nil {
		return nil, err
	}
	hi, err := tone(1320, 0.35, 90*time.Millisecond, sr)
	if err != nil {
		return nil, err
	}
	return beep.Seq(lo, hi), nil
}

// Buzz is the low cue for a missed star.
func Buzz(sr beep.SampleRate) (beep.Streamer, error) {
	return tone(160, 0.3, 150*time.Millisecond, sr)
}

// NewVolume wraps s with a linear level in [0,1]. Zero is silent since
// log2(0) is -Inf.
func NewVolume(s beep.Streamer, level float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	SetLevel(v, level)
	return v
}

// SetLevel updates a volume effect in place.
func SetLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(math.Min(level, 1)), false
}
