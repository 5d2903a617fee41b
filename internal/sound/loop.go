package sound

import (
	"time"

	"github.com/gopxl/beep"
)

const noteLength = 400 * time.Millisecond

// A slow i-vi-IV-V walk in C, one note per step.
var loopNotes = []float64{
	261.63, 329.63, 392.00, 329.63,
	220.00, 261.63, 329.63, 261.63,
	174.61, 220.00, 261.63, 220.00,
	196.00, 246.94, 293.66, 246.94,
}

// Loop is an endless lo-fi melody over a bass an octave below.
type Loop struct {
	sr  beep.SampleRate
	idx int
	cur beep.Streamer
	err error
}

// NewLoop returns a loop at sample rate sr.
func NewLoop(sr beep.SampleRate) *Loop {
	return &Loop{sr: sr}
}

func (l *Loop) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.err != nil {
			return n, n > 0
		}
		if l.cur == nil {
			l.cur, l.err = l.next()
			continue
		}
		m, more := l.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			l.cur = nil
		}
	}
	return n, true
}

func (l *Loop) Err() error { return l.err }

func (l *Loop) next() (beep.Streamer, error) {
	freq := loopNotes[l.idx%len(loopNotes)]
	l.idx++

	lead, err := tone(freq, 0.18, noteLength, l.sr)
	if err != nil {
		return nil, err
	}
	bass, err := tone(freq/2, 0.12, noteLength, l.sr)
	if err != nil {
		return nil, err
	}
	return beep.Take(l.sr.N(noteLength), beep.Mix(lead, bass)), nil
}
