package sound

import (
	"io"

	"github.com/gopxl/beep"
)

const bytesPerFrame = 4 // 16-bit little endian, two channels

// PCMReader encodes a beep stream as signed 16-bit little endian stereo,
// the format ebiten's audio players read.
type PCMReader struct {
	s   beep.Streamer
	buf [][2]float64
}

// NewPCMReader wraps s.
func NewPCMReader(s beep.Streamer) *PCMReader {
	return &PCMReader{s: s}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.s.Stream(buf)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			v := int16(clamp(buf[i][ch]) * 32767)
			j := i*bytesPerFrame + ch*2
			p[j] = byte(v)
			p[j+1] = byte(v >> 8)
		}
	}
	if n == 0 && !ok {
		if err := r.s.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	return n * bytesPerFrame, nil
}

// Render drains a finite stream into PCM bytes.
func Render(s beep.Streamer) ([]byte, error) {
	return io.ReadAll(NewPCMReader(s))
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
