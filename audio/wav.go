package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/hangar-assets/constants"
)

// bufferStreamer streams a Buffer's samples, clamped to [-1, 1], into
// both stereo lanes; the mono WAV encoder folds them back together
type bufferStreamer struct {
	buf *Buffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.buf.Len() {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.buf.Len() {
			return i, true
		}
		v := clampUnit(s.buf.samples[s.pos])
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

// Streamer returns a fresh beep.Streamer over the buffer
func (b *Buffer) Streamer() beep.Streamer {
	return &bufferStreamer{buf: b}
}

// Format returns the buffer's beep format: mono 16-bit PCM
func (b *Buffer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(b.rate),
		NumChannels: constants.AudioChannels,
		Precision:   2,
	}
}

// WriteWAV encodes the buffer as an uncompressed 16-bit PCM WAV file
func (b *Buffer) WriteWAV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := wav.Encode(f, b.Streamer(), b.Format()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
