package audio

import (
	"math"
	"math/rand"
)

// Buffer is mono float64 samples at unity gain. A generator allocates
// one zero-filled buffer, layers signals into it additively, normalizes
// once, and hands it to the WAV encoder.
type Buffer struct {
	rate    int
	samples []float64
}

// NewBuffer allocates a zero-filled buffer covering the duration
func NewBuffer(rate int, seconds float64) *Buffer {
	return &Buffer{
		rate:    rate,
		samples: make([]float64, int(float64(rate)*seconds)),
	}
}

// Rate returns the sample rate
func (b *Buffer) Rate() int {
	return b.rate
}

// Len returns the sample count
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Sample returns the raw sample at index i
func (b *Buffer) Sample(i int) float64 {
	return b.samples[i]
}

// Add mixes v into the sample at index i; out-of-range indices are
// dropped so event layers can run past the buffer end
func (b *Buffer) Add(i int, v float64) {
	if i < 0 || i >= len(b.samples) {
		return
	}
	b.samples[i] += v
}

// Peak returns the maximum absolute sample value
func (b *Buffer) Peak() float64 {
	peak := 0.0
	for _, s := range b.samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// Normalize scales the buffer so its peak hits target. A silent buffer
// is left untouched.
func (b *Buffer) Normalize(target float64) {
	peak := b.Peak()
	if peak == 0 {
		return
	}
	scale := target / peak
	for i := range b.samples {
		b.samples[i] *= scale
	}
}

// CrossfadeLoop blends the first fadeSeconds of the buffer with its
// last fadeSeconds and trims the tail window, so sample 0 continues
// sample N-1 when the clip repeats.
func (b *Buffer) CrossfadeLoop(fadeSeconds float64) {
	fade := int(fadeSeconds * float64(b.rate))
	n := len(b.samples)
	if fade <= 0 || fade >= n {
		return
	}
	for i := 0; i < fade; i++ {
		f := float64(i) / float64(fade)
		b.samples[i] = b.samples[i]*f + b.samples[n-fade+i]*(1-f)
	}
	b.samples = b.samples[:n-fade]
}

// Quantize clamps every sample to [-1, 1] and converts to 16-bit PCM
func (b *Buffer) Quantize() []int16 {
	out := make([]int16, len(b.samples))
	for i, s := range b.samples {
		out[i] = int16(clampUnit(s) * 32767)
	}
	return out
}

// clampUnit clamps a sample to the [-1, 1] amplitude range
func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// uniform draws from [lo, hi)
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
