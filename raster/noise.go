package raster

import "math/rand"

// Seeded returns an explicit generator for one noise pass. Generators
// are never shared between passes or routines, so independent assets
// can be produced concurrently without cross-talk.
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Jitter draws a uniform integer in [-amp, amp]
func Jitter(rng *rand.Rand, amp int) int {
	return rng.Intn(2*amp+1) - amp
}

// UniformNoise adds one uniform offset in [-amp, amp] to all three
// channels of every pixel, row-major
func UniformNoise(c *Canvas, rng *rand.Rand, amp int) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			v := Jitter(rng, amp)
			c.Set(x, y, c.At(x, y).Offset(v, v, v))
		}
	}
}

// OpaqueNoise adds one uniform offset in [-amp, amp] to all three
// channels of every opaque pixel. Transparent pixels are never painted
// and consume no draw.
func OpaqueNoise(c *Canvas, rng *rand.Rand, amp int) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.At(x, y)
			if p.Transparent() {
				continue
			}
			v := Jitter(rng, amp)
			c.Set(x, y, p.Offset(v, v, v))
		}
	}
}
