package raster

import "testing"

func TestSeededDeterministic(t *testing.T) {
	a := Seeded(77)
	b := Seeded(77)
	for i := 0; i < 100; i++ {
		if a.Int63() != b.Int63() {
			t.Fatalf("generators with equal seeds diverged at draw %d", i)
		}
	}
}

func TestJitterRange(t *testing.T) {
	rng := Seeded(1)
	lo, hi := 0, 0
	for i := 0; i < 10000; i++ {
		v := Jitter(rng, 8)
		if v < -8 || v > 8 {
			t.Fatalf("jitter %d outside [-8, 8]", v)
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo != -8 || hi != 8 {
		t.Errorf("jitter never reached both extremes, got [%d, %d]", lo, hi)
	}
}

func TestUniformNoiseCoversAllPixels(t *testing.T) {
	base := RGB{R: 128, G: 128, B: 128}
	a := NewSolidCanvas(8, 8, base)
	b := NewSolidCanvas(8, 8, base)
	UniformNoise(a, Seeded(5), 10)
	UniformNoise(b, Seeded(5), 10)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("noise not deterministic at (%d, %d)", x, y)
			}
			p := a.At(x, y)
			if p.R != p.G || p.G != p.B {
				t.Errorf("offset not uniform across channels at (%d, %d): %v", x, y, p)
			}
		}
	}
}

func TestOpaqueNoiseSkipsTransparent(t *testing.T) {
	c := NewCanvas(8, 8)
	FillRect(c, 0, 0, 3, 7, RGB{R: 100, G: 100, B: 100}.Opaque())
	OpaqueNoise(c, Seeded(9), 6)
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			if !c.At(x, y).Transparent() {
				t.Fatalf("transparent pixel painted at (%d, %d)", x, y)
			}
		}
	}
}

// A skipped pixel must not consume a draw, so the opaque region gets
// the same offsets whether or not transparent pixels precede it.
func TestOpaqueNoiseDrawStability(t *testing.T) {
	full := NewSolidCanvas(4, 4, RGB{R: 100, G: 100, B: 100})
	part := NewCanvas(8, 4)
	FillRect(part, 4, 0, 7, 3, RGB{R: 100, G: 100, B: 100}.Opaque())
	OpaqueNoise(full, Seeded(3), 6)
	OpaqueNoise(part, Seeded(3), 6)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if full.At(x, y) != part.At(x+4, y) {
				t.Fatalf("transparent run shifted noise sequence at (%d, %d)", x, y)
			}
		}
	}
}
