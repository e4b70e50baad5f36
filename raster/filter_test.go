package raster

import "testing"

func TestSmoothUniformCanvasUnchanged(t *testing.T) {
	base := RGB{R: 128, G: 64, B: 200}
	c := NewSolidCanvas(10, 10, base)
	out := Smooth(c)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if out.At(x, y) != base.Opaque() {
				t.Fatalf("uniform canvas changed at (%d, %d): %v", x, y, out.At(x, y))
			}
		}
	}
}

func TestSmoothLeavesBordersUntouched(t *testing.T) {
	c := NewSolidCanvas(6, 6, RGB{R: 100, G: 100, B: 100})
	c.Set(0, 0, RGB{R: 255, G: 0, B: 0}.Opaque())
	c.Set(3, 0, RGB{R: 255, G: 0, B: 0}.Opaque())
	out := Smooth(c)
	if out.At(0, 0) != c.At(0, 0) || out.At(3, 0) != c.At(3, 0) {
		t.Error("border pixel modified by filter")
	}
}

func TestSmoothAveragesTowardNeighbors(t *testing.T) {
	c := NewSolidCanvas(5, 5, RGB{R: 0, G: 0, B: 0})
	c.Set(2, 2, RGB{R: 130, G: 130, B: 130}.Opaque())
	out := Smooth(c)
	// Center keeps weight 5 of 13: 130*5/13 = 50
	if got := out.At(2, 2); got.R != 50 {
		t.Errorf("center after smooth = %d, want 50", got.R)
	}
	// Direct neighbor sees weight 1 of 13: 130/13 = 10
	if got := out.At(1, 2); got.R != 10 {
		t.Errorf("neighbor after smooth = %d, want 10", got.R)
	}
}

func TestSmoothDoesNotMutateInput(t *testing.T) {
	c := NewSolidCanvas(5, 5, RGB{R: 10, G: 10, B: 10})
	c.Set(2, 2, RGB{R: 250, G: 250, B: 250}.Opaque())
	_ = Smooth(c)
	if c.At(2, 2).R != 250 {
		t.Error("filter mutated its input canvas")
	}
}

func TestSmoothMoreUniformCanvasUnchanged(t *testing.T) {
	base := RGB{R: 77, G: 140, B: 3}
	c := NewSolidCanvas(12, 12, base)
	out := SmoothMore(c)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if out.At(x, y) != base.Opaque() {
				t.Fatalf("uniform canvas changed at (%d, %d): %v", x, y, out.At(x, y))
			}
		}
	}
}
