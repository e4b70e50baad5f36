package raster

import "testing"

var ink = RGBA{200, 50, 50, 255}

// TestFillRectInclusive verifies both bounds are painted
func TestFillRectInclusive(t *testing.T) {
	c := NewCanvas(8, 8)

	FillRect(c, 2, 2, 5, 5, ink)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x <= 5 && y >= 2 && y <= 5
			if inside && c.At(x, y) != ink {
				t.Errorf("pixel (%d,%d) not painted", x, y)
			}
			if !inside && !c.At(x, y).Transparent() {
				t.Errorf("pixel (%d,%d) painted outside rect", x, y)
			}
		}
	}
}

// TestOutlineRectWidth verifies the border paints inward only
func TestOutlineRectWidth(t *testing.T) {
	c := NewCanvas(10, 10)

	OutlineRect(c, 0, 0, 9, 9, 3, ink)

	if c.At(0, 0) != ink || c.At(2, 5) != ink || c.At(9, 9) != ink {
		t.Error("border pixels not painted")
	}
	if !c.At(3, 3).Transparent() || !c.At(5, 5).Transparent() {
		t.Error("interior painted by outline")
	}
}

// TestFillEllipse verifies center containment and corner exclusion
func TestFillEllipse(t *testing.T) {
	c := NewCanvas(16, 16)

	FillEllipse(c, 2, 2, 12, 12, ink)

	if c.At(7, 7) != ink {
		t.Error("ellipse center not painted")
	}
	if c.At(2, 7) != ink || c.At(7, 2) != ink || c.At(12, 7) != ink {
		t.Error("ellipse extreme point not painted")
	}
	if !c.At(2, 2).Transparent() || !c.At(12, 2).Transparent() {
		t.Error("bounding box corner painted")
	}
}

// TestOutlineEllipseRing verifies the outline paints the rim but not
// the interior
func TestOutlineEllipseRing(t *testing.T) {
	c := NewCanvas(16, 16)

	OutlineEllipse(c, 2, 2, 12, 12, ink)

	if !c.At(7, 7).Transparent() {
		t.Error("ellipse interior painted by outline")
	}
	if c.At(2, 7) != ink || c.At(7, 12) != ink {
		t.Error("ellipse rim not painted at extreme point")
	}
}

// TestLineEndpoints verifies Bresenham hits both endpoints
func TestLineEndpoints(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 int
	}{
		{0, 0, 7, 7},
		{7, 0, 0, 7},
		{0, 3, 7, 3},
		{3, 0, 3, 7},
		{1, 1, 6, 3},
	}
	for _, tc := range tests {
		c := NewCanvas(8, 8)
		Line(c, tc.x0, tc.y0, tc.x1, tc.y1, ink)
		if c.At(tc.x0, tc.y0) != ink {
			t.Errorf("line (%d,%d)-(%d,%d) missed start", tc.x0, tc.y0, tc.x1, tc.y1)
		}
		if c.At(tc.x1, tc.y1) != ink {
			t.Errorf("line (%d,%d)-(%d,%d) missed end", tc.x0, tc.y0, tc.x1, tc.y1)
		}
	}
}

// TestLineWrapped verifies points past the edge re-enter on the far side
func TestLineWrapped(t *testing.T) {
	c := NewCanvas(8, 8)

	LineWrapped(c, 6, 6, 9, 9, ink)

	if c.At(6, 6) != ink || c.At(7, 7) != ink {
		t.Error("in-bounds segment not painted")
	}
	if c.At(0, 0) != ink || c.At(1, 1) != ink {
		t.Error("wrapped segment not painted on far side")
	}
}

// TestFillPolygonDiamond verifies scanline filling of the walkway motif
func TestFillPolygonDiamond(t *testing.T) {
	c := NewCanvas(16, 16)
	pts := []Point{{8, 5}, {11, 8}, {8, 11}, {5, 8}}

	FillPolygon(c, pts, ink)

	if c.At(8, 8) != ink {
		t.Error("diamond center not painted")
	}
	if c.At(8, 5) != ink || c.At(5, 8) != ink {
		t.Error("diamond vertex not painted")
	}
	if !c.At(5, 5).Transparent() || !c.At(11, 11).Transparent() {
		t.Error("pixel outside diamond painted")
	}
}

// TestMask verifies marking and bounds behavior
func TestMask(t *testing.T) {
	m := NewMask(8, 8)

	m.MarkRect(2, 2, 4, 4)
	m.Mark(-1, 0)
	m.Mark(0, 99)

	if !m.Excluded(3, 3) || !m.Excluded(2, 2) || !m.Excluded(4, 4) {
		t.Error("marked region not excluded")
	}
	if m.Excluded(5, 5) || m.Excluded(0, 0) {
		t.Error("unmarked pixel excluded")
	}
	if m.Excluded(-1, 0) || m.Excluded(0, 99) {
		t.Error("out-of-range query excluded")
	}
}
