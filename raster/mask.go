package raster

// Mask marks canvas regions that later passes must leave alone (mortar
// lines, tile grooves, screen bezels). Structural drawing fills it once;
// noise passes consult it instead of re-deriving membership from pixel
// colors, which breaks down if fill colors ever collide.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// NewMask creates an empty mask matching a canvas size
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Mark flags (x, y) as excluded; out-of-bounds marks are dropped
func (m *Mask) Mark(x, y int) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = true
}

// MarkRect flags the inclusive rectangle [x0,x1]×[y0,y1]
func (m *Mask) MarkRect(x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.Mark(x, y)
		}
	}
}

// Excluded reports whether (x, y) is flagged
func (m *Mask) Excluded(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}
