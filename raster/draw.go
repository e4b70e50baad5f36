package raster

// Drawing primitives over Canvas. All rectangle and ellipse bounds are
// inclusive on both ends: FillRect(2, 2, 45, 45) paints a 44×44 block.
// Out-of-bounds pixels are clipped silently.

// FillRect paints the inclusive rectangle [x0,x1]×[y0,y1]
func FillRect(c *Canvas, x0, y0, x1, y1 int, p RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y, p)
		}
	}
}

// OutlineRect paints an inward border of the given width around the
// inclusive rectangle [x0,x1]×[y0,y1]
func OutlineRect(c *Canvas, x0, y0, x1, y1, width int, p RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x-x0 < width || x1-x < width || y-y0 < width || y1-y < width {
				c.Set(x, y, p)
			}
		}
	}
}

// inEllipse tests a point against the ellipse inscribed in the
// inclusive box [x0,x1]×[y0,y1]
func inEllipse(x, y, x0, y0, x1, y1 int) bool {
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return x >= x0 && x <= x1 && y >= y0 && y <= y1
	}
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	dx := (float64(x) - cx) / rx
	dy := (float64(y) - cy) / ry
	return dx*dx+dy*dy <= 1.0
}

// FillEllipse paints the ellipse inscribed in the inclusive box
func FillEllipse(c *Canvas, x0, y0, x1, y1 int, p RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inEllipse(x, y, x0, y0, x1, y1) {
				c.Set(x, y, p)
			}
		}
	}
}

// OutlineEllipse paints a one-pixel ring: pixels inside the ellipse but
// outside the ellipse shrunk by one pixel per axis
func OutlineEllipse(c *Canvas, x0, y0, x1, y1 int, p RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inEllipse(x, y, x0, y0, x1, y1) && !inEllipse(x, y, x0+1, y0+1, x1-1, y1-1) {
				c.Set(x, y, p)
			}
		}
	}
}

// HLine paints a horizontal line of the given thickness starting at
// row y and extending downward
func HLine(c *Canvas, x0, x1, y, thickness int, p RGBA) {
	FillRect(c, x0, y, x1, y+thickness-1, p)
}

// VLine paints a vertical line of the given thickness starting at
// column x and extending rightward
func VLine(c *Canvas, x, y0, y1, thickness int, p RGBA) {
	FillRect(c, x, y0, x+thickness-1, y1, p)
}

// Line paints a one-pixel Bresenham line between two points
func Line(c *Canvas, x0, y0, x1, y1 int, p RGBA) {
	plotLine(x0, y0, x1, y1, func(x, y int) { c.Set(x, y, p) })
}

// LineWrapped paints a one-pixel line whose points wrap toroidally
// around the canvas edges. Used by crack walks so a crack leaving the
// bottom of a tile re-enters at the top.
func LineWrapped(c *Canvas, x0, y0, x1, y1 int, p RGBA) {
	plotLine(x0, y0, x1, y1, func(x, y int) { c.SetWrapped(x, y, p) })
}

// plotLine runs Bresenham between two points, invoking plot per pixel
func plotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillPolygon paints a polygon using even-odd scanline filling. Points
// are vertex coordinates in order; the polygon closes automatically.
func FillPolygon(c *Canvas, pts []Point, p RGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	for y := minY; y <= maxY; y++ {
		var xs []float64
		n := len(pts)
		for i := 0; i < n; i++ {
			a := pts[i]
			b := pts[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			// Half-open span [a.Y, b.Y) so a shared vertex counts once
			if y < a.Y || y >= b.Y {
				continue
			}
			t := float64(y-a.Y) / float64(b.Y-a.Y)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(xs[i] + 0.5); x <= int(xs[i+1]+0.5); x++ {
				c.Set(x, y, p)
			}
		}
	}
}

// OutlinePolygon paints the polygon edges
func OutlinePolygon(c *Canvas, pts []Point, p RGBA) {
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		Line(c, a.X, a.Y, b.X, b.Y, p)
	}
}

// Point is a 2D pixel coordinate
type Point struct {
	X, Y int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sortFloats is a small insertion sort; scanline crossing lists hold a
// handful of entries at most
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
