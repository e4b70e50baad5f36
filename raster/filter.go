package raster

// Convolution smoothing filters matching the classic 3×3 and 5×5
// smooth kernels. Pixels whose kernel window extends past the canvas
// edge are left untouched, so a filter pass never reads outside the
// buffer.

var smoothKernel = [3][3]int{
	{1, 1, 1},
	{1, 5, 1},
	{1, 1, 1},
}

var smoothMoreKernel = [5][5]int{
	{1, 1, 1, 1, 1},
	{1, 5, 5, 5, 1},
	{1, 5, 44, 5, 1},
	{1, 5, 5, 5, 1},
	{1, 1, 1, 1, 1},
}

// Smooth returns a softened copy of the canvas (3×3 kernel, weight 13)
func Smooth(c *Canvas) *Canvas {
	return convolve3(c, smoothKernel, 13)
}

// SmoothMore returns a more strongly softened copy (5×5 kernel, weight 100)
func SmoothMore(c *Canvas) *Canvas {
	return convolve5(c, smoothMoreKernel, 100)
}

func convolve3(c *Canvas, k [3][3]int, scale int) *Canvas {
	out := c.clone()
	for y := 1; y < c.height-1; y++ {
		for x := 1; x < c.width-1; x++ {
			var sr, sg, sb int
			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					p := c.At(x+kx-1, y+ky-1)
					w := k[ky][kx]
					sr += int(p.R) * w
					sg += int(p.G) * w
					sb += int(p.B) * w
				}
			}
			a := c.At(x, y).A
			out.Set(x, y, RGBA{
				R: clampChannel(sr / scale),
				G: clampChannel(sg / scale),
				B: clampChannel(sb / scale),
				A: a,
			})
		}
	}
	return out
}

func convolve5(c *Canvas, k [5][5]int, scale int) *Canvas {
	out := c.clone()
	for y := 2; y < c.height-2; y++ {
		for x := 2; x < c.width-2; x++ {
			var sr, sg, sb int
			for ky := 0; ky < 5; ky++ {
				for kx := 0; kx < 5; kx++ {
					p := c.At(x+kx-2, y+ky-2)
					w := k[ky][kx]
					sr += int(p.R) * w
					sg += int(p.G) * w
					sb += int(p.B) * w
				}
			}
			a := c.At(x, y).A
			out.Set(x, y, RGBA{
				R: clampChannel(sr / scale),
				G: clampChannel(sg / scale),
				B: clampChannel(sb / scale),
				A: a,
			})
		}
	}
	return out
}

// clone copies the canvas contents into a new canvas
func (c *Canvas) clone() *Canvas {
	out := NewCanvas(c.width, c.height)
	copy(out.pixels, c.pixels)
	return out
}
