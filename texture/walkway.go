package texture

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// TanWalkway renders the platform walkway: a staggered diamond motif at
// 16-pixel spacing, filled and outlined, under uneven per-channel noise
// with the blue channel damped.
func TanWalkway() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{140, 115, 70})

	const spacing = constants.WalkwaySpacing
	for row := 0; row <= size/spacing; row++ {
		for col := 0; col <= size/spacing; col++ {
			cx := col * spacing
			if row%2 == 1 {
				cx += spacing / 2
			}
			cx %= size
			cy := (row * spacing) % size
			pts := []raster.Point{
				{X: cx, Y: cy - 3},
				{X: cx + 3, Y: cy},
				{X: cx, Y: cy + 3},
				{X: cx - 3, Y: cy},
			}
			raster.FillPolygon(c, pts, raster.RGBA{155, 128, 80, 255})
			raster.OutlinePolygon(c, pts, raster.RGBA{120, 98, 60, 255})
		}
	}

	rng := raster.Seeded(constants.WalkwaySeed)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := raster.Jitter(rng, 10)
			c.Set(x, y, c.At(x, y).Offset(v, v, int(float64(v)*0.5)))
		}
	}

	return c
}
