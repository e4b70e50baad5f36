package texture

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// BrownStoneFloor renders a dirt floor: heavy pixel noise over a solid
// base, a coarse grid of seams, then a smoothing pass.
func BrownStoneFloor() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{100, 65, 35})

	rng := raster.Seeded(constants.StoneFloorSeed)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := raster.Jitter(rng, 20)
			c.Set(x, y, c.At(x, y).Offset(v, v, int(float64(v)*0.6)))
		}
	}

	seam := raster.RGBA{70, 45, 25, 255}
	for i := 0; i <= size/constants.FloorGrid; i++ {
		pos := i * constants.FloorGrid
		raster.VLine(c, pos, 0, size-1, 1, seam)
		raster.HLine(c, 0, size-1, pos, 1, seam)
	}

	return raster.Smooth(c)
}

// GreenStone renders rough mossy stone: the strongest noise of any
// pattern, with an extra independent green-channel jitter, grid seams,
// and a smoothing pass.
func GreenStone() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{55, 80, 45})

	rng := raster.Seeded(constants.GreenStoneSeed)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := raster.Jitter(rng, 25)
			g := raster.Jitter(rng, 5)
			c.Set(x, y, c.At(x, y).Offset(v, v+g, v))
		}
	}

	seam := raster.RGBA{40, 60, 33, 255}
	for i := 0; i <= size/constants.FloorGrid; i++ {
		pos := i * constants.FloorGrid
		raster.VLine(c, pos, 0, size-1, 1, seam)
		raster.HLine(c, 0, size-1, pos, 1, seam)
	}

	return raster.Smooth(c)
}
