package texture

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// DarkTealMetal renders plated metal: horizontal seams (a dark line
// with a highlight under it) every 32 pixels and a rivet dot grid, with
// light uniform grain.
func DarkTealMetal() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{35, 75, 65})

	for y := 0; y < size; y += constants.PlateSeam {
		raster.HLine(c, 0, size-1, y, 2, raster.RGBA{25, 55, 48, 255})
		raster.HLine(c, 0, size-1, y+1, 1, raster.RGBA{50, 95, 82, 255})
	}

	// Rivets centered within each plate quadrant
	for ry := constants.PlateSeam / 2; ry < size; ry += constants.PlateSeam {
		for rx := constants.PlateSeam / 2; rx < size; rx += constants.PlateSeam {
			raster.FillEllipse(c, rx-2, ry-2, rx+2, ry+2, raster.RGBA{28, 60, 52, 255})
			raster.FillEllipse(c, rx-1, ry-1, rx+1, ry+1, raster.RGBA{45, 90, 78, 255})
		}
	}

	raster.UniformNoise(c, raster.Seeded(constants.TealMetalSeed), 6)
	return c
}
