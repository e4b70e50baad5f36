package sprite

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// TechColumn renders the metallic support pillar. Order matters: the
// body is shaded first, then bands, caps, and warning stripes are
// painted over the shaded pixels so they stay flat-colored.
func TechColumn() *raster.Canvas {
	c := raster.NewCanvas(constants.ColumnWidth, constants.ColumnHeight)

	const (
		colLeft  = 4
		colRight = 19
	)

	raster.FillRect(c, colLeft, 2, colRight, 61, raster.RGBA{100, 100, 105, 255})
	shadeCylinder(c, colLeft, colRight, 2, 61, constants.ColumnShadeDepth, 1)

	// Recessed bands with a highlight line under each
	for _, bandY := range []int{4, 15, 30, 45, 59} {
		raster.FillRect(c, colLeft, bandY, colRight, bandY+2, raster.RGBA{75, 75, 80, 255})
		raster.HLine(c, colLeft, colRight, bandY+3, 1, raster.RGBA{120, 120, 125, 255})
	}

	// Base and capital extend past the shaft
	raster.FillRect(c, colLeft-2, 0, colRight+2, 4, raster.RGBA{80, 80, 85, 255})
	raster.FillRect(c, colLeft-2, 60, colRight+2, 63, raster.RGBA{80, 80, 85, 255})

	// Warning stripe band: the row offset slants the stripes
	for i := 0; i < 4; i++ {
		y := 32 + i
		for x := colLeft + 1; x < colRight; x++ {
			if (x+i)%4 < 2 {
				c.Set(x, y, raster.RGBA{180, 150, 30, 255})
			} else {
				c.Set(x, y, raster.RGBA{40, 40, 45, 255})
			}
		}
	}

	raster.OpaqueNoise(c, raster.Seeded(constants.ColumnSeed), constants.ColumnNoiseAmp)
	return c
}
