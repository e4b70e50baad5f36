package texture

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// BlueTechPanel renders the computer room wall: nested border outlines,
// horizontal circuit traces with node squares at fixed positions, and
// two vertical traces, under light uniform grain.
func BlueTechPanel() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{55, 60, 95})

	raster.OutlineRect(c, 0, 0, size-1, size-1, 3, raster.RGBA{40, 45, 75, 255})
	raster.OutlineRect(c, 3, 3, size-4, size-4, 1, raster.RGBA{70, 78, 120, 255})

	trace := raster.RGBA{45, 50, 80, 255}
	node := raster.RGBA{70, 80, 130, 255}
	for _, y := range []int{24, 48, 72, 96} {
		raster.HLine(c, 8, size-8, y, 1, trace)
		for _, x := range []int{24, 64, 104} {
			if x < size-8 {
				raster.FillRect(c, x-2, y-2, x+2, y+2, node)
			}
		}
	}
	for _, x := range []int{32, 96} {
		raster.VLine(c, x, 8, size-8, 1, trace)
	}

	raster.UniformNoise(c, raster.Seeded(constants.TechPanelSeed), 5)
	return c
}

// CeilingPanel renders the generic ceiling: a 64-pixel tile grid with
// two-pixel lines and a one-pixel inset outline per tile, under
// moderate uniform grain.
func CeilingPanel() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{65, 62, 58})

	const tile = constants.CeilingTile
	line := raster.RGBA{45, 42, 38, 255}
	for i := 0; i <= size/tile; i++ {
		pos := i * tile
		raster.VLine(c, pos, 0, size-1, 2, line)
		raster.HLine(c, 0, size-1, pos, 2, line)
	}
	for row := 0; row < size/tile; row++ {
		for col := 0; col < size/tile; col++ {
			x0 := col * tile
			y0 := row * tile
			raster.OutlineRect(c, x0+4, y0+4, x0+tile-4, y0+tile-4, 1, raster.RGBA{72, 69, 65, 255})
		}
	}

	raster.UniformNoise(c, raster.Seeded(constants.CeilingSeed), 8)
	return c
}
