package texture

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// TechFloor renders the computer room floor grating: 16-pixel cells
// separated by a gap, each cell double-inset for a raised-plate look,
// with a dark rivet square at every cell center and faint grain.
func TechFloor() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{50, 48, 55})

	const (
		cell = constants.GrateCell
		gap  = constants.GrateGap
	)
	for row := 0; row < size/cell; row++ {
		for col := 0; col < size/cell; col++ {
			x0 := col*cell + gap
			y0 := row*cell + gap
			x1 := (col+1)*cell - gap
			y1 := (row+1)*cell - gap
			raster.FillRect(c, x0, y0, x1, y1, raster.RGBA{60, 58, 65, 255})
			raster.FillRect(c, x0+1, y0+1, x1-1, y1-1, raster.RGBA{55, 53, 60, 255})
		}
	}
	for row := 0; row < size/cell; row++ {
		for col := 0; col < size/cell; col++ {
			cx := col*cell + cell/2
			cy := row*cell + cell/2
			raster.FillRect(c, cx-3, cy-3, cx+3, cy+3, raster.RGBA{30, 28, 35, 255})
		}
	}

	raster.UniformNoise(c, raster.Seeded(constants.TechFloorSeed), 4)
	return c
}
