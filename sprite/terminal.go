package sprite

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// ComputerPanel renders the glowing terminal screen: bezel, casing,
// screen with scan lines, randomized text rows, a cursor block, and
// status LEDs. The panel is fully opaque and takes no grain pass; the
// screen content itself is the texture.
func ComputerPanel() *raster.Canvas {
	c := raster.NewCanvas(constants.PanelWidth, constants.PanelHeight)

	// Bezel and casing cover the whole canvas
	raster.FillRect(c, 0, 0, 47, 47, raster.RGBA{50, 50, 55, 255})
	raster.FillRect(c, 3, 3, 44, 44, raster.RGBA{60, 60, 65, 255})

	// Screen area with highlighted top and left bezel edges
	raster.FillRect(c, 6, 6, 41, 38, raster.RGBA{15, 40, 50, 255})
	raster.FillRect(c, 6, 6, 41, 7, raster.RGBA{30, 60, 70, 255})
	raster.FillRect(c, 6, 6, 7, 38, raster.RGBA{25, 55, 65, 255})

	// Scan lines every other row
	for y := 8; y < 37; y += 2 {
		raster.HLine(c, 8, 39, y, 1, raster.RGBA{20, 55, 65, 255})
	}

	// Text rows: short bright segments with randomized start and length
	textColor := raster.RGBA{50, 200, 150, 255}
	rng := raster.Seeded(constants.PanelSeed)
	for row := 0; row < 5; row++ {
		y := 10 + row*5
		segs := 2 + rng.Intn(4)
		for seg := 0; seg < segs; seg++ {
			xStart := 9 + rng.Intn(21)
			xEnd := xStart + 3 + rng.Intn(8)
			if xEnd > 39 {
				xEnd = 39
			}
			raster.FillRect(c, xStart, y, xEnd, y+2, textColor)
		}
	}

	// Cursor block
	raster.FillRect(c, 9, 33, 12, 35, raster.RGBA{100, 255, 200, 255})

	// Bottom panel: button plus red and green status LEDs
	raster.FillRect(c, 8, 40, 14, 43, raster.RGBA{40, 40, 45, 255})
	raster.FillEllipse(c, 38, 40, 42, 44, raster.RGBA{200, 50, 30, 255})
	raster.FillEllipse(c, 33, 40, 37, 44, raster.RGBA{30, 200, 60, 255})

	return c
}
