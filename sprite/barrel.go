package sprite

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// Barrel renders the toxic waste barrel: a shaded brown-gray cylinder
// with metal bands, a nested green glow emblem at the canvas center,
// and an elliptical top cap. Background stays fully transparent.
func Barrel() *raster.Canvas {
	c := raster.NewCanvas(constants.BarrelWidth, constants.BarrelHeight)

	const (
		bodyTop   = 6
		bodyBot   = 44
		bodyLeft  = 4
		bodyRight = 27
	)

	// Body, then curvature shading over the opaque region
	raster.FillRect(c, bodyLeft, bodyTop, bodyRight, bodyBot, raster.RGBA{90, 75, 55, 255})
	shadeCylinder(c, bodyLeft, bodyRight, bodyTop, bodyBot, constants.BarrelShadeDepth, 2)

	// Metal bands
	for _, bandY := range []int{bodyTop + 2, bodyTop + 10, bodyBot - 10, bodyBot - 2} {
		raster.FillRect(c, bodyLeft, bandY, bodyRight, bandY+1, raster.RGBA{70, 65, 55, 255})
	}

	// Toxic glow emblem: two nested rectangles, two nested circles,
	// anchored at the sprite's geometric center
	midX := constants.BarrelWidth / 2
	midY := constants.BarrelHeight / 2
	raster.FillRect(c, midX-6, midY-5, midX+6, midY+5, raster.RGBA{40, 140, 30, 255})
	raster.FillRect(c, midX-4, midY-3, midX+4, midY+3, raster.RGBA{60, 180, 40, 255})
	raster.FillEllipse(c, midX-3, midY-3, midX+3, midY+3, raster.RGBA{30, 120, 20, 255})
	raster.FillEllipse(c, midX-1, midY-1, midX+1, midY+1, raster.RGBA{80, 200, 50, 255})

	// Top cap
	raster.FillEllipse(c, bodyLeft+1, bodyTop-3, bodyRight-1, bodyTop+3, raster.RGBA{100, 85, 65, 255})
	raster.OutlineEllipse(c, bodyLeft+1, bodyTop-3, bodyRight-1, bodyTop+3, raster.RGBA{70, 60, 45, 255})

	// Grain over the painted region only
	raster.OpaqueNoise(c, raster.Seeded(constants.BarrelSeed), constants.BarrelNoiseAmp)
	return c
}
