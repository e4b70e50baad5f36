package texture

import (
	"math/rand"

	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// GrayConcrete renders hallway concrete: uniform noise plus two
// random-walk crack lines that wrap toroidally, softened by the
// stronger smoothing kernel.
func GrayConcrete() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{110, 110, 105})

	noise := raster.Seeded(constants.ConcreteNoiseSeed)
	raster.UniformNoise(c, noise, 15)

	crack := raster.RGBA{75, 75, 72, 255}
	walk := raster.Seeded(constants.ConcreteCrackSeed)
	crackWalk(c, walk, 20, 0, 60, -1, 2, crack)
	crackWalk(c, walk, 90, 30, 40, -2, 1, crack)

	return raster.SmoothMore(c)
}

// crackWalk runs a bounded-step downward walk from (cx, cy), drawing
// each step as a wrapped line segment. Horizontal steps are uniform in
// [dxMin, dxMax]; vertical steps in [1, 3] keep the crack descending.
func crackWalk(c *raster.Canvas, rng *rand.Rand, cx, cy, steps, dxMin, dxMax int, p raster.RGBA) {
	for i := 0; i < steps; i++ {
		nx := cx + dxMin + rng.Intn(dxMax-dxMin+1)
		ny := cy + 1 + rng.Intn(3)
		raster.LineWrapped(c, cx, cy, nx, ny, p)
		cx, cy = nx, ny
	}
}
