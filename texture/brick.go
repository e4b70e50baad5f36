package texture

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// BrownBrick renders staggered brick rows with one-pixel mortar lines.
// Brick pixels get a per-brick color jitter plus fine grain; mortar is
// masked out of both.
func BrownBrick() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{120, 70, 40})
	mask := raster.NewMask(size, size)
	mortar := raster.RGBA{60, 40, 25, 255}

	const (
		brickH = constants.BrickHeight
		brickW = constants.BrickWidth
	)

	for row := 0; row <= size/brickH; row++ {
		y := row * brickH
		raster.FillRect(c, 0, y, size, y+1, mortar)
		mask.MarkRect(0, y, size-1, y+1)
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for col := -1; col <= size/brickW+1; col++ {
			x := col*brickW + offset
			raster.FillRect(c, x, y, x+1, y+brickH, mortar)
			mask.MarkRect(x, y, x+1, y+brickH)
		}
	}

	// Dual jitter: one coarse value per brick cell, one fine value per
	// pixel; warm channels take the full brick shift, cooler channels a
	// fraction
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if mask.Excluded(x, y) {
				continue
			}
			blockSeed := int64((y/brickH)*10 + x/brickW + constants.BrickBlockSeed)
			bv := raster.Jitter(raster.Seeded(blockSeed), 20)
			pixelSeed := int64(y*size + x + constants.BrickPixelSeed)
			pv := raster.Jitter(raster.Seeded(pixelSeed), 8)
			c.Set(x, y, c.At(x, y).Offset(bv+pv, bv/2+pv, bv/3+pv))
		}
	}

	return c
}
