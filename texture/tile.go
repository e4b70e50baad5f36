package texture

import (
	"github.com/lixenwraith/hangar-assets/constants"
	"github.com/lixenwraith/hangar-assets/raster"
)

// GrayTileFloor renders industrial floor tiles: two-pixel grooves on a
// 32-pixel grid, with per-tile and per-pixel jitter on the tile faces.
// Groove pixels are masked out of the noise so tile seams line up
// exactly at texture edges.
func GrayTileFloor() *raster.Canvas {
	const size = constants.TextureSize
	c := raster.NewSolidCanvas(size, size, raster.RGB{95, 100, 100})
	mask := raster.NewMask(size, size)
	groove := raster.RGBA{65, 68, 70, 255}

	const tile = constants.TileSize
	for i := 0; i <= size/tile; i++ {
		pos := i * tile
		raster.VLine(c, pos, 0, size-1, 2, groove)
		mask.MarkRect(pos, 0, pos+1, size-1)
		raster.HLine(c, 0, size-1, pos, 2, groove)
		mask.MarkRect(0, pos, size-1, pos+1)
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if mask.Excluded(x, y) {
				continue
			}
			blockSeed := int64((y/tile)*4 + x/tile + constants.TileBlockSeed)
			tv := raster.Jitter(raster.Seeded(blockSeed), 8)
			pixelSeed := int64(y*size + x + constants.TilePixelSeed)
			v := raster.Jitter(raster.Seeded(pixelSeed), 10)
			c.Set(x, y, c.At(x, y).Offset(v+tv, v+tv, v+tv))
		}
	}

	return c
}
