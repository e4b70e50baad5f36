// Package texture renders the ten 128×128 tiling surfaces. Every
// pattern follows the same shape: base fill, structural pattern drawn
// with primitives, seeded noise for organic variation, optional
// smoothing. Patterns that repeat structural units layer a coarse
// block-level jitter (one value per brick/tile, seeded by block index)
// under a fine per-pixel jitter (seeded by absolute pixel index), so
// units visibly differ while staying reproducible functions of
// position alone.
package texture

import (
	"github.com/lixenwraith/hangar-assets/raster"
)

// Generator produces one finished tiling texture
type Generator func() *raster.Canvas

// Entry pairs an output file stem with its generator
type Entry struct {
	Name string
	Gen  Generator
}

// All lists every texture in output order
func All() []Entry {
	return []Entry{
		{"brown_brick", BrownBrick},
		{"brown_stone_floor", BrownStoneFloor},
		{"gray_concrete", GrayConcrete},
		{"gray_tile_floor", GrayTileFloor},
		{"dark_teal_metal", DarkTealMetal},
		{"tan_walkway", TanWalkway},
		{"blue_tech_panel", BlueTechPanel},
		{"tech_floor", TechFloor},
		{"green_stone", GreenStone},
		{"ceiling_panel", CeilingPanel},
	}
}
