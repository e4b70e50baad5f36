package constants

// Texture Geometry
const (
	// TextureSize is the square side of every tiling texture
	TextureSize = 128

	// BrickWidth/Height are the brick cell dimensions
	BrickWidth  = 32
	BrickHeight = 16

	// FloorGrid is the stride of floor/stone grid lines
	FloorGrid = 32

	// TileSize is the industrial tile stride
	TileSize = 32

	// PlateSeam is the metal plate seam stride
	PlateSeam = 32

	// WalkwaySpacing is the diamond motif stride
	WalkwaySpacing = 16

	// GrateCell is the tech floor grate cell stride
	GrateCell = 16

	// GrateGap is the inset between grate cells
	GrateGap = 2

	// CeilingTile is the ceiling panel stride
	CeilingTile = 64
)

// Texture Seeds
//
// Block-level seeds offset coordinate-derived reseeding; pass-level
// seeds start a sequential jitter pass.
const (
	BrickBlockSeed = 101
	BrickPixelSeed = 42

	StoneFloorSeed = 202

	ConcreteNoiseSeed = 303
	ConcreteCrackSeed = 304

	TileBlockSeed = 404
	TilePixelSeed = 405

	TealMetalSeed = 505

	WalkwaySeed = 606

	TechPanelSeed = 707

	TechFloorSeed = 808

	GreenStoneSeed = 909

	CeilingSeed = 1010
)
