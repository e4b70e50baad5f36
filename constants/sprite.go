package constants

// Sprite Canvas Sizes
const (
	BarrelWidth  = 32
	BarrelHeight = 48

	PanelWidth  = 48
	PanelHeight = 48

	ColumnWidth  = 24
	ColumnHeight = 64
)

// Sprite Noise
const (
	// BarrelSeed governs the barrel's per-pixel grain
	BarrelSeed = 111

	// BarrelNoiseAmp is the barrel grain amplitude per channel
	BarrelNoiseAmp = 8

	// PanelSeed governs the terminal's randomized text rows
	PanelSeed = 222

	// ColumnSeed governs the column's per-pixel grain
	ColumnSeed = 333

	// ColumnNoiseAmp is the column grain amplitude per channel
	ColumnNoiseAmp = 5
)

// Quadratic Shading
const (
	// BarrelShadeDepth is the peak brightness lift at the barrel's
	// center axis
	BarrelShadeDepth = 20

	// ColumnShadeDepth is the peak brightness lift at the column's
	// center axis
	ColumnShadeDepth = 25
)
