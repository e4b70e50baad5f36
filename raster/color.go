package raster

// RGB stores explicit 8-bit color channels for opaque texture work
type RGB struct {
	R, G, B uint8
}

// RGBA adds an alpha channel; A=0 marks an unpainted (transparent) pixel
type RGBA struct {
	R, G, B, A uint8
}

// Opaque wraps an RGB triple with full alpha
func (c RGB) Opaque() RGBA {
	return RGBA{c.R, c.G, c.B, 255}
}

// RGB drops the alpha channel
func (c RGBA) RGB() RGB {
	return RGB{c.R, c.G, c.B}
}

// Transparent reports whether the pixel is fully transparent
func (c RGBA) Transparent() bool {
	return c.A == 0
}

// clampChannel clamps an int to the valid 8-bit channel range
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Offset adds per-channel deltas with clamping, preserving alpha
func (c RGBA) Offset(dr, dg, db int) RGBA {
	return RGBA{
		R: clampChannel(int(c.R) + dr),
		G: clampChannel(int(c.G) + dg),
		B: clampChannel(int(c.B) + db),
		A: c.A,
	}
}

// Offset adds per-channel deltas with clamping
func (c RGB) Offset(dr, dg, db int) RGB {
	return RGB{
		R: clampChannel(int(c.R) + dr),
		G: clampChannel(int(c.G) + dg),
		B: clampChannel(int(c.B) + db),
	}
}
