package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG encodes the canvas as RGBA PNG at path. The write happens
// once from the fully built buffer.
func SavePNG(c *Canvas, path string) error {
	return encodePNG(c.ToImage(), path)
}

// SaveOpaquePNG encodes the canvas as PNG with alpha forced opaque.
// Used for tiling textures, which carry no transparency.
func SaveOpaquePNG(c *Canvas, path string) error {
	return encodePNG(c.ToOpaqueImage(), path)
}

func encodePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
