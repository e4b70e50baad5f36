package raster

import (
	"image"
	"image/color"
)

// Canvas is a bounds-checked 2D grid of RGBA pixels. Each generator
// allocates one canvas, mutates it exclusively, and hands it off to the
// PNG encoder once.
type Canvas struct {
	width  int
	height int
	pixels []RGBA
}

// NewCanvas creates a fully transparent canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]RGBA, width*height),
	}
}

// NewSolidCanvas creates a canvas filled with an opaque color
func NewSolidCanvas(width, height int, fill RGB) *Canvas {
	c := NewCanvas(width, height)
	p := fill.Opaque()
	for i := range c.pixels {
		c.pixels[i] = p
	}
	return c
}

// Width returns the canvas width
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height
func (c *Canvas) Height() int {
	return c.height
}

// In reports whether (x, y) lies inside the canvas
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel at (x, y); out-of-bounds reads yield a
// transparent pixel
func (c *Canvas) At(x, y int) RGBA {
	if !c.In(x, y) {
		return RGBA{}
	}
	return c.pixels[y*c.width+x]
}

// Set writes the pixel at (x, y); out-of-bounds writes are dropped
func (c *Canvas) Set(x, y int, p RGBA) {
	if !c.In(x, y) {
		return
	}
	c.pixels[y*c.width+x] = p
}

// SetWrapped writes the pixel at (x mod w, y mod h), mapping negative
// coordinates onto the canvas. Used by toroidal walks.
func (c *Canvas) SetWrapped(x, y int, p RGBA) {
	c.pixels[wrap(y, c.height)*c.width+wrap(x, c.width)] = p
}

// wrap maps v into [0, n) including negative inputs
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// ToImage copies the canvas into a stdlib RGBA image for encoding.
// The canvas stores straight (non-premultiplied) color, but every
// pixel is either fully opaque or fully transparent so the encoded
// result is identical either way.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{p.R, p.G, p.B, p.A})
		}
	}
	return img
}

// ToOpaqueImage copies the canvas into an RGB-only image, ignoring
// alpha. Used for tiling textures, which carry no transparency.
func (c *Canvas) ToOpaqueImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{p.R, p.G, p.B, 255})
		}
	}
	return img
}
