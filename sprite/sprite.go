// Package sprite renders the decorative billboard objects: free-standing
// props drawn onto transparent canvases with procedural shading and
// per-pixel grain. Every generator is deterministic for its fixed seed.
package sprite

import (
	"math"

	"github.com/lixenwraith/hangar-assets/raster"
)

// shadeCylinder lifts pixel brightness with a quadratic falloff from
// the center axis of the column span [x0, x1], approximating curved
// surface lighting. Runs after base fills, reads current pixel values,
// and never touches transparent pixels. blueDiv divides the blue
// channel lift (warm materials pick up less blue).
func shadeCylinder(c *raster.Canvas, x0, x1, y0, y1, depth, blueDiv int) {
	center := float64(x0+x1) / 2
	halfSpan := float64(x1-x0) / 2
	for x := x0; x <= x1; x++ {
		d := math.Abs(float64(x)-center) / halfSpan
		shade := int(math.Round(float64(depth) * (1 - d*d)))
		for y := y0; y <= y1; y++ {
			p := c.At(x, y)
			if p.Transparent() {
				continue
			}
			c.Set(x, y, p.Offset(shade, shade, shade/blueDiv))
		}
	}
}
