package raster

import (
	"image"
	"image/color"
	"math"
)

// BlendPixel composites c over the pixel at (x, y) with the extra coverage
// factor cov in [0,1]. Out-of-bounds coordinates are ignored.
func BlendPixel(img *image.NRGBA, x, y int, c color.NRGBA, cov float64) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if cov <= 0 {
		return
	}
	if cov > 1 {
		cov = 1
	}

	i := img.PixOffset(x, y)
	sa := float64(c.A) / 255 * cov
	if sa <= 0 {
		return
	}
	da := float64(img.Pix[i+3]) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return
	}

	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return clamp255(v)
	}
	img.Pix[i] = blend(c.R, img.Pix[i])
	img.Pix[i+1] = blend(c.G, img.Pix[i+1])
	img.Pix[i+2] = blend(c.B, img.Pix[i+2])
	img.Pix[i+3] = clamp255(oa * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
