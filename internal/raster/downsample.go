package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img down to w×h with alpha-premultiplied CatmullRom
// filtering. Premultiplying first avoids dark halos where antialiased edges
// meet transparent pixels. Returns img unchanged if it is already small enough.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255
			premul.Pix[di] = clamp255(float64(img.Pix[si]) * a)
			premul.Pix[di+1] = clamp255(float64(img.Pix[si+1]) * a)
			premul.Pix[di+2] = clamp255(float64(img.Pix[si+2]) * a)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(scaled.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := scaled.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := float64(scaled.Pix[si+3])
			if a > 1 {
				inv := 255 / a
				out.Pix[di] = clamp255(float64(scaled.Pix[si]) * inv)
				out.Pix[di+1] = clamp255(float64(scaled.Pix[si+1]) * inv)
				out.Pix[di+2] = clamp255(float64(scaled.Pix[si+2]) * inv)
			}
			out.Pix[di+3] = scaled.Pix[si+3]
		}
	}
	return out
}
