package raster

import (
	"image"
	"image/color"
	"math"
	"sort"

	"vecdraw/internal/geom"
)

// FillPolygons fills a set of closed rings with even-odd scanline coverage.
// Rings sharing area cut holes into each other, which is what stacked canvas
// subpaths produce. Rings with fewer than three points or non-finite vertices
// are skipped.
//
// The scanline loop allocates once per call and does row-major writes,
// mirroring the hot-path layout of the triangle rasterizer this grew out of.
func FillPolygons(img *image.NRGBA, rings [][]geom.Vec2, c color.NRGBA, alpha float64) {
	bounds := img.Bounds()

	var usable [][]geom.Vec2
	minY, maxY := float64(bounds.Max.Y), float64(bounds.Min.Y)
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		ok := true
		for _, p := range ring {
			if !finite(p.X) || !finite(p.Y) {
				ok = false
				break
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
		if ok {
			usable = append(usable, ring)
		}
	}
	if len(usable) == 0 {
		return
	}

	y0 := int(minY)
	y1 := int(maxY) + 1
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}

	xs := make([]float64, 0, 16)
	for sy := y0; sy < y1; sy++ {
		cy := float64(sy) + 0.5
		xs = xs[:0]
		for _, ring := range usable {
			for i := range ring {
				p0 := ring[i]
				p1 := ring[(i+1)%len(ring)]
				// Half-open rule so shared vertices count once.
				if (p0.Y <= cy) == (p1.Y <= cy) {
					continue
				}
				t := (cy - p0.Y) / (p1.Y - p0.Y)
				xs = append(xs, p0.X+t*(p1.X-p0.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(xs[i] + 0.5)
			x1 := int(xs[i+1] + 0.5)
			if x0 < bounds.Min.X {
				x0 = bounds.Min.X
			}
			if x1 > bounds.Max.X {
				x1 = bounds.Max.X
			}
			for sx := x0; sx < x1; sx++ {
				BlendPixel(img, sx, sy, c, alpha)
			}
		}
	}
}

// FillCircle fills a disc centered at p. Non-finite input draws nothing.
func FillCircle(img *image.NRGBA, p geom.Vec2, r float64, c color.NRGBA, alpha float64) {
	if !finite(p.X) || !finite(p.Y) || !finite(r) || r <= 0 {
		return
	}
	bounds := img.Bounds()
	y0 := int(p.Y - r)
	y1 := int(p.Y+r) + 1
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}
	for sy := y0; sy < y1; sy++ {
		dy := float64(sy) + 0.5 - p.Y
		h := r*r - dy*dy
		if h < 0 {
			continue
		}
		halfSpan := math.Sqrt(h)
		x0 := int(p.X - halfSpan + 0.5)
		x1 := int(p.X + halfSpan + 0.5)
		if x0 < bounds.Min.X {
			x0 = bounds.Min.X
		}
		if x1 > bounds.Max.X {
			x1 = bounds.Max.X
		}
		for sx := x0; sx < x1; sx++ {
			BlendPixel(img, sx, sy, c, alpha)
		}
	}
}
