package raster

import (
	"image"
	"image/color"
	"math"

	"vecdraw/internal/geom"
)

// StrokeLine draws a line segment from a to b. Hairlines (width <= 1) are
// stepped pixel by pixel along the major axis; thicker lines are filled as a
// quad. Segments with non-finite endpoints draw nothing, matching the
// permissive NaN policy of the transform pipeline.
func StrokeLine(img *image.NRGBA, a, b geom.Vec2, width float64, c color.NRGBA, alpha float64) {
	if !finite(a.X) || !finite(a.Y) || !finite(b.X) || !finite(b.Y) {
		return
	}
	if width > 1 {
		strokeThick(img, a, b, width, c, alpha)
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		BlendPixel(img, int(a.X+0.5), int(a.Y+0.5), c, alpha)
		return
	}
	n := int(steps + 0.5)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := a.X + dx*t
		y := a.Y + dy*t
		BlendPixel(img, int(x+0.5), int(y+0.5), c, alpha)
	}
}

func strokeThick(img *image.NRGBA, a, b geom.Vec2, width float64, c color.NRGBA, alpha float64) {
	d := b.Sub(a)
	if d.Magnitude() == 0 {
		FillCircle(img, a, width/2, c, alpha)
		return
	}
	// Unit normal scaled to half width.
	n := geom.Vec2{X: -d.Y, Y: d.X}.Normalize().Scale(width / 2)
	quad := []geom.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	FillPolygons(img, [][]geom.Vec2{quad}, c, alpha)
}
