package canvas

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"vecdraw/internal/geom"
	"vecdraw/internal/raster"
)

// Text draws s with the current face and fill color, with p at the baseline
// origin. Non-finite positions draw nothing.
func (c *Canvas) Text(s string, p geom.Vec2) {
	img := c.surface()
	d := c.device(p)
	if !finitef(d.X) || !finitef(d.Y) {
		return
	}
	col := c.state.FillColor
	col.A = uint8(float64(col.A) * clamp01(c.state.Alpha))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: c.state.Face,
		Dot:  fixed.P(int(d.X+0.5), int(d.Y+0.5)),
	}
	drawer.DrawString(s)
}

// DrawImage blits src scaled to w×h with its top-left corner at p. The blit
// is axis-aligned; only the translation of the current transform applies.
func (c *Canvas) DrawImage(src image.Image, p geom.Vec2, w, h float64) {
	img := c.surface()
	d := c.device(p)
	if !finitef(d.X) || !finitef(d.Y) || !finitef(w) || !finitef(h) {
		return
	}
	dst := image.Rect(int(d.X+0.5), int(d.Y+0.5), int(d.X+w+0.5), int(d.Y+h+0.5))
	xdraw.ApproxBiLinear.Scale(img, dst, src, src.Bounds(), xdraw.Over, nil)
}

// FillRect is the fill-without-path shorthand; the current path is untouched.
func (c *Canvas) FillRect(p geom.Vec2, w, h float64, col color.NRGBA) {
	img := c.surface()
	ring := []geom.Vec2{
		c.device(p),
		c.device(geom.Vec2{X: p.X + w, Y: p.Y}),
		c.device(geom.Vec2{X: p.X + w, Y: p.Y + h}),
		c.device(geom.Vec2{X: p.X, Y: p.Y + h}),
	}
	raster.FillPolygons(img, [][]geom.Vec2{ring}, col, c.state.Alpha)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
