package canvas

import (
	"math"

	"vecdraw/internal/geom"
	"vecdraw/internal/raster"
)

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath at p.
func (c *Canvas) MoveTo(p geom.Vec2) {
	c.path = append(c.path, subpath{pts: []geom.Vec2{c.device(p)}})
}

// LineTo extends the current subpath to p. Without a prior MoveTo it starts
// a subpath, like a canvas context does.
func (c *Canvas) LineTo(p geom.Vec2) {
	if len(c.path) == 0 {
		c.MoveTo(p)
		return
	}
	last := &c.path[len(c.path)-1]
	last.pts = append(last.pts, c.device(p))
}

// ClosePath marks the current subpath closed so Stroke draws its closing edge.
func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	c.path[len(c.path)-1].closed = true
}

// Rect appends a rectangle subpath with top-left corner p.
func (c *Canvas) Rect(p geom.Vec2, w, h float64) {
	c.path = append(c.path, subpath{
		pts: []geom.Vec2{
			c.device(p),
			c.device(geom.Vec2{X: p.X + w, Y: p.Y}),
			c.device(geom.Vec2{X: p.X + w, Y: p.Y + h}),
			c.device(geom.Vec2{X: p.X, Y: p.Y + h}),
		},
		closed: true,
	})
}

// Circle appends a polygonized circle subpath centered at p.
func (c *Canvas) Circle(p geom.Vec2, r float64) {
	segs := int(r)
	if segs < 16 {
		segs = 16
	}
	if segs > 128 {
		segs = 128
	}
	pts := make([]geom.Vec2, segs)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segs)
		pts[i] = c.device(geom.Vec2{X: p.X + r*math.Cos(a), Y: p.Y + r*math.Sin(a)})
	}
	c.path = append(c.path, subpath{pts: pts, closed: true})
}

// Fill paints the current path with the fill color using even-odd coverage
// across subpaths. The path is kept, as a canvas context keeps it.
func (c *Canvas) Fill() {
	img := c.surface()
	rings := make([][]geom.Vec2, 0, len(c.path))
	for _, sp := range c.path {
		if len(sp.pts) >= 3 {
			rings = append(rings, sp.pts)
		}
	}
	raster.FillPolygons(img, rings, c.state.FillColor, c.state.Alpha)
}

// Stroke outlines the current path with the stroke color, honoring line
// width and the dash pattern.
func (c *Canvas) Stroke() {
	c.surface()
	for _, sp := range c.path {
		if len(sp.pts) < 2 {
			continue
		}
		pts := sp.pts
		if sp.closed {
			pts = append(append([]geom.Vec2(nil), pts...), pts[0])
		}
		c.strokePolyline(pts)
	}
}

// Line strokes a single segment immediately, without touching the path.
func (c *Canvas) Line(a, b geom.Vec2) {
	c.strokePolyline([]geom.Vec2{c.device(a), c.device(b)})
}

// strokePolyline draws device-space segments, slicing them by the dash
// pattern when one is set. The dash phase carries across joints.
func (c *Canvas) strokePolyline(pts []geom.Vec2) {
	img := c.surface()
	if len(c.state.Dash) == 0 {
		for i := 0; i+1 < len(pts); i++ {
			raster.StrokeLine(img, pts[i], pts[i+1], c.state.LineWidth, c.state.StrokeColor, c.state.Alpha)
		}
		return
	}

	pattern := c.state.Dash
	idx := 0
	rem := pattern[0]
	on := true
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := b.Sub(a).Magnitude()
		if !finitef(segLen) {
			continue
		}
		pos := 0.0
		for pos < segLen {
			step := math.Min(rem, segLen-pos)
			if on {
				p0 := a.Lerp(b, pos/segLen)
				p1 := a.Lerp(b, (pos+step)/segLen)
				raster.StrokeLine(img, p0, p1, c.state.LineWidth, c.state.StrokeColor, c.state.Alpha)
			}
			pos += step
			rem -= step
			if rem <= 0 {
				idx = (idx + 1) % len(pattern)
				rem = pattern[idx]
				on = !on
			}
		}
	}
}

func finitef(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
