// Package scene renders the demo scene: a cube spun around all three axes,
// pushed away from the eye, and projected onto the canvas.
package scene

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"vecdraw/internal/canvas"
	"vecdraw/internal/geom"
)

// Clip planes shared by every projection in the scene.
const (
	Near = 0.1
	Far  = 1000
)

// Params drives one frame. Offset moves the cube in camera space (x, y in
// [-200,200], z in [80,400] for a cube that stays on screen), FOV is the
// vertical field of view in degrees in [60,170].
type Params struct {
	Offset     geom.Vec3
	FOV        float64
	Angle      float64 // radians; spin around all three axes
	Background *image.NRGBA
	ShowLabel  bool
}

const halfExtent = 50

var cubeVerts = [8]geom.Vec3{
	{X: -halfExtent, Y: -halfExtent, Z: -halfExtent},
	{X: halfExtent, Y: -halfExtent, Z: -halfExtent},
	{X: halfExtent, Y: halfExtent, Z: -halfExtent},
	{X: -halfExtent, Y: halfExtent, Z: -halfExtent},
	{X: -halfExtent, Y: -halfExtent, Z: halfExtent},
	{X: halfExtent, Y: -halfExtent, Z: halfExtent},
	{X: halfExtent, Y: halfExtent, Z: halfExtent},
	{X: -halfExtent, Y: halfExtent, Z: halfExtent},
}

var cubeFaces = [6][4]int{
	{0, 1, 2, 3}, // z-
	{5, 4, 7, 6}, // z+
	{4, 0, 3, 7}, // x-
	{1, 5, 6, 2}, // x+
	{4, 5, 1, 0}, // y-
	{3, 2, 6, 7}, // y+
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var (
	faceBase  = geom.Vec3{X: 80, Y: 140, Z: 200} // RGB as a vector for shading
	lightDir  = geom.Vec3{X: -0.4, Y: -0.6, Z: -0.7}.Normalize()
	edgeColor = color.NRGBA{230, 235, 245, 255}
	dotColor  = color.NRGBA{255, 210, 80, 255}
	textColor = color.NRGBA{200, 200, 200, 255}
)

// Draw renders one frame into the canvas.
func Draw(c *canvas.Canvas, p Params) {
	c.Clear()
	w := float64(c.Width())
	h := float64(c.Height())

	if p.Background != nil {
		c.DrawImage(p.Background, geom.Vec2{}, w, h)
	} else {
		c.FillRect(geom.Vec2{}, w, h, color.NRGBA{16, 18, 24, 255})
	}

	// Rotate at three unequal rates so the spin never lines up with an axis.
	var world [8]geom.Vec3
	for i, v := range cubeVerts {
		world[i] = v.
			RotateX(p.Angle).
			RotateY(p.Angle * 0.7).
			RotateZ(p.Angle * 0.3).
			Translate(p.Offset)
	}

	aspect := c.AspectRatio()
	var pts [8]geom.Vec2
	for i, v := range world {
		pts[i] = v.Project(p.FOV, aspect, Near, Far, w, h)
	}

	// Painter's order: farthest face first.
	order := [6]int{0, 1, 2, 3, 4, 5}
	depth := func(f int) float64 {
		var z float64
		for _, vi := range cubeFaces[f] {
			z += world[vi].Z
		}
		return z / 4
	}
	sort.Slice(order[:], func(a, b int) bool {
		return depth(order[a]) > depth(order[b])
	})

	for _, f := range order {
		face := cubeFaces[f]
		n := world[face[1]].Sub(world[face[0]]).
			Cross(world[face[2]].Sub(world[face[0]])).
			Normalize()
		shade := 0.25 + 0.75*abs(n.Dot(lightDir))
		col := color.NRGBA{
			R: shadeChan(faceBase.X, shade),
			G: shadeChan(faceBase.Y, shade),
			B: shadeChan(faceBase.Z, shade),
			A: 255,
		}

		c.Scoped(func() {
			c.SetFill(col)
			c.BeginPath()
			c.MoveTo(pts[face[0]])
			c.LineTo(pts[face[1]])
			c.LineTo(pts[face[2]])
			c.LineTo(pts[face[3]])
			c.ClosePath()
			c.Fill()
		})
	}

	c.Scoped(func() {
		c.SetStroke(edgeColor)
		c.SetLineWidth(1)
		for _, e := range cubeEdges {
			c.Line(pts[e[0]], pts[e[1]])
		}
	})

	c.Scoped(func() {
		c.SetFill(dotColor)
		for _, pt := range pts {
			c.BeginPath()
			c.Circle(pt, 2.5)
			c.Fill()
		}
	})

	if p.ShowLabel {
		c.Scoped(func() {
			c.SetFill(textColor)
			label := fmt.Sprintf("fov=%.0f  offset=(%.0f, %.0f, %.0f)",
				p.FOV, p.Offset.X, p.Offset.Y, p.Offset.Z)
			c.Text(label, geom.Vec2{X: 8, Y: h - 8})
		})
	}
}

func shadeChan(base, shade float64) uint8 {
	v := base * shade
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
