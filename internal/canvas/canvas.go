// Package canvas is a stateful 2D drawing facade over an in-memory NRGBA
// surface. It mirrors the shape of an immediate-mode canvas context: a current
// path, fill/stroke style state, a save/restore stack, and a current transform
// applied to incoming points at path-build time.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"vecdraw/internal/geom"
)

// State is the mutable style state scoped by Save/Restore.
type State struct {
	FillColor   color.NRGBA
	StrokeColor color.NRGBA
	LineWidth   float64
	Dash        []float64 // on/off run lengths in pixels; nil means solid
	Alpha       float64   // global alpha in [0,1]
	Face        font.Face
	Transform   geom.Mat3
}

type subpath struct {
	pts    []geom.Vec2 // device-space points
	closed bool
}

// Canvas wraps a drawing surface. The zero value has no surface; any draw
// call on it fails fast with a descriptive panic (construction never fails,
// first use does).
type Canvas struct {
	img   *image.NRGBA
	state State
	stack []State
	path  []subpath
}

// New allocates a transparent w×h surface.
func New(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %d×%d", w, h)
	}
	return NewFromImage(image.NewNRGBA(image.Rect(0, 0, w, h))), nil
}

// NewFromImage wraps an existing surface. The canvas draws into it directly.
func NewFromImage(img *image.NRGBA) *Canvas {
	return &Canvas{img: img, state: defaultState()}
}

func defaultState() State {
	return State{
		FillColor:   color.NRGBA{0, 0, 0, 255},
		StrokeColor: color.NRGBA{0, 0, 0, 255},
		LineWidth:   1,
		Alpha:       1,
		Face:        basicfont.Face7x13,
		Transform:   geom.Mat3Identity(),
	}
}

func (c *Canvas) surface() *image.NRGBA {
	if c.img == nil {
		panic("canvas: no backing surface bound")
	}
	return c.img
}

// Image returns the backing surface.
func (c *Canvas) Image() *image.NRGBA { return c.surface() }

func (c *Canvas) Width() int  { return c.surface().Bounds().Dx() }
func (c *Canvas) Height() int { return c.surface().Bounds().Dy() }

// AspectRatio returns width/height.
func (c *Canvas) AspectRatio() float64 {
	return float64(c.Width()) / float64(c.Height())
}

// Center returns the midpoint of the surface in device coordinates.
func (c *Canvas) Center() geom.Vec2 {
	return geom.Vec2{X: float64(c.Width()) / 2, Y: float64(c.Height()) / 2}
}

// Clear resets every pixel to transparent black.
func (c *Canvas) Clear() {
	pix := c.surface().Pix
	for i := range pix {
		pix[i] = 0
	}
}

// Save pushes the current style state. Dash is copied so later SetDash calls
// cannot reach into saved frames.
func (c *Canvas) Save() {
	s := c.state
	if s.Dash != nil {
		s.Dash = append([]float64(nil), s.Dash...)
	}
	c.stack = append(c.stack, s)
}

// Restore pops the most recent saved state. Restoring with an empty stack is
// a no-op, matching canvas-context behavior.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Scoped runs fn inside a Save/Restore pair. The restore happens even if fn
// panics, so style state cannot leak across early exits.
func (c *Canvas) Scoped(fn func()) {
	c.Save()
	defer c.Restore()
	fn()
}

func (c *Canvas) SetFill(col color.NRGBA)   { c.state.FillColor = col }
func (c *Canvas) SetStroke(col color.NRGBA) { c.state.StrokeColor = col }
func (c *Canvas) SetLineWidth(w float64)    { c.state.LineWidth = w }
func (c *Canvas) SetDash(pattern []float64) { c.state.Dash = pattern }
func (c *Canvas) SetAlpha(a float64)        { c.state.Alpha = a }
func (c *Canvas) SetFace(f font.Face)       { c.state.Face = f }

// Translate prepends a translation to the current transform.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.Transform = geom.Mat3Mul(geom.Mat3Translation(dx, dy), c.state.Transform)
}

// Rotate prepends a rotation (radians) to the current transform.
func (c *Canvas) Rotate(theta float64) {
	c.state.Transform = geom.Mat3Mul(geom.Mat3Rotation(theta), c.state.Transform)
}

// Scale prepends an axis scale to the current transform.
func (c *Canvas) Scale(sx, sy float64) {
	c.state.Transform = geom.Mat3Mul(geom.Mat3Scale(sx, sy), c.state.Transform)
}

// device maps a user-space point through the current transform.
func (c *Canvas) device(p geom.Vec2) geom.Vec2 {
	return p.Transform(c.state.Transform)
}
