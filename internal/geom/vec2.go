package geom

import "math"

// Vec2 is a 2D point/vector (value type, stack-allocated). Only the Cartesian
// pair is stored; the polar view (Theta, Magnitude) is derived on access, so
// the two representations can never diverge.
type Vec2 struct {
	X, Y float64
}

// FromPolar builds a vector from an angle (radians) and a magnitude.
func FromPolar(theta, magnitude float64) Vec2 {
	return Vec2{magnitude * math.Cos(theta), magnitude * math.Sin(theta)}
}

// Theta returns the polar angle atan2(y, x).
func (v Vec2) Theta() float64 {
	return math.Atan2(v.Y, v.X)
}

// Magnitude returns the Euclidean length.
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// SetTheta rotates the vector to the given angle, keeping its magnitude.
func (v *Vec2) SetTheta(theta float64) {
	m := v.Magnitude()
	v.X = m * math.Cos(theta)
	v.Y = m * math.Sin(theta)
}

// SetMagnitude rescales the vector to the given length, keeping its angle.
func (v *Vec2) SetMagnitude(magnitude float64) {
	t := v.Theta()
	v.X = magnitude * math.Cos(t)
	v.Y = magnitude * math.Sin(t)
}

func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{v.X + u.X, v.Y + u.Y}
}

func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{v.X - u.X, v.Y - u.Y}
}

// Scale returns the scalar product v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns the scalar division v / s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) Dot(u Vec2) float64 {
	return v.X*u.X + v.Y*u.Y
}

// Cross returns the scalar z-component of the 3D cross product.
func (v Vec2) Cross(u Vec2) float64 {
	return v.X*u.Y - v.Y*u.X
}

// Normalize returns the unit vector in the same direction. The zero vector is
// returned unchanged rather than producing NaN.
func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return Vec2{v.X / m, v.Y / m}
}

// Lerp returns the linear interpolation between v and u by t.
func (v Vec2) Lerp(u Vec2, t float64) Vec2 {
	return Vec2{v.X + (u.X-v.X)*t, v.Y + (u.Y-v.Y)*t}
}

// Transform applies a Mat3 with implicit homogeneous w=1.
func (v Vec2) Transform(m Mat3) Vec2 {
	return m.Apply(v)
}

// Translate is sugar for transforming by Mat3Translation.
func (v Vec2) Translate(d Vec2) Vec2 {
	return v.Transform(Mat3Translation(d.X, d.Y))
}

// Rotate is sugar for transforming by Mat3Rotation. Angle in radians.
func (v Vec2) Rotate(theta float64) Vec2 {
	return v.Transform(Mat3Rotation(theta))
}

// ScaleBy is sugar for transforming by Mat3Scale with per-axis factors.
func (v Vec2) ScaleBy(f Vec2) Vec2 {
	return v.Transform(Mat3Scale(f.X, f.Y))
}
