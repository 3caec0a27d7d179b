package geom

import "math"

// Vec3 is a 3D point/vector (value type, stack-allocated).
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector; the zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Lerp returns the linear interpolation between v and u by t.
func (v Vec3) Lerp(u Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (u.X-v.X)*t,
		v.Y + (u.Y-v.Y)*t,
		v.Z + (u.Z-v.Z)*t,
	}
}

// Transform applies a Mat4 as an affine point (w=1, no divide).
func (v Vec3) Transform(m Mat4) Vec3 {
	return m.ApplyPoint(v)
}

// Translate is sugar for transforming by Mat4Translation.
func (v Vec3) Translate(d Vec3) Vec3 {
	return v.Transform(Mat4Translation(d.X, d.Y, d.Z))
}

// RotateX rotates around the X axis. Angle in radians.
func (v Vec3) RotateX(theta float64) Vec3 {
	return v.Transform(Mat4RotationX(theta))
}

// RotateY rotates around the Y axis.
func (v Vec3) RotateY(theta float64) Vec3 {
	return v.Transform(Mat4RotationY(theta))
}

// RotateZ rotates around the Z axis.
func (v Vec3) RotateZ(theta float64) Vec3 {
	return v.Transform(Mat4RotationZ(theta))
}

// ScaleBy is sugar for transforming by Mat4Scale with per-axis factors.
func (v Vec3) ScaleBy(f Vec3) Vec3 {
	return v.Transform(Mat4Scale(f.X, f.Y, f.Z))
}

// Project maps the point into device coordinates: build a perspective matrix,
// transform (x, y, z, 1), divide by the resulting w, then map normalized
// device coordinates in [-1,1] to [0,vw]×[0,vh] with y growing downward.
// The receiver is not mutated. A point at the projection singularity (w' == 0)
// yields Inf/NaN coordinates, which downstream drawing ignores.
func (v Vec3) Project(fov, aspect, near, far, vw, vh float64) Vec2 {
	p := Mat4Perspective(fov, aspect, near, far)
	x, y, _, w := p.Apply(v)
	ndcX := x / w
	ndcY := y / w
	return Vec2{
		(ndcX + 1) * 0.5 * vw,
		(1 - ndcY) * 0.5 * vh,
	}
}
