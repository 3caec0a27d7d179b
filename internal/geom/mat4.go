package geom

import "math"

// Mat4 is a 4×4 matrix stored row-major. Same row-vector convention as Mat3:
// p' = p · M with translation in the last row.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns the affine translation matrix for (dx, dy, dz).
func Mat4Translation(dx, dy, dz float64) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		dx, dy, dz, 1,
	}
}

// Mat4RotationX returns a rotation matrix around the X axis. Angle in radians.
func Mat4RotationX(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationY returns a rotation matrix around the Y axis.
func Mat4RotationY(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationZ returns a rotation matrix around the Z axis.
func Mat4RotationZ(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Scale returns the axis scaling matrix.
func Mat4Scale(sx, sy, sz float64) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Mat4Perspective builds a perspective projection matrix. fov is the vertical
// field of view in degrees, aspect is width/height. After transforming a point
// and dividing by the resulting w, x and y land in [-1,1] and z in [0,1].
//
// far == near produces an Inf/NaN matrix; degenerate input propagates through
// the projection rather than being clamped.
func Mat4Perspective(fov, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(Deg2Rad(fov)/2)
	q := far / (far - near)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, q, 1,
		0, 0, -near * q, 0,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Mul replaces m with m × o.
func (m *Mat4) Mul(o Mat4) {
	*m = Mat4Mul(*m, o)
}

// Apply transforms v as a row vector with w=1 and returns the full
// homogeneous result including w'. Callers decide whether to divide.
func (m Mat4) Apply(v Vec3) (x, y, z, w float64) {
	x = v.X*m[0] + v.Y*m[4] + v.Z*m[8] + m[12]
	y = v.X*m[1] + v.Y*m[5] + v.Z*m[9] + m[13]
	z = v.X*m[2] + v.Y*m[6] + v.Z*m[10] + m[14]
	w = v.X*m[3] + v.Y*m[7] + v.Z*m[11] + m[15]
	return
}

// ApplyPoint transforms v as an affine point (w=1) without the divide.
func (m Mat4) ApplyPoint(v Vec3) Vec3 {
	x, y, z, _ := m.Apply(v)
	return Vec3{x, y, z}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
