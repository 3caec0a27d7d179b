package geom

import "math"

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation. Points are treated as row vectors
// multiplied on the left (p' = p · M), so translation lives in the last row.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3Translation returns the affine translation matrix for (dx, dy).
func Mat3Translation(dx, dy float64) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		dx, dy, 1,
	}
}

// Mat3Rotation returns the counter-clockwise rotation matrix. Angle in radians.
func Mat3Rotation(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Mat3Scale returns the axis scaling matrix.
func Mat3Scale(sx, sy float64) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// Mul replaces m with m × o. Order matters: composing transforms this way
// applies the earliest-multiplied matrix to the point first.
func (m *Mat3) Mul(o Mat3) {
	*m = Mat3Mul(*m, o)
}

// Apply transforms v as a row vector with implicit homogeneous w=1.
func (m Mat3) Apply(v Vec2) Vec2 {
	return Vec2{
		v.X*m[0] + v.Y*m[3] + m[6],
		v.X*m[1] + v.Y*m[4] + m[7],
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
