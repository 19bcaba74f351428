package geometry

import "math"

// Transform builders. Each builds an elementary matrix E and replaces
// the receiver with E * M, so a chain like
//
//	m.RotateX(a).Scale(2, 2, 2).Translate(0, 1, 0)
//
// accumulates Translate * Scale * RotateX, so the earliest call in the
// chain is the first transform applied to a point.

// Translate left-multiplies a translation onto the accumulated matrix
// and returns the receiver for chaining
func (m *Matrix4) Translate(x, y, z float64) *Matrix4 {
	e := IdentityMatrix()
	e[0][3] = x
	e[1][3] = y
	e[2][3] = z
	*m = e.Multiply(*m)
	return m
}

// Scale left-multiplies a scaling onto the accumulated matrix and
// returns the receiver for chaining
func (m *Matrix4) Scale(x, y, z float64) *Matrix4 {
	e := IdentityMatrix()
	e[0][0] = x
	e[1][1] = y
	e[2][2] = z
	*m = e.Multiply(*m)
	return m
}

// RotateX left-multiplies a rotation of r radians about the x axis onto
// the accumulated matrix and returns the receiver for chaining
func (m *Matrix4) RotateX(r float64) *Matrix4 {
	sin, cos := math.Sincos(r)
	e := IdentityMatrix()
	e[1][1] = cos
	e[1][2] = -sin
	e[2][1] = sin
	e[2][2] = cos
	*m = e.Multiply(*m)
	return m
}

// RotateY left-multiplies a rotation of r radians about the y axis onto
// the accumulated matrix and returns the receiver for chaining
func (m *Matrix4) RotateY(r float64) *Matrix4 {
	sin, cos := math.Sincos(r)
	e := IdentityMatrix()
	e[0][0] = cos
	e[0][2] = sin
	e[2][0] = -sin
	e[2][2] = cos
	*m = e.Multiply(*m)
	return m
}

// RotateZ left-multiplies a rotation of r radians about the z axis onto
// the accumulated matrix and returns the receiver for chaining
func (m *Matrix4) RotateZ(r float64) *Matrix4 {
	sin, cos := math.Sincos(r)
	e := IdentityMatrix()
	e[0][0] = cos
	e[0][1] = -sin
	e[1][0] = sin
	e[1][1] = cos
	*m = e.Multiply(*m)
	return m
}

// Shear left-multiplies a shearing onto the accumulated matrix and
// returns the receiver for chaining. Each parameter couples one
// component to another: xy moves x in proportion to y, and so on.
func (m *Matrix4) Shear(xy, xz, yx, yz, zx, zy float64) *Matrix4 {
	e := IdentityMatrix()
	e[0][1] = xy
	e[0][2] = xz
	e[1][0] = yx
	e[1][2] = yz
	e[2][0] = zx
	e[2][1] = zy
	*m = e.Multiply(*m)
	return m
}

// Transpose left-multiplies the transpose of the accumulated matrix
// onto the receiver, composing like the other builders rather than
// replacing the receiver with its pure transpose. A pure transpose of
// M is Transposed(M) applied to a fresh identity chain.
func (m *Matrix4) Transpose() *Matrix4 {
	*m = Transposed(*m).Multiply(*m)
	return m
}

// Transposed returns the transpose of a matrix
func Transposed(m Matrix4) Matrix4 {
	var t Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}
