package geometry

import "math"

// Matrix4 is a 4x4 row-major matrix
type Matrix4 [4][4]float64

// Matrix3 is a 3x3 row-major matrix, produced when a row and column are
// struck from a Matrix4 during cofactor expansion
type Matrix3 [3][3]float64

// Matrix2 is the 2x2 base case of the cofactor expansion
type Matrix2 [2][2]float64

// NewMatrix4 creates a matrix from the given rows, or the zero matrix
// when rows is nil
func NewMatrix4(rows *[4][4]float64) Matrix4 {
	if rows == nil {
		return ZeroMatrix()
	}
	return Matrix4(*rows)
}

// ZeroMatrix returns the all-zeros matrix
func ZeroMatrix() Matrix4 {
	return Matrix4{}
}

// OneMatrix returns the all-ones matrix
func OneMatrix() Matrix4 {
	var m Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = 1
		}
	}
	return m
}

// IdentityMatrix returns the multiplicative identity
func IdentityMatrix() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Equal reports whether two matrices match within Epsilon on every element
func (m Matrix4) Equal(other Matrix4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(m[r][c]-other[r][c]) >= Epsilon {
				return false
			}
		}
	}
	return true
}

// Multiply returns the matrix product m * other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[r][0]*other[0][c] +
				m[r][1]*other[1][c] +
				m[r][2]*other[2][c] +
				m[r][3]*other[3][c]
		}
	}
	return result
}

// MultiplyPoint applies the matrix to a point. The resulting weight is
// whatever the bottom row produces; it is not re-normalized.
func (m Matrix4) MultiplyPoint(p Point3) Point3 {
	return Point3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]*p.W,
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]*p.W,
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]*p.W,
		W: m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]*p.W,
	}
}

// MultiplyVector applies the matrix to a vector. The implicit zero
// weight drops the translation column, so only the linear part acts.
func (m Matrix4) MultiplyVector(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transform applies a matrix to the point. Both operand orders apply
// the matrix the same way, so p.Transform(m) == m.MultiplyPoint(p).
func (p Point3) Transform(m Matrix4) Point3 {
	return m.MultiplyPoint(p)
}

// Transform applies a matrix to the vector
func (v Vector3) Transform(m Matrix4) Vector3 {
	return m.MultiplyVector(v)
}

// Submatrix returns the 3x3 matrix left after deleting the given row
// and column
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var sub Matrix3
	sr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		sc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			sub[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return sub
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m Matrix4) Determinant() float64 {
	var det float64
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse matrix. Inverting a matrix whose
// determinant is exactly zero is a precondition violation and panics:
// silently returning a garbage matrix would corrupt all downstream
// geometry undetectably.
func (m Matrix4) Inverse() Matrix4 {
	det := m.Determinant()
	if det == 0 {
		panic("geometry: inverse of a singular matrix")
	}
	var inv Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Writing cofactor(r, c) into inv[c][r] folds the
			// adjugate transpose into a single pass.
			inv[c][r] = m.Cofactor(r, c) / det
		}
	}
	return inv
}

// Submatrix returns the 2x2 matrix left after deleting the given row
// and column
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var sub Matrix2
	sr := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		sc := 0
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			sub[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return sub
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m Matrix3) Determinant() float64 {
	var det float64
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Determinant of a 2x2 matrix
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
