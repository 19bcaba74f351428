package geometry

import "math"

// Epsilon is the tolerance used for approximate equality of tuples and
// matrices. Chained transforms accumulate rounding error from trig and
// division; comparisons within the kernel absorb it up to this bound.
const Epsilon = 1e-4

// Vector3 represents a free 3D vector in homogeneous coordinates.
// Its weight component is implicitly 0, so translations never affect it.
type Vector3 struct {
	X, Y, Z float64
}

// Point3 represents an affine position in homogeneous coordinates.
// W is 1 for a freshly constructed point; matrix application and scalar
// multiplication may leave an arbitrary weight, which is never
// re-normalized automatically.
type Point3 struct {
	X, Y, Z, W float64
}

// NewVector3 creates a new Vector3
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewPoint3 creates a new Point3 with weight 1
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z, W: 1}
}

// ZeroVector returns the zero vector
func ZeroVector() Vector3 {
	return Vector3{}
}

// OneVector returns the vector (1, 1, 1)
func OneVector() Vector3 {
	return Vector3{X: 1, Y: 1, Z: 1}
}

// ZeroPoint returns the world origin
func ZeroPoint() Point3 {
	return Point3{W: 1}
}

// OnePoint returns the point (1, 1, 1)
func OnePoint() Point3 {
	return Point3{X: 1, Y: 1, Z: 1, W: 1}
}

// Up returns the +Y unit vector
func Up() Vector3 {
	return Vector3{Y: 1}
}

// Down returns the -Y unit vector
func Down() Vector3 {
	return Vector3{Y: -1}
}

// Right returns the +X unit vector
func Right() Vector3 {
	return Vector3{X: 1}
}

// Left returns the -X unit vector
func Left() Vector3 {
	return Vector3{X: -1}
}

// Forward returns the +Z unit vector
func Forward() Vector3 {
	return Vector3{Z: 1}
}

// Back returns the -Z unit vector
func Back() Vector3 {
	return Vector3{Z: -1}
}

// ToPoint reinterprets the vector as a position (weight 1)
func (v Vector3) ToPoint() Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

// ToVector drops the point's weight, yielding a free vector
func (p Point3) ToVector() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector3) Subtract(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector3) Multiply(scalar float64) Vector3 {
	return Vector3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vector3) Divide(scalar float64) Vector3 {
	return Vector3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns the negative of the vector
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

// Equal reports whether two vectors match within Epsilon on every component
func (v Vector3) Equal(other Vector3) bool {
	return math.Abs(v.X-other.X) < Epsilon &&
		math.Abs(v.Y-other.Y) < Epsilon &&
		math.Abs(v.Z-other.Z) < Epsilon
}

// AddVector returns the point translated by a vector
func (p Point3) AddVector(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z, p.W}
}

// Subtract returns the vector from another point to this one
func (p Point3) Subtract(other Point3) Vector3 {
	return Vector3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVector returns the point translated by the negated vector
func (p Point3) SubtractVector(v Vector3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z, p.W}
}

// Multiply returns the point scaled by a scalar. The weight scales too;
// matrix-multiply composition depends on this.
func (p Point3) Multiply(scalar float64) Point3 {
	return Point3{p.X * scalar, p.Y * scalar, p.Z * scalar, p.W * scalar}
}

// Divide returns the point with x, y, z divided by a scalar. The weight
// is untouched.
func (p Point3) Divide(scalar float64) Point3 {
	return Point3{p.X / scalar, p.Y / scalar, p.Z / scalar, p.W}
}

// Negate returns the point with x, y, z negated. The weight is untouched.
func (p Point3) Negate() Point3 {
	return Point3{-p.X, -p.Y, -p.Z, p.W}
}

// Equal reports whether two points match within Epsilon on every
// component, weight included
func (p Point3) Equal(other Point3) bool {
	return math.Abs(p.X-other.X) < Epsilon &&
		math.Abs(p.Y-other.Y) < Epsilon &&
		math.Abs(p.Z-other.Z) < Epsilon &&
		math.Abs(p.W-other.W) < Epsilon
}
