package geometry

// Ray represents a ray with an origin and direction. The direction is
// not required to be normalized; an unnormalized direction changes the
// meaning of the parameter t.
type Ray struct {
	Origin    Point3
	Direction Vector3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray. Negative t
// evaluates behind the origin.
func (r Ray) Position(t float64) Point3 {
	return r.Origin.AddVector(r.Direction.Multiply(t))
}

// Transform applies a matrix to the ray's origin and direction
// independently, returning a new ray. The direction is not
// renormalized.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyPoint(r.Origin),
		Direction: m.MultiplyVector(r.Direction),
	}
}
