package shapes

import (
	"math"

	"github.com/rsantiago/ruxgo/pkg/geometry"
)

// Sphere is the unit sphere: centered at the object-space origin with
// radius 1. Position, orientation and radius in world space are
// expressed entirely through the transform.
type Sphere struct {
	id        int
	name      string
	origin    geometry.Point3
	transform geometry.Matrix4
}

// NewSphere creates a sphere with the given id at the world origin with
// an identity transform
func NewSphere(id int) *Sphere {
	return &Sphere{
		id:        id,
		name:      "sphere",
		origin:    geometry.ZeroPoint(),
		transform: geometry.IdentityMatrix(),
	}
}

// ID returns the sphere's id
func (s *Sphere) ID() int {
	return s.id
}

// Name returns the sphere's name
func (s *Sphere) Name() string {
	return s.name
}

// Origin returns the sphere's origin
func (s *Sphere) Origin() geometry.Point3 {
	return s.origin
}

// Transform returns the sphere's object-to-world transform
func (s *Sphere) Transform() geometry.Matrix4 {
	return s.transform
}

// SetTransform replaces the sphere's object-to-world transform
func (s *Sphere) SetTransform(m geometry.Matrix4) {
	s.transform = m
}

// Intersect tests a world-space ray against the sphere and returns the
// intersections along it. A miss returns an empty slice. A tangent ray
// returns two coincident intersections, so a non-empty result always
// holds exactly two entries with t1 <= t2.
func (s *Sphere) Intersect(ray geometry.Ray) []Intersection {
	// Bring the ray into object space, where the sphere is the unit
	// sphere at the origin.
	r := ray.Transform(s.transform.Inverse())

	sphereToRay := r.Origin.Subtract(geometry.ZeroPoint())

	// Quadratic coefficients: at² + bt + c = 0
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return []Intersection{}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections(
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	)
}
