package shapes

import "github.com/rsantiago/ruxgo/pkg/geometry"

// Shape is the contract every concrete shape satisfies. A shape owns an
// id, a name, an origin, and a transform mapping its object space into
// world space. Intersect expects a world-space ray; bringing it into
// object space via the inverse transform happens inside the
// implementation.
type Shape interface {
	ID() int
	Name() string
	Origin() geometry.Point3
	Transform() geometry.Matrix4
	SetTransform(m geometry.Matrix4)
	Intersect(ray geometry.Ray) []Intersection
}
