package shapes

// Intersection records where along a ray a shape was struck. Ordering
// and equality of intersections are defined purely on T; the object is
// carried opaquely.
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections aggregates intersections into a slice
func Intersections(xs ...Intersection) []Intersection {
	return xs
}

// Hit returns the nearest visible intersection: the entry with the
// minimum nonnegative T. The second return value is false when no entry
// has T >= 0, which is a normal outcome rather than an error. A NaN T
// fails both comparisons and is never selected. On an exact tie the
// first entry encountered wins, but callers must not rely on object
// identity under ties.
func Hit(xs []Intersection) (Intersection, bool) {
	var nearest Intersection
	found := false
	for _, x := range xs {
		if x.T >= 0 && (!found || x.T < nearest.T) {
			nearest = x
			found = true
		}
	}
	return nearest, found
}
