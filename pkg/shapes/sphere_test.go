package shapes

import (
	"math"
	"testing"

	"github.com/rsantiago/ruxgo/pkg/geometry"
)

func TestSphere_New(t *testing.T) {
	s := NewSphere(7)

	if s.ID() != 7 {
		t.Errorf("Expected id 7, got %d", s.ID())
	}
	if s.Name() != "sphere" {
		t.Errorf("Expected name \"sphere\", got %q", s.Name())
	}
	if !s.Origin().Equal(geometry.ZeroPoint()) {
		t.Errorf("Expected origin at the world origin, got %v", s.Origin())
	}
	if !s.Transform().Equal(geometry.IdentityMatrix()) {
		t.Errorf("Expected identity transform, got %v", s.Transform())
	}
}

func TestSphere_SetTransform(t *testing.T) {
	s := NewSphere(1)
	m := geometry.IdentityMatrix()
	m.Translate(2, 3, 4)

	s.SetTransform(m)
	if !s.Transform().Equal(m) {
		t.Errorf("Expected transform %v, got %v", m, s.Transform())
	}
}

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    geometry.Point3
		direction geometry.Vector3
		expected  []float64
	}{
		{
			name:      "through the center",
			origin:    geometry.NewPoint3(0, 0, -5),
			direction: geometry.Forward(),
			expected:  []float64{4, 6},
		},
		{
			name:      "tangent yields two coincident intersections",
			origin:    geometry.NewPoint3(0, 1, -5),
			direction: geometry.Forward(),
			expected:  []float64{5, 5},
		},
		{
			name:      "miss",
			origin:    geometry.NewPoint3(0, 2, -5),
			direction: geometry.Forward(),
			expected:  nil,
		},
		{
			name:      "ray inside the sphere",
			origin:    geometry.ZeroPoint(),
			direction: geometry.Forward(),
			expected:  []float64{-1, 1},
		},
		{
			name:      "sphere behind the ray",
			origin:    geometry.NewPoint3(0, 0, 5),
			direction: geometry.Forward(),
			expected:  []float64{-6, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere(1)
			ray := geometry.NewRay(tt.origin, tt.direction)

			xs := s.Intersect(ray)
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, want := range tt.expected {
				if math.Abs(xs[i].T-want) > 1e-9 {
					t.Errorf("Expected t[%d]=%v, got %v", i, want, xs[i].T)
				}
			}
		})
	}
}

func TestSphere_IntersectTagsObject(t *testing.T) {
	s := NewSphere(3)
	ray := geometry.NewRay(geometry.NewPoint3(0, 0, -5), geometry.Forward())

	xs := s.Intersect(ray)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	for i, x := range xs {
		if x.Object != Shape(s) {
			t.Errorf("Expected intersection %d to carry the sphere, got %v", i, x.Object)
		}
	}
}

func TestSphere_IntersectScaled(t *testing.T) {
	s := NewSphere(1)
	m := geometry.IdentityMatrix()
	m.Scale(2, 2, 2)
	s.SetTransform(m)

	ray := geometry.NewRay(geometry.NewPoint3(0, 0, -5), geometry.Forward())
	xs := s.Intersect(ray)

	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	if math.Abs(xs[0].T-3) > 1e-9 || math.Abs(xs[1].T-7) > 1e-9 {
		t.Errorf("Expected t values 3 and 7, got %v and %v", xs[0].T, xs[1].T)
	}
}

func TestSphere_IntersectTranslated(t *testing.T) {
	s := NewSphere(1)
	m := geometry.IdentityMatrix()
	m.Translate(5, 0, 0)
	s.SetTransform(m)

	ray := geometry.NewRay(geometry.NewPoint3(0, 0, -5), geometry.Forward())
	if xs := s.Intersect(ray); len(xs) != 0 {
		t.Errorf("Expected miss against the translated sphere, got %d intersections", len(xs))
	}
}

// NaN coordinates flow through the quadratic unchanged and produce NaN
// t values, which Hit then refuses to select.
func TestSphere_IntersectNaNPropagates(t *testing.T) {
	s := NewSphere(1)
	ray := geometry.NewRay(geometry.NewPoint3(math.NaN(), 0, -5), geometry.Forward())

	xs := s.Intersect(ray)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	if !math.IsNaN(xs[0].T) || !math.IsNaN(xs[1].T) {
		t.Errorf("Expected NaN t values, got %v and %v", xs[0].T, xs[1].T)
	}
	if _, ok := Hit(xs); ok {
		t.Error("Expected no visible hit from NaN intersections")
	}
}

// The hit of a world-space ray against a transformed sphere goes
// through the inverse transform implicitly.
func TestSphere_IntersectThenHit(t *testing.T) {
	s := NewSphere(1)
	ray := geometry.NewRay(geometry.NewPoint3(0, 0, -5), geometry.Forward())

	hit, ok := Hit(s.Intersect(ray))
	if !ok {
		t.Fatal("Expected a visible hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected nearest visible hit at t=4, got %v", hit.T)
	}

	// Evaluating the ray at the hit lands on the sphere surface.
	p := ray.Position(hit.T)
	if !p.Equal(geometry.NewPoint3(0, 0, -1)) {
		t.Errorf("Expected surface point (0,0,-1), got %v", p)
	}
}
