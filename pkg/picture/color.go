package picture

import (
	"math"

	"github.com/rsantiago/ruxgo/pkg/geometry"
)

// ColorRgb represents a color as red, green and blue intensities.
// Components are free-ranging floats; clamping to a displayable range
// is the image writer's concern, not the kernel's.
type ColorRgb struct {
	R, G, B float64
}

// NewColorRgb creates a new color
func NewColorRgb(r, g, b float64) ColorRgb {
	return ColorRgb{R: r, G: g, B: b}
}

// Red returns pure red
func Red() ColorRgb {
	return ColorRgb{R: 1}
}

// Green returns pure green
func Green() ColorRgb {
	return ColorRgb{G: 1}
}

// Blue returns pure blue
func Blue() ColorRgb {
	return ColorRgb{B: 1}
}

// Black returns black
func Black() ColorRgb {
	return ColorRgb{}
}

// White returns white
func White() ColorRgb {
	return ColorRgb{R: 1, G: 1, B: 1}
}

// Add returns the sum of two colors
func (c ColorRgb) Add(other ColorRgb) ColorRgb {
	return ColorRgb{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c ColorRgb) Subtract(other ColorRgb) ColorRgb {
	return ColorRgb{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c ColorRgb) Multiply(scalar float64) ColorRgb {
	return ColorRgb{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the component-wise (Hadamard) product of two colors
func (c ColorRgb) Blend(other ColorRgb) ColorRgb {
	return ColorRgb{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal reports whether two colors match within the kernel tolerance on
// every component
func (c ColorRgb) Equal(other ColorRgb) bool {
	return math.Abs(c.R-other.R) < geometry.Epsilon &&
		math.Abs(c.G-other.G) < geometry.Epsilon &&
		math.Abs(c.B-other.B) < geometry.Epsilon
}
