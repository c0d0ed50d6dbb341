package core

import "math"

// Color represents a linear RGB color. Channel values are unbounded above 1.0
// so the renderer can carry HDR light energy; tone mapping brings them back
// into display range.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color from RGB components
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors
func Black() Color { return Color{0, 0, 0} }
func White() Color { return Color{1, 1, 1} }
func Red() Color   { return Color{1, 0, 0} }
func Green() Color { return Color{0, 1, 0} }
func Blue() Color  { return Color{0, 0, 1} }

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Mul returns the component-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Luminance returns the perceptual luminance of the color
// using standard weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Clamp returns a color with channels clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: math.Max(minVal, math.Min(maxVal, c.R)),
		G: math.Max(minVal, math.Min(maxVal, c.G)),
		B: math.Max(minVal, math.Min(maxVal, c.B)),
	}
}
