package core

import (
	"math"
	"testing"
)

func colorsAlmostEqual(a, b Color) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance
}

func TestColor_Constants(t *testing.T) {
	if Black() != NewColor(0, 0, 0) {
		t.Errorf("Black: got %v", Black())
	}
	if White() != NewColor(1, 1, 1) {
		t.Errorf("White: got %v", White())
	}
	if Red() != NewColor(1, 0, 0) {
		t.Errorf("Red: got %v", Red())
	}
	if Green() != NewColor(0, 1, 0) {
		t.Errorf("Green: got %v", Green())
	}
	if Blue() != NewColor(0, 0, 1) {
		t.Errorf("Blue: got %v", Blue())
	}
}

func TestColor_Arithmetic(t *testing.T) {
	a := NewColor(0.3, 0.4, 0.5)
	b := NewColor(0.1, 0.2, 0.3)

	// Sums like 0.4+0.2 do not land exactly on their decimal literals
	if got := a.Add(b); !colorsAlmostEqual(got, NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Add: expected (0.4,0.6,0.8), got %v", got)
	}
	if got := NewColor(0.5, 0.6, 0.7).Scale(2); !colorsAlmostEqual(got, NewColor(1.0, 1.2, 1.4)) {
		t.Errorf("Scale: expected (1.0,1.2,1.4), got %v", got)
	}
	if got := NewColor(0.5, 0.6, 0.8).Mul(NewColor(0.2, 0.5, 0.5)); !colorsAlmostEqual(got, NewColor(0.1, 0.3, 0.4)) {
		t.Errorf("Mul: expected (0.1,0.3,0.4), got %v", got)
	}
}

func TestColor_HDRValuesUnbounded(t *testing.T) {
	// HDR colors may exceed 1.0 per channel and combine without clamping
	bright := NewColor(5, 10, 20)
	sum := bright.Add(bright)
	if sum != NewColor(10, 20, 40) {
		t.Errorf("Expected unclamped HDR sum, got %v", sum)
	}
}

func TestColor_Luminance(t *testing.T) {
	if got := White().Luminance(); math.Abs(got-1.0) > tolerance {
		t.Errorf("White luminance: expected 1.0, got %f", got)
	}
	if got := Black().Luminance(); got != 0 {
		t.Errorf("Black luminance: expected 0, got %f", got)
	}
	// Green dominates perceptual luminance
	if Green().Luminance() <= Red().Luminance() || Red().Luminance() <= Blue().Luminance() {
		t.Error("Expected luminance ordering G > R > B")
	}
}

func TestColor_Clamp(t *testing.T) {
	c := NewColor(-0.5, 0.5, 2.0)
	if got := c.Clamp(0, 1); got != NewColor(0, 0.5, 1) {
		t.Errorf("Clamp: expected (0,0.5,1), got %v", got)
	}
}
