package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ToneMapper converts unbounded HDR colors into display range [0, 1]
type ToneMapper interface {
	Map(c core.Color) core.Color
}

// Reinhard is simple global tone mapping: x / (1 + x) per channel.
// Compresses very bright values logarithmically.
type Reinhard struct {
	Exposure float64
}

// NewReinhard creates a Reinhard tone mapper
func NewReinhard(exposure float64) *Reinhard {
	return &Reinhard{Exposure: exposure}
}

func (r *Reinhard) Map(c core.Color) core.Color {
	adjusted := c.Scale(r.Exposure)
	return core.NewColor(
		adjusted.R/(1+adjusted.R),
		adjusted.G/(1+adjusted.G),
		adjusted.B/(1+adjusted.B),
	)
}

// Exposure is linear scaling with clamping and gamma correction:
// clamp(x * exposure, 0, 1)^(1/gamma)
type Exposure struct {
	Exposure float64
	Gamma    float64
}

// NewExposure creates an Exposure tone mapper with the standard display
// gamma of 2.2
func NewExposure(exposure float64) *Exposure {
	return &Exposure{Exposure: exposure, Gamma: 2.2}
}

func (e *Exposure) Map(c core.Color) core.Color {
	adjusted := c.Scale(e.Exposure).Clamp(0, 1)
	invGamma := 1.0 / e.Gamma
	return core.NewColor(
		math.Pow(adjusted.R, invGamma),
		math.Pow(adjusted.G, invGamma),
		math.Pow(adjusted.B, invGamma),
	)
}

// ACESFilmic is the Narkowicz fit of the ACES filmic curve, widely used for
// its contrast and highlight rolloff.
type ACESFilmic struct{}

// NewACESFilmic creates an ACES filmic tone mapper
func NewACESFilmic() *ACESFilmic {
	return &ACESFilmic{}
}

func acesCurve(x float64) float64 {
	const (
		a = 2.51
		b = 0.03
		c = 2.43
		d = 0.59
		e = 0.14
	)
	mapped := (x * (a*x + b)) / (x*(c*x+d) + e)
	return math.Max(0, math.Min(1, mapped))
}

func (ACESFilmic) Map(c core.Color) core.Color {
	return core.NewColor(acesCurve(c.R), acesCurve(c.G), acesCurve(c.B))
}

// NewToneMapper builds a tone mapper by name: "reinhard", "exposure" or
// "aces". The exposure parameter is ignored by the ACES curve.
func NewToneMapper(name string, exposure float64) (ToneMapper, error) {
	switch name {
	case "reinhard":
		return NewReinhard(exposure), nil
	case "exposure":
		return NewExposure(exposure), nil
	case "aces":
		return NewACESFilmic(), nil
	default:
		return nil, fmt.Errorf("unknown tone mapper %q", name)
	}
}
