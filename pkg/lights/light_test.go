package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestLight_Intersect_DirectHit(t *testing.T) {
	light := NewLight(core.NewVec3(0, 0, 5), 1.0, core.White())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := light.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
}

func TestLight_Intersect_Miss(t *testing.T) {
	light := NewLight(core.NewVec3(0, 0, 5), 1.0, core.White())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if _, ok := light.Intersect(ray); ok {
		t.Error("Expected miss for perpendicular ray")
	}
}

func TestLight_Intersect_DummyMaterial(t *testing.T) {
	light := NewLight(core.NewVec3(0, 0, 5), 1.0, core.NewColor(10, 10, 10))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := light.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit")
	}

	// Lights are not shaded surfaces: the material must be inert
	m := hit.Material
	if m.Albedo != core.Black() || m.DiffuseRate != 0 || m.SpecularRate != 0 || m.TransmissionRate != 0 {
		t.Errorf("Expected zero dummy material, got %+v", m)
	}
}

func TestLight_NormalAt(t *testing.T) {
	light := NewLight(core.NewVec3(0, 0, 0), 1.0, core.White())
	got := light.NormalAt(core.NewVec3(1, 0, 0))
	if math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y) > 1e-9 || math.Abs(got.Z) > 1e-9 {
		t.Errorf("Expected (1,0,0), got %v", got)
	}
}

func TestLight_Contains(t *testing.T) {
	light := NewLight(core.NewVec3(0, 0, 0), 1.0, core.White())

	if !light.Contains(core.NewVec3(0.5, 0, 0)) {
		t.Error("Expected interior point to be contained")
	}
	if light.Contains(core.NewVec3(2, 0, 0)) {
		t.Error("Expected exterior point to not be contained")
	}
}

func TestLight_SurfaceAreaAndFlux(t *testing.T) {
	light := NewLight(core.NewVec3(0, 0, 0), 1.0, core.White())

	if got := light.SurfaceArea(); math.Abs(got-4*math.Pi) > 1e-9 {
		t.Errorf("Expected surface area 4π, got %f", got)
	}
	// Mean emission of white is 1, so flux equals the surface area
	if got := light.LuminousFlux(); math.Abs(got-4*math.Pi) > 1e-9 {
		t.Errorf("Expected flux 4π, got %f", got)
	}
}
