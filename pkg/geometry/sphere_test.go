package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Intersect_DirectHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, core.Matte(core.White(), 0.8))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	// Sphere at distance 5 with radius 1: entry point at t = 4
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if !vecsAlmostEqual(hit.Point, core.NewVec3(0, 0, 4)) {
		t.Errorf("Expected point (0,0,4), got %v", hit.Point)
	}
	if !vecsAlmostEqual(hit.Normal, core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected outward normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, core.Matte(core.White(), 0.8))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if _, ok := sphere.Intersect(ray); ok {
		t.Error("Expected miss for perpendicular ray")
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, core.Glass(0.9))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit from inside the sphere")
	}

	// Smaller root is negative, so the larger positive root is taken
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	// Normal stays outward even when hit from inside
	if !vecsAlmostEqual(hit.Normal, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected outward normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphere_Intersect_Behind(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, core.Matte(core.White(), 0.8))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if _, ok := sphere.Intersect(ray); ok {
		t.Error("Expected miss for sphere behind the ray origin")
	}
}

func TestSphere_Intersect_CarriesMaterial(t *testing.T) {
	mat := core.Matte(core.Red(), 0.5)
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Material != mat {
		t.Errorf("Expected hit to carry the sphere's material, got %+v", hit.Material)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.Matte(core.White(), 0.8))
	if got := sphere.NormalAt(core.NewVec3(1, 0, 0)); !vecsAlmostEqual(got, core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected (1,0,0), got %v", got)
	}
}

func TestSphere_Contains(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.Matte(core.White(), 0.8))

	if !sphere.Contains(core.NewVec3(0, 0, 0)) {
		t.Error("Expected center to be contained")
	}
	if !sphere.Contains(core.NewVec3(0.5, 0, 0)) {
		t.Error("Expected interior point to be contained")
	}
	if sphere.Contains(core.NewVec3(2, 0, 0)) {
		t.Error("Expected exterior point to not be contained")
	}
}

func TestSphere_SurfaceAreaAndVolume(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.Matte(core.White(), 0.8))

	if got := sphere.SurfaceArea(); math.Abs(got-4*math.Pi) > 1e-9 {
		t.Errorf("Expected surface area 4π, got %f", got)
	}
	if got := sphere.Volume(); math.Abs(got-4.0/3.0*math.Pi) > 1e-9 {
		t.Errorf("Expected volume 4π/3, got %f", got)
	}
}
