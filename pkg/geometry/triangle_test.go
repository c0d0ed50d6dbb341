package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func unitTriangle() *Triangle {
	return NewTriangle(
		core.NewVec3(0, 0, 5),
		core.NewVec3(1, 0, 5),
		core.NewVec3(0, 1, 5),
		core.Matte(core.White(), 0.8),
	)
}

func TestTriangle_Intersect_Hit(t *testing.T) {
	tri := unitTriangle()
	ray := core.NewRay(core.NewVec3(0.2, 0.2, 0), core.NewVec3(0, 0, 1))

	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.T-5.0) > 1e-9 {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	if !vecsAlmostEqual(hit.Normal, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected face normal (0,0,1), got %v", hit.Normal)
	}
}

func TestTriangle_Intersect_BarycentricBounds(t *testing.T) {
	tri := unitTriangle()

	tests := []struct {
		name   string
		origin core.Vec3
		want   bool
	}{
		{"inside near v0", core.NewVec3(0.1, 0.1, 0), true},
		{"on hypotenuse side out", core.NewVec3(0.6, 0.6, 0), false},
		{"u out of range", core.NewVec3(1.5, 0.1, 0), false},
		{"v out of range", core.NewVec3(0.1, 1.5, 0), false},
		{"negative u", core.NewVec3(-0.1, 0.5, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, 1))
			if _, ok := tri.Intersect(ray); ok != tt.want {
				t.Errorf("Expected hit=%t, got %t", tt.want, ok)
			}
		})
	}
}

func TestTriangle_Intersect_ParallelRay(t *testing.T) {
	tri := unitTriangle()
	// Ray travels within the triangle's plane: determinant is ~0
	ray := core.NewRay(core.NewVec3(-1, 0.25, 5), core.NewVec3(1, 0, 0))

	if _, ok := tri.Intersect(ray); ok {
		t.Error("Expected miss for ray parallel to the triangle plane")
	}
}

func TestTriangle_Intersect_Behind(t *testing.T) {
	tri := unitTriangle()
	ray := core.NewRay(core.NewVec3(0.2, 0.2, 10), core.NewVec3(0, 0, 1))

	if _, ok := tri.Intersect(ray); ok {
		t.Error("Expected miss for triangle behind the ray origin")
	}
}

func TestTriangle_Intersect_DirectionScaleInvariant(t *testing.T) {
	tri := unitTriangle()
	origin := core.NewVec3(0.2, 0.2, 0)

	// Ray directions are normalized at construction, so scaling the
	// supplied direction must not change the hit point
	base, ok := tri.Intersect(core.NewRay(origin, core.NewVec3(0, 0, 1)))
	if !ok {
		t.Fatal("Expected hit with unit direction")
	}
	scaled, ok := tri.Intersect(core.NewRay(origin, core.NewVec3(0, 0, 250)))
	if !ok {
		t.Fatal("Expected hit with scaled direction")
	}

	if !vecsAlmostEqual(base.Point, scaled.Point) {
		t.Errorf("Expected identical hit points, got %v and %v", base.Point, scaled.Point)
	}
	if math.Abs(base.T-scaled.T) > 1e-9 {
		t.Errorf("Expected identical t, got %f and %f", base.T, scaled.T)
	}
}

func TestTriangle_NormalFixedByWindingOrder(t *testing.T) {
	ccw := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.Matte(core.White(), 0.8))
	cw := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.Matte(core.White(), 0.8))

	if !vecsAlmostEqual(ccw.Normal(), core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected (0,0,1), got %v", ccw.Normal())
	}
	if !vecsAlmostEqual(cw.Normal(), core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected (0,0,-1), got %v", cw.Normal())
	}

	// The normal is not flipped toward the ray: a ray from behind sees
	// the same face normal
	ray := core.NewRay(core.NewVec3(0.2, 0.2, 5), core.NewVec3(0, 0, -1))
	hit, ok := ccw.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !vecsAlmostEqual(hit.Normal, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected unflipped normal (0,0,1), got %v", hit.Normal)
	}
}

func TestTriangle_AreaAndCentroid(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), core.Matte(core.White(), 0.8))

	if got := tri.Area(); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Expected area 2, got %f", got)
	}

	tri2 := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(3, 0, 0), core.NewVec3(0, 3, 0), core.Matte(core.White(), 0.8))
	if got := tri2.Centroid(); !vecsAlmostEqual(got, core.NewVec3(1, 1, 0)) {
		t.Errorf("Expected centroid (1,1,0), got %v", got)
	}
}

func TestTriangle_Contains(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.Matte(core.White(), 0.8))

	if !tri.Contains(core.NewVec3(0.25, 0.25, 0)) {
		t.Error("Expected interior point to be contained")
	}
	if tri.Contains(core.NewVec3(0.75, 0.75, 0)) {
		t.Error("Expected exterior point to not be contained")
	}
}

func TestTriangle_Bounds(t *testing.T) {
	tri := NewTriangle(core.NewVec3(-1, 0, 2), core.NewVec3(1, 3, 0), core.NewVec3(0, -2, 5), core.Matte(core.White(), 0.8))

	minCorner, maxCorner := tri.Bounds()
	if !vecsAlmostEqual(minCorner, core.NewVec3(-1, -2, 0)) {
		t.Errorf("Expected min corner (-1,-2,0), got %v", minCorner)
	}
	if !vecsAlmostEqual(maxCorner, core.NewVec3(1, 3, 5)) {
		t.Errorf("Expected max corner (1,3,5), got %v", maxCorner)
	}
}
