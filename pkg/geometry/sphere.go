package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is a surface defined by a center position and radius
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: material}
}

// Intersect solves the quadratic ||O + tD - C||^2 = r^2 and returns the
// closest intersection in front of the ray origin, preferring the smaller
// positive root. The normal always points outward from the center.
func (s *Sphere) Intersect(ray core.Ray) (core.Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)
	d := ray.Direction

	// Quadratic coefficients: a*t^2 + b*t + c = 0
	a := d.Dot(d)
	b := 2.0 * oc.Dot(d)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Smaller positive root first, then the larger
	var t float64
	switch {
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return core.Intersection{}, false
	}

	point := ray.At(t)
	return core.NewIntersection(t, point, s.NormalAt(point), s.Mat), true
}

// Material returns the material of this sphere
func (s *Sphere) Material() core.Material {
	return s.Mat
}

// NormalAt returns the outward surface normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Contains reports whether a point lies inside or on the sphere
func (s *Sphere) Contains(point core.Vec3) bool {
	return point.Subtract(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// SurfaceArea returns the surface area of the sphere
func (s *Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Volume returns the volume of the sphere
func (s *Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}
