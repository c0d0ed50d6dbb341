package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Light is a spherical emitter. It plays two roles in transport: it is the
// target for direct lighting and shadow rays, and it is itself intersectable
// so a ray that reaches it before any surface sees its emission directly.
type Light struct {
	Center   core.Vec3
	Radius   float64
	Emission core.Color
}

// NewLight creates a new spherical light
func NewLight(center core.Vec3, radius float64, emission core.Color) Light {
	return Light{Center: center, Radius: radius, Emission: emission}
}

// Intersect solves the same sphere quadratic as geometry.Sphere. The
// returned intersection carries an all-zero dummy material: lights are not
// shaded surfaces, only flat emissive discs when hit directly.
func (l Light) Intersect(ray core.Ray) (core.Intersection, bool) {
	oc := ray.Origin.Subtract(l.Center)
	d := ray.Direction

	a := d.Dot(d)
	b := 2.0 * oc.Dot(d)
	c := oc.Dot(oc) - l.Radius*l.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

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
	dummy := core.NewMaterial(core.Black(), 0, 0, 0, 1, core.Black())
	return core.NewIntersection(t, point, l.NormalAt(point), dummy), true
}

// NormalAt returns the outward surface normal at a point on the light sphere
func (l Light) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(l.Center).Normalize()
}

// Contains reports whether a point lies inside or on the light sphere
func (l Light) Contains(point core.Vec3) bool {
	return point.Subtract(l.Center).LengthSquared() <= l.Radius*l.Radius
}

// SurfaceArea returns the surface area of the light sphere
func (l Light) SurfaceArea() float64 {
	return 4 * math.Pi * l.Radius * l.Radius
}

// LuminousFlux returns the total emitted power of the light, computed as
// mean emission times surface area. Informational only; the transport loop
// does not use it.
func (l Light) LuminousFlux() float64 {
	meanEmission := (l.Emission.R + l.Emission.G + l.Emission.B) / 3.0
	return meanEmission * l.SurfaceArea()
}
