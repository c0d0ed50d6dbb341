package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Determinants smaller than this are treated as a parallel or degenerate ray
const detEpsilon = 1e-8

// Triangle is a surface defined by three vertices. The face normal is fixed
// by the vertex winding order and never flipped toward the ray.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Mat        core.Material
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, Mat: material}
}

// Intersect tests the ray against the triangle using the Möller-Trumbore
// algorithm. Hits behind the origin (t <= 0) and barycentric coordinates
// outside the triangle are rejected.
func (tr *Triangle) Intersect(ray core.Ray) (core.Intersection, bool) {
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < detEpsilon {
		return core.Intersection{}, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(tr.V0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return core.Intersection{}, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return core.Intersection{}, false
	}

	t := invDet * edge2.Dot(q)
	if t <= 0 {
		return core.Intersection{}, false
	}

	return core.NewIntersection(t, ray.At(t), tr.Normal(), tr.Mat), true
}

// Material returns the material of this triangle
func (tr *Triangle) Material() core.Material {
	return tr.Mat
}

// NormalUnnormalized returns the cross product of the two edges.
// Faster than Normal when only the direction matters.
func (tr *Triangle) NormalUnnormalized() core.Vec3 {
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)
	return edge1.Cross(edge2)
}

// Normal returns the normalized face normal, fixed by vertex winding order
func (tr *Triangle) Normal() core.Vec3 {
	return tr.NormalUnnormalized().Normalize()
}

// Area returns the area of the triangle: 0.5 * ||(v1-v0) x (v2-v0)||
func (tr *Triangle) Area() float64 {
	return tr.NormalUnnormalized().Length() * 0.5
}

// Centroid returns the geometric center of the triangle
func (tr *Triangle) Centroid() core.Vec3 {
	return tr.V0.Add(tr.V1).Add(tr.V2).Multiply(1.0 / 3.0)
}

// Contains reports whether a point on the triangle's plane lies within its
// bounds, using the edge-sign test.
func (tr *Triangle) Contains(point core.Vec3) bool {
	normal := tr.Normal()

	d0 := tr.V1.Subtract(tr.V0).Cross(point.Subtract(tr.V0)).Dot(normal)
	d1 := tr.V2.Subtract(tr.V1).Cross(point.Subtract(tr.V1)).Dot(normal)
	d2 := tr.V0.Subtract(tr.V2).Cross(point.Subtract(tr.V2)).Dot(normal)

	return (d0 >= 0 && d1 >= 0 && d2 >= 0) || (d0 <= 0 && d1 <= 0 && d2 <= 0)
}

// Bounds returns the min and max corners of the triangle's axis-aligned
// bounding box. Used by scene setup, not by the tracer.
func (tr *Triangle) Bounds() (core.Vec3, core.Vec3) {
	minCorner := core.NewVec3(
		math.Min(tr.V0.X, math.Min(tr.V1.X, tr.V2.X)),
		math.Min(tr.V0.Y, math.Min(tr.V1.Y, tr.V2.Y)),
		math.Min(tr.V0.Z, math.Min(tr.V1.Z, tr.V2.Z)),
	)
	maxCorner := core.NewVec3(
		math.Max(tr.V0.X, math.Max(tr.V1.X, tr.V2.X)),
		math.Max(tr.V0.Y, math.Max(tr.V1.Y, tr.V2.Y)),
		math.Max(tr.V0.Z, math.Max(tr.V1.Z, tr.V2.Z)),
	)
	return minCorner, maxCorner
}
