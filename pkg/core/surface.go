package core

// Intersection holds the result of a ray-surface intersection query.
// The normal is the surface's geometric normal and is not guaranteed to face
// the incident ray; callers establish orientation from the ray direction.
// The material is a copy of the hit surface's material, never shared.
type Intersection struct {
	T        float64 // Distance from ray origin along the ray
	Point    Vec3    // World-space intersection point
	Normal   Vec3    // Geometric surface normal at the point
	Material Material
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, point, normal Vec3, material Material) Intersection {
	return Intersection{T: t, Point: point, Normal: normal, Material: material}
}

// Surface is the capability pair the transport engine needs from scene
// geometry: a closest-hit query and a material.
type Surface interface {
	// Intersect returns the closest intersection of the ray with this
	// surface, or false if the ray misses.
	Intersect(ray Ray) (Intersection, bool)

	// Material returns the material of this surface.
	Material() Material
}
