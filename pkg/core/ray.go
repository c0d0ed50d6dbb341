package core

// Ray represents a ray with an origin and direction.
// The direction is normalized at construction time, so every consumer
// may assume unit length. A zero-length direction is a caller contract
// violation and stays zero.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray with a normalized direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
