package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func vecsAlmostEqual(a, b core.Vec3) bool {
	const tolerance = 1e-9
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}
