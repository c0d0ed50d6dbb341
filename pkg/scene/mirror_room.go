package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// MirrorRoom builds two facing perfect mirrors over a matte floor. Rays
// bounce between the mirrors until the depth limit cuts them off, which
// makes the depth-termination behavior directly visible.
func MirrorRoom(width, height, subdivisions int) *Scene {
	camera := renderer.NewCamera(
		core.NewVec3(0, 2, 10),
		core.NewVec3(0, -0.15, -1),
		core.NewVec3(0, 1, 0),
		60,
		width, height, subdivisions,
	)

	s := NewScene("mirror-room", camera)
	s.Background = core.NewColor(0.02, 0.02, 0.03)

	s.AddSurface(geometry.NewSphere(core.NewVec3(-6, 3, 0), 3.0, core.PerfectMirror()))
	s.AddSurface(geometry.NewSphere(core.NewVec3(6, 3, 0), 3.0, core.PerfectMirror()))

	floor := core.Matte(core.NewColor(0.8, 0.8, 0.8), 0.7)
	s.AddSurface(geometry.NewTriangle(
		core.NewVec3(-20, 0, 20),
		core.NewVec3(20, 0, 20),
		core.NewVec3(20, 0, -20),
		floor,
	))
	s.AddSurface(geometry.NewTriangle(
		core.NewVec3(-20, 0, 20),
		core.NewVec3(20, 0, -20),
		core.NewVec3(-20, 0, -20),
		floor,
	))

	s.AddLight(lights.NewLight(core.NewVec3(0, 12, 2), 2.0, core.NewColor(8, 8, 7.5)))

	return s
}
