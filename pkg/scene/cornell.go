package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Cornell builds a Cornell-style box from triangles: white floor, ceiling
// and back wall, red left wall, green right wall, a mirror sphere, a glass
// sphere, and a single ceiling light.
func Cornell(width, height, subdivisions int) *Scene {
	camera := renderer.NewCamera(
		core.NewVec3(0, 1, 3.5),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		40,
		width, height, subdivisions,
	)

	s := NewScene("cornell", camera)

	white := core.Matte(core.NewColor(0.73, 0.73, 0.73), 0.8)
	red := core.Matte(core.NewColor(0.65, 0.05, 0.05), 0.8)
	green := core.Matte(core.NewColor(0.12, 0.45, 0.15), 0.8)

	// Box interior spans x,z in [-1,1] and y in [0,2]
	addQuad := func(a, b, c, d core.Vec3, mat core.Material) {
		s.AddSurface(geometry.NewTriangle(a, b, c, mat))
		s.AddSurface(geometry.NewTriangle(a, c, d, mat))
	}

	// Floor
	addQuad(
		core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, 1),
		core.NewVec3(1, 0, -1), core.NewVec3(-1, 0, -1),
		white,
	)
	// Ceiling
	addQuad(
		core.NewVec3(-1, 2, -1), core.NewVec3(1, 2, -1),
		core.NewVec3(1, 2, 1), core.NewVec3(-1, 2, 1),
		white,
	)
	// Back wall
	addQuad(
		core.NewVec3(-1, 0, -1), core.NewVec3(1, 0, -1),
		core.NewVec3(1, 2, -1), core.NewVec3(-1, 2, -1),
		white,
	)
	// Left wall (red)
	addQuad(
		core.NewVec3(-1, 0, 1), core.NewVec3(-1, 0, -1),
		core.NewVec3(-1, 2, -1), core.NewVec3(-1, 2, 1),
		red,
	)
	// Right wall (green)
	addQuad(
		core.NewVec3(1, 0, -1), core.NewVec3(1, 0, 1),
		core.NewVec3(1, 2, 1), core.NewVec3(1, 2, -1),
		green,
	)

	s.AddSurface(geometry.NewSphere(core.NewVec3(-0.45, 0.4, -0.35), 0.4, core.PerfectMirror()))
	s.AddSurface(geometry.NewSphere(core.NewVec3(0.45, 0.35, 0.3), 0.35, core.Glass(0.9)))

	s.AddLight(lights.NewLight(core.NewVec3(0, 1.95, 0), 0.25, core.NewColor(15, 15, 15)))

	return s
}
