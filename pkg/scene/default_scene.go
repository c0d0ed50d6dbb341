package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Default builds the demo scene: a mirror sphere, three tinted glass
// spheres with per-channel absorption, a two-triangle ground quad, and
// three HDR spherical lights.
func Default(width, height, subdivisions int) *Scene {
	camera := renderer.NewCamera(
		core.NewVec3(0, -2, 2), // eye position
		core.NewVec3(0, 1, -1), // forward direction
		core.NewVec3(0, 0, 1),  // up
		90,
		width, height, subdivisions,
	)

	s := NewScene("default", camera)

	mirror := core.Mirror(core.White(), 0.9)
	redGlass := core.NewMaterial(core.NewColor(0.7, 0.2, 0.2), 0, 0.1, 0.9, 1.5, core.NewColor(0, 0.01, 0.01))
	greenGlass := core.NewMaterial(core.NewColor(0.2, 0.7, 0.2), 0, 0.1, 0.9, 1.5, core.NewColor(0.01, 0, 0.01))
	blueGlass := core.NewMaterial(core.NewColor(0.2, 0.2, 0.7), 0, 0.1, 0.9, 1.5, core.NewColor(0.01, 0.01, 0))
	ground := core.NewMaterial(core.White(), 0.2, 0.6, 0.2, 1.0, core.Black())

	s.AddSurface(geometry.NewSphere(core.NewVec3(-0.5, 1.5, 0.7), 0.7, mirror))
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 0, 0.5), 0.5, redGlass))
	s.AddSurface(geometry.NewSphere(core.NewVec3(-1.2, 0, 0.5), 0.5, blueGlass))
	s.AddSurface(geometry.NewSphere(core.NewVec3(1.2, 0, 0.5), 0.5, greenGlass))

	// Ground quad split into two triangles
	s.AddSurface(geometry.NewTriangle(
		core.NewVec3(3, 3, 0),
		core.NewVec3(3, -1, 0),
		core.NewVec3(-3, -1, 0),
		ground,
	))
	s.AddSurface(geometry.NewTriangle(
		core.NewVec3(3, 3, 0),
		core.NewVec3(-3, -1, 0),
		core.NewVec3(-3, 3, 0),
		ground,
	))

	s.AddLight(lights.NewLight(core.NewVec3(3, -3, 5), 3.0, core.NewColor(5, 5, 5)))
	s.AddLight(lights.NewLight(core.NewVec3(0, 0, 10), 2.0, core.NewColor(5.8, 5.8, 5)))
	s.AddLight(lights.NewLight(core.NewVec3(-10, -5, 5), 2.0, core.NewColor(9, 10, 9.5)))

	return s
}
