package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by ByName for unregistered scene names
var ErrUnknownScene = errors.New("unknown scene")

// Scene bundles the geometry, lights and camera of a renderable world
// together with the transport settings it was designed for. All collections
// are read-only once a render starts.
type Scene struct {
	Name string

	// Transport settings; may be overridden before building the tracer
	Background core.Color
	MaxDepth   int
	MinWeight  float64

	surfaces []core.Surface
	lightArr []lights.Light
	camera   *renderer.Camera
}

// NewScene creates an empty scene with the given camera and the standard
// transport defaults (black background, depth 8, min weight 1e-3).
func NewScene(name string, camera *renderer.Camera) *Scene {
	return &Scene{
		Name:       name,
		Background: core.Black(),
		MaxDepth:   8,
		MinWeight:  1e-3,
		camera:     camera,
	}
}

// AddSurface appends a surface to the scene
func (s *Scene) AddSurface(surface core.Surface) {
	s.surfaces = append(s.surfaces, surface)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.lightArr = append(s.lightArr, light)
}

// Surfaces returns the ordered surface list
func (s *Scene) Surfaces() []core.Surface {
	return s.surfaces
}

// Lights returns the ordered light list
func (s *Scene) Lights() []lights.Light {
	return s.lightArr
}

// Camera returns the scene's camera
func (s *Scene) Camera() *renderer.Camera {
	return s.camera
}

// Tracer builds the transport engine configured for this scene
func (s *Scene) Tracer() *integrator.RayTracer {
	return integrator.NewRayTracer(s.Background, s.MaxDepth, s.MinWeight, core.Vacuum())
}

// Builder constructs a preset scene at the requested resolution
type Builder func(width, height, subdivisions int) *Scene

var builders = map[string]Builder{
	"default":     Default,
	"cornell":     Cornell,
	"mirror-room": MirrorRoom,
}

// Names returns the sorted names of all registered scene presets
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named preset scene, or ErrUnknownScene
func ByName(name string, width, height, subdivisions int) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return builder(width, height, subdivisions), nil
}
