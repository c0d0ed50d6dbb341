package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

const (
	// Minimum t for any intersection query, to ignore self-intersections
	intersectEpsilon = 1e-5
	// Offset applied along the normal to the origin of every spawned ray
	offsetEpsilon = 1e-4
	// Branches below this rate are not worth spawning
	rateEpsilon = 1e-5
)

// RayTracer is the light-transport engine: a deterministic Whitted-style
// tracer that branches rays at surface interactions and accumulates
// weighted contributions recursively.
//
// All configuration is fixed at construction. The engine holds no mutable
// state, so a single RayTracer may serve any number of concurrent traces.
type RayTracer struct {
	// Background is returned for rays that hit nothing and for rays
	// terminated by the depth or weight limits.
	Background core.Color
	// MaxDepth caps the recursion depth.
	MaxDepth int
	// MinWeight terminates branches whose accumulated weight falls below it.
	MinWeight float64
	// Vacuum is the ambient medium rays start out in.
	Vacuum core.Material
}

// NewRayTracer creates a new light-transport engine
func NewRayTracer(background core.Color, maxDepth int, minWeight float64, vacuum core.Material) *RayTracer {
	return &RayTracer{
		Background: background,
		MaxDepth:   maxDepth,
		MinWeight:  minWeight,
		Vacuum:     vacuum,
	}
}

// branchedRay is a ray produced by a surface interaction, together with its
// contribution weight and the medium the new ray travels through. Branch
// lists live for a single recursion frame; at most three branches exist
// (diffuse, transmitted, specular).
type branchedRay struct {
	ray     core.Ray
	weight  float64
	passing core.Material
}

// Trace computes the HDR color carried by a ray through the scene.
// Both collections are read-only for the duration of the call and may be
// empty.
func (rt *RayTracer) Trace(ray core.Ray, surfaces []core.Surface, lights []lights.Light) core.Color {
	return rt.traceRecursive(ray, surfaces, lights, 0, 1.0, rt.Vacuum)
}

// traceRecursive is one step of the transport recursion. All state flows
// through the parameters: current depth, accumulated weight, and the medium
// the ray is currently passing through.
func (rt *RayTracer) traceRecursive(ray core.Ray, surfaces []core.Surface, lightList []lights.Light,
	depth int, weight float64, passing core.Material) core.Color {

	// Termination checks come before any scene query
	if depth >= rt.MaxDepth || weight < rt.MinWeight {
		return rt.Background
	}

	closest, hitSurface := rt.closestIntersection(ray, surfaces)

	// Lights are scanned separately; a light that is strictly closer than
	// any surface wins the race and short-circuits all shading
	if lightHit, light, ok := rt.closestLightIntersection(ray, lightList); ok {
		if !hitSurface || lightHit.T < closest.T {
			attenuation := beerAttenuation(passing.Absorption, lightHit.T)
			return light.Emission.Mul(attenuation).Scale(weight)
		}
	}

	if !hitSurface {
		return rt.Background
	}

	// Beer's-law attenuation over the segment just traveled, using the
	// medium the ray was in, not the material it struck
	attenuation := beerAttenuation(passing.Absorption, closest.T)
	material := closest.Material

	directColor := core.Black()
	for _, light := range lightList {
		directColor = directColor.Add(rt.directLight(closest, light, material, surfaces))
	}

	indirectColor := core.Black()
	for _, branch := range rt.branchRays(ray, closest, passing) {
		contribution := rt.traceRecursive(branch.ray, surfaces, lightList,
			depth+1, weight*branch.weight, branch.passing)
		indirectColor = indirectColor.Add(material.Albedo.Mul(contribution).Scale(branch.weight))
	}

	return directColor.Add(indirectColor).Mul(attenuation)
}

// closestIntersection scans all surfaces linearly and keeps the nearest hit
// beyond the self-intersection epsilon.
func (rt *RayTracer) closestIntersection(ray core.Ray, surfaces []core.Surface) (core.Intersection, bool) {
	var closest core.Intersection
	closestT := math.Inf(1)
	found := false

	for _, surface := range surfaces {
		if hit, ok := surface.Intersect(ray); ok {
			if hit.T > intersectEpsilon && hit.T < closestT {
				closest = hit
				closestT = hit.T
				found = true
			}
		}
	}

	return closest, found
}

// closestLightIntersection scans all lights with the same epsilon and
// minimum-t rule as surfaces.
func (rt *RayTracer) closestLightIntersection(ray core.Ray, lightList []lights.Light) (core.Intersection, lights.Light, bool) {
	var closest core.Intersection
	var closestLight lights.Light
	closestT := math.Inf(1)
	found := false

	for _, light := range lightList {
		if hit, ok := light.Intersect(ray); ok {
			if hit.T > intersectEpsilon && hit.T < closestT {
				closest = hit
				closestLight = light
				closestT = hit.T
				found = true
			}
		}
	}

	return closest, closestLight, found
}

// directLight computes the Lambertian contribution of a single light at an
// intersection, with a binary shadow test: any surface strictly between the
// point and the light center fully occludes it.
func (rt *RayTracer) directLight(hit core.Intersection, light lights.Light,
	material core.Material, surfaces []core.Surface) core.Color {

	toLight := light.Center.Subtract(hit.Point).Normalize()

	cosTheta := toLight.Dot(hit.Normal)
	if cosTheta <= 0 {
		return core.Black()
	}

	shadowOrigin := hit.Point.Add(toLight.Multiply(offsetEpsilon))
	shadowRay := core.NewRay(shadowOrigin, toLight)
	distToLight := light.Center.Subtract(hit.Point).Length()

	for _, surface := range surfaces {
		if shadowHit, ok := surface.Intersect(shadowRay); ok {
			if shadowHit.T < distToLight-intersectEpsilon {
				return core.Black()
			}
		}
	}

	return material.Albedo.Mul(light.Emission).Scale(cosTheta * material.DiffuseRate)
}

// branchRays generates the outgoing rays for a surface interaction: an
// optional diffuse branch along the outward normal, an optional transmitted
// branch via Snell's law, and an optional specular branch. Under total
// internal reflection the transmission weight folds into the specular
// branch instead; the folded weight may exceed the constructed specular
// rate and is deliberately not re-clamped.
func (rt *RayTracer) branchRays(ray core.Ray, hit core.Intersection, incoming core.Material) []branchedRay {
	material := hit.Material
	branches := make([]branchedRay, 0, 3)

	// The geometric normal is not guaranteed to face the ray; orient it
	// from the incident direction
	isEntering := ray.Direction.Dot(hit.Normal) < 0
	normal := hit.Normal
	if !isEntering {
		normal = hit.Normal.Negate()
	}

	if material.DiffuseRate > rateEpsilon {
		// Simplified single-direction proxy for hemispherical scattering:
		// the branch follows the outward normal. Direct lighting is
		// handled separately.
		origin := hit.Point.Add(normal.Multiply(offsetEpsilon))
		branches = append(branches, branchedRay{
			ray:     core.NewRay(origin, normal),
			weight:  material.DiffuseRate,
			passing: incoming,
		})
	}

	specularWeight := material.SpecularRate

	if material.TransmissionRate > rateEpsilon {
		// Snell's law: n1 sin(θ1) = n2 sin(θ2)
		var ratio float64
		if isEntering {
			ratio = incoming.RefractiveIndex / material.RefractiveIndex
		} else {
			ratio = material.RefractiveIndex / rt.Vacuum.RefractiveIndex
		}

		cosI := -ray.Direction.Dot(normal)
		sinTSq := ratio * ratio * (1 - cosI*cosI)

		if sinTSq > 1 {
			// Total internal reflection: fold the transmitted energy
			// into the specular branch
			specularWeight += material.TransmissionRate
		} else {
			cosT := math.Sqrt(1 - sinTSq)
			refracted := ray.Direction.Multiply(ratio).Add(normal.Multiply(ratio*cosI - cosT))
			origin := hit.Point.Subtract(normal.Multiply(offsetEpsilon))

			passing := rt.Vacuum
			if isEntering {
				passing = material
			}

			branches = append(branches, branchedRay{
				ray:     core.NewRay(origin, refracted),
				weight:  material.TransmissionRate,
				passing: passing,
			})
		}
	}

	if specularWeight > rateEpsilon {
		reflected := ray.Direction.Reflect(normal)
		origin := hit.Point.Add(normal.Multiply(offsetEpsilon))
		branches = append(branches, branchedRay{
			ray:     core.NewRay(origin, reflected),
			weight:  specularWeight,
			passing: incoming,
		})
	}

	return branches
}

// beerAttenuation returns the per-channel Beer's-law factor
// exp(-absorption * distance) for a segment through an absorptive medium.
func beerAttenuation(absorption core.Color, distance float64) core.Color {
	return core.NewColor(
		math.Exp(-absorption.R*distance),
		math.Exp(-absorption.G*distance),
		math.Exp(-absorption.B*distance),
	)
}
