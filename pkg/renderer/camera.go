package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays for rendering. Anti-aliasing uses a
// deterministic subdivisions x subdivisions sample grid per pixel, so two
// renders of the same camera produce identical rays.
type Camera struct {
	Position     core.Vec3
	Direction    core.Vec3
	Up           core.Vec3
	FovDegrees   float64 // Vertical field of view
	Width        int
	Height       int
	Subdivisions int

	// Cached orthonormal basis and view-plane extents
	right      core.Vec3
	up         core.Vec3
	forward    core.Vec3
	viewWidth  float64
	viewHeight float64
}

// NewCamera creates a camera. Direction and up are normalized; the view
// plane sits at distance 1 with height 2*tan(fov/2) and width scaled by the
// aspect ratio.
func NewCamera(position, direction, up core.Vec3, fovDegrees float64, width, height, subdivisions int) *Camera {
	c := &Camera{
		Position:     position,
		Direction:    direction.Normalize(),
		Up:           up.Normalize(),
		FovDegrees:   fovDegrees,
		Width:        width,
		Height:       height,
		Subdivisions: subdivisions,
	}

	c.forward = c.Direction
	c.right = c.forward.Cross(c.Up).Normalize()
	c.up = c.right.Cross(c.forward).Normalize()

	fovRad := fovDegrees * math.Pi / 180.0
	c.viewHeight = 2.0 * math.Tan(fovRad/2.0)
	c.viewWidth = c.viewHeight * float64(width) / float64(height)

	return c
}

// SamplesPerPixel returns the number of sample rays generated per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.Subdivisions * c.Subdivisions
}

// PixelRays generates the sample rays for pixel (x, y). Sample offsets are
// centered within the subdivision grid; the v axis points down the image.
func (c *Camera) PixelRays(x, y int) []core.Ray {
	rays := make([]core.Ray, 0, c.SamplesPerPixel())
	sampleSize := 1.0 / float64(c.Subdivisions)

	for sy := 0; sy < c.Subdivisions; sy++ {
		for sx := 0; sx < c.Subdivisions; sx++ {
			offsetX := (float64(sx) + 0.5) * sampleSize
			offsetY := (float64(sy) + 0.5) * sampleSize

			// Map pixel + offset into [-0.5, 0.5] across the image
			u := (float64(x)+offsetX)/float64(c.Width) - 0.5
			v := (float64(y)+offsetY)/float64(c.Height) - 0.5

			dir := c.forward.
				Add(c.right.Multiply(u * c.viewWidth)).
				Subtract(c.up.Multiply(v * c.viewHeight))

			rays = append(rays, core.NewRay(c.Position, dir))
		}
	}

	return rays
}
