package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Film is the in-memory HDR pixel buffer a render accumulates into.
// Pixels are stored flat in row-major order and are unbounded above 1.0
// until tone mapping.
type Film struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewFilm creates a black film of the given dimensions
func NewFilm(width, height int) *Film {
	return &Film{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// SetPixel stores the color for pixel (x, y). Out-of-bounds writes are ignored.
func (f *Film) SetPixel(x, y int, c core.Color) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.pixels[y*f.Width+x] = c
}

// AddSample accumulates a color into pixel (x, y). Out-of-bounds writes are
// ignored.
func (f *Film) AddSample(x, y int, c core.Color) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := y*f.Width + x
	f.pixels[i] = f.pixels[i].Add(c)
}

// PixelAt returns the color of pixel (x, y), or black when out of bounds
func (f *Film) PixelAt(x, y int) core.Color {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return core.Black()
	}
	return f.pixels[y*f.Width+x]
}

// AverageLuminance returns the mean perceptual luminance of the film,
// useful for automatic exposure correction.
func (f *Film) AverageLuminance() float64 {
	if len(f.pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range f.pixels {
		total += c.Luminance()
	}
	return total / float64(len(f.pixels))
}

// ApplyExposure multiplies every pixel by the given exposure factor in place
func (f *Film) ApplyExposure(exposure float64) {
	for i, c := range f.pixels {
		f.pixels[i] = c.Scale(exposure)
	}
}

// ToRGBA tone-maps the film into an 8-bit RGBA image with opaque alpha
func (f *Film) ToRGBA(mapper ToneMapper) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			mapped := mapper.Map(f.PixelAt(x, y)).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(mapped.R * 255),
				G: uint8(mapped.G * 255),
				B: uint8(mapped.B * 255),
				A: 255,
			})
		}
	}
	return img
}

// SubImage tone-maps only the given bounds of the film into a standalone
// image of the same size as the bounds. Used for streaming tile updates.
func (f *Film) SubImage(bounds image.Rectangle, mapper ToneMapper) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			mapped := mapper.Map(f.PixelAt(x, y)).Clamp(0, 1)
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{
				R: uint8(mapped.R * 255),
				G: uint8(mapped.G * 255),
				B: uint8(mapped.B * 255),
				A: 255,
			})
		}
	}
	return img
}
