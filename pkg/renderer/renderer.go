package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/log"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var logger = log.New("renderer")

// Scene is the read-only view of a scene the renderer needs. Declared here,
// where it is consumed, so scene packages can depend on the renderer for
// camera construction without an import cycle.
type Scene interface {
	Surfaces() []core.Surface
	Lights() []lights.Light
	Camera() *Camera
}

// Options configures a frame render
type Options struct {
	TileSize   int // Tile edge length in pixels
	NumWorkers int // Parallel workers; <= 0 means runtime.NumCPU()
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		TileSize:   64,
		NumWorkers: 0,
	}
}

// RenderStats summarizes a completed render
type RenderStats struct {
	Width           int
	Height          int
	TotalPixels     int
	TotalSamples    int // Primary rays traced
	SamplesPerPixel int
	Tiles           int
	Workers         int
	Elapsed         time.Duration
}

// TileResult reports one finished tile during a progressive render
type TileResult struct {
	Bounds     image.Rectangle
	TileNumber int // 1-based completion order
	TotalTiles int
}

// Renderer drives a full frame: it decomposes the film into tiles, feeds
// them to a worker pool, and traces every pixel sample through the
// transport engine. Tile bounds are disjoint, so workers write the shared
// film without locking. Rendering is deterministic: the sample grid is
// fixed, so two renders of the same scene produce identical films.
type Renderer struct {
	scene  Scene
	tracer *integrator.RayTracer
	opts   Options
}

// New creates a renderer for the given scene and transport engine
func New(scene Scene, tracer *integrator.RayTracer, opts Options) *Renderer {
	if opts.TileSize <= 0 {
		opts.TileSize = DefaultOptions().TileSize
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = runtime.NumCPU()
	}
	return &Renderer{scene: scene, tracer: tracer, opts: opts}
}

// Render renders the full frame and returns the HDR film
func (r *Renderer) Render(ctx context.Context) (*Film, RenderStats, error) {
	return r.RenderProgressive(ctx, nil)
}

// RenderProgressive renders the full frame, invoking onTile from a single
// goroutine as each tile completes. The film region for a reported tile is
// final when the callback runs.
func (r *Renderer) RenderProgressive(ctx context.Context, onTile func(*Film, TileResult)) (*Film, RenderStats, error) {
	camera := r.scene.Camera()
	film := NewFilm(camera.Width, camera.Height)
	tiles := tileGrid(camera.Width, camera.Height, r.opts.TileSize)

	logger.Infof("rendering %dx%d frame: %d tiles, %d samples/pixel, %d workers",
		camera.Width, camera.Height, len(tiles), camera.SamplesPerPixel(), r.opts.NumWorkers)

	start := time.Now()

	taskQueue := make(chan image.Rectangle, len(tiles))
	resultQueue := make(chan image.Rectangle, len(tiles))

	var wg sync.WaitGroup
	for w := 0; w < r.opts.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bounds := range taskQueue {
				// Honor cancellation between tiles
				select {
				case <-ctx.Done():
					return
				default:
				}
				r.renderTile(film, bounds)
				resultQueue <- bounds
			}
		}()
	}

	for _, bounds := range tiles {
		taskQueue <- bounds
	}
	close(taskQueue)

	// Collect results and dispatch tile callbacks single-threaded
	completed := 0
	var renderErr error
	for completed < len(tiles) && renderErr == nil {
		select {
		case <-ctx.Done():
			renderErr = ctx.Err()
		case bounds := <-resultQueue:
			completed++
			if onTile != nil {
				onTile(film, TileResult{
					Bounds:     bounds,
					TileNumber: completed,
					TotalTiles: len(tiles),
				})
			}
		}
	}
	wg.Wait()

	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	stats := RenderStats{
		Width:           camera.Width,
		Height:          camera.Height,
		TotalPixels:     camera.Width * camera.Height,
		TotalSamples:    camera.Width * camera.Height * camera.SamplesPerPixel(),
		SamplesPerPixel: camera.SamplesPerPixel(),
		Tiles:           len(tiles),
		Workers:         r.opts.NumWorkers,
		Elapsed:         time.Since(start),
	}

	logger.Infof("render complete in %s", stats.Elapsed)
	return film, stats, nil
}

// renderTile traces every pixel sample within the bounds and stores the
// averaged color in the film.
func (r *Renderer) renderTile(film *Film, bounds image.Rectangle) {
	camera := r.scene.Camera()
	surfaces := r.scene.Surfaces()
	lightList := r.scene.Lights()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			accum := core.Black()
			rays := camera.PixelRays(x, y)
			for _, ray := range rays {
				accum = accum.Add(r.tracer.Trace(ray, surfaces, lightList))
			}
			film.SetPixel(x, y, accum.Scale(1.0/float64(len(rays))))
		}
	}
}

// tileGrid decomposes the image into tiles covering every pixel exactly once
func tileGrid(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, image.Rect(x0, y0, x1, y1))
		}
	}

	return tiles
}
