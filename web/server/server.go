package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/df07/go-whitted-raytracer/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("server")

// Server exposes the raytracer over HTTP
type Server struct {
	port int
	echo *echo.Echo
}

// NewServer creates a web server listening on the given port
func NewServer(port int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())

	s := &Server{port: port, echo: e}

	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRender)
	e.GET("/api/render/stream", s.handleRenderStream)

	return s
}

// Start runs the server until it fails or is shut down
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return s.echo.Start(addr)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the available scene presets
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"scenes": scene.Names()})
}

// RenderRequest holds the validated parameters of a render call
type RenderRequest struct {
	Scene        string
	Width        int
	Height       int
	Subdivisions int
	ToneMapper   string
	Exposure     float64
}

// parseRenderRequest parses and validates query parameters, applying defaults
// for anything omitted
func parseRenderRequest(c echo.Context) (*RenderRequest, error) {
	query := c.QueryParams()

	req := &RenderRequest{
		Scene:      query.Get("scene"),
		ToneMapper: query.Get("tone-mapper"),
	}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.ToneMapper == "" {
		req.ToneMapper = "reinhard"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Subdivisions, err = parseIntParam(query, "subdivisions", 2, 1, 8); err != nil {
		return nil, err
	}
	if req.Exposure, err = parseFloatParam(query, "exposure", 1.0, 0.01, 100); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer query parameter with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float query parameter with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// buildPipeline resolves the request into a scene, renderer and tone mapper
func buildPipeline(req *RenderRequest) (*scene.Scene, *renderer.Renderer, renderer.ToneMapper, error) {
	sc, err := scene.ByName(req.Scene, req.Width, req.Height, req.Subdivisions)
	if err != nil {
		return nil, nil, nil, err
	}

	mapper, err := renderer.NewToneMapper(req.ToneMapper, req.Exposure)
	if err != nil {
		return nil, nil, nil, err
	}

	r := renderer.New(sc, sc.Tracer(), renderer.DefaultOptions())
	return sc, r, mapper, nil
}
