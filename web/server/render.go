package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// TileUpdate is a single streamed tile sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	TileWidth  int    `json:"tileWidth"`
	TileHeight int    `json:"tileHeight"`
	ImageData  string `json:"imageData"` // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"`
	TotalTiles int    `json:"totalTiles"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// handleRender renders a full frame and returns it as a PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, r, mapper, err := buildPipeline(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	film, stats, err := r.Render(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	logger.Infof("rendered %q %dx%d in %s", req.Scene, stats.Width, stats.Height, stats.Elapsed)

	var buf bytes.Buffer
	if err := png.Encode(&buf, film.ToRGBA(mapper)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// handleRenderStream renders a frame while streaming each completed tile to
// the client as an SSE event. Tile callbacks run on a single goroutine, so
// writing the response inline is safe.
func (s *Server) handleRenderStream(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, r, mapper, err := buildPipeline(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	// The request context cancels the render when the client disconnects
	ctx := c.Request().Context()
	startTime := time.Now()

	film, stats, err := r.RenderProgressive(ctx, func(film *renderer.Film, tile renderer.TileResult) {
		update, err := s.tileUpdate(film, tile, mapper, startTime)
		if err != nil {
			logger.Errorf("encoding tile %v: %v", tile.Bounds, err)
			return
		}
		s.sendSSEEvent(resp, "tile", update)
	})
	if err != nil {
		s.sendSSEEvent(resp, "error", map[string]string{"error": err.Error()})
		return nil
	}

	// Final event carries the complete frame
	imageData, err := imageToBase64PNG(film.ToRGBA(mapper))
	if err != nil {
		s.sendSSEEvent(resp, "error", map[string]string{"error": err.Error()})
		return nil
	}
	s.sendSSEEvent(resp, "complete", map[string]interface{}{
		"imageData": imageData,
		"elapsedMs": stats.Elapsed.Milliseconds(),
		"tiles":     stats.Tiles,
	})
	return nil
}

// tileUpdate encodes a finished film tile as a streamable update
func (s *Server) tileUpdate(film *renderer.Film, tile renderer.TileResult, mapper renderer.ToneMapper, startTime time.Time) (TileUpdate, error) {
	imageData, err := imageToBase64PNG(film.SubImage(tile.Bounds, mapper))
	if err != nil {
		return TileUpdate{}, err
	}
	return TileUpdate{
		TileX:      tile.Bounds.Min.X,
		TileY:      tile.Bounds.Min.Y,
		TileWidth:  tile.Bounds.Dx(),
		TileHeight: tile.Bounds.Dy(),
		ImageData:  imageData,
		TileNumber: tile.TileNumber,
		TotalTiles: tile.TotalTiles,
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	}, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEEvent writes one SSE event and flushes it to the client
func (s *Server) sendSSEEvent(resp *echo.Response, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Errorf("marshaling %s event: %v", event, err)
		return
	}
	fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event, data)
	resp.Flush()
}
