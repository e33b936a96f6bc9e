package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const maxDimension = 2000

// Server serves scene listings, still renders and streamed tile renders over HTTP
type Server struct {
	port   int
	config renderer.RenderConfig
	echo   io.Writer // Server-side log output
}

// NewServer creates a new web server
func NewServer(port int, config renderer.RenderConfig, echo io.Writer) *Server {
	return &Server{port: port, config: config, echo: echo}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string `json:"scene"`  // Scene ID as listed by /api/scenes
	Width  int    `json:"width"`  // Image width, 0 keeps the scene default
	Height int    `json:"height"` // Image height, 0 keeps the scene default
	Format string `json:"format"` // Output format for /api/image
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalTiles       int     `json:"totalTiles"`
	NumWorkers       int     `json:"numWorkers"`
	ElapsedMs        int64   `json:"elapsedMs"`
	AverageLuminance float64 `json:"averageLuminance"`
}

func newStats(s renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:      s.TotalPixels,
		TotalTiles:       s.TotalTiles,
		NumWorkers:       s.NumWorkers,
		ElapsedMs:        s.Duration.Milliseconds(),
		AverageLuminance: s.AverageLuminance,
	}
}

// Handler returns the HTTP routes served by s
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("GET /api/image", s.handleImage)
	mux.HandleFunc("GET /api/render", s.handleRender)
	mux.HandleFunc("GET /api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleImage renders a scene and returns it as a single encoded image
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err)
		return
	}

	logger := NewWebLogger(req.Scene, nil, s.echo)
	img, _, err := renderer.NewRaytracer(sceneObj.World, sceneObj.Camera, s.config, logger).Render(r.Context(), nil)
	if err != nil {
		// Client went away; nothing useful to send
		return
	}

	var buf bytes.Buffer
	if err := canvas.Encode(&buf, img, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", contentType(req.Format))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:  query.Get("scene"),
		Format: strings.ToLower(query.Get("format")),
	}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = canvas.FormatPNG
	}
	if contentType(req.Format) == "" {
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", req.Format, strings.Join(canvas.Formats, ", "))
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, maxDimension); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
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

// createScene builds the requested scene with any size overrides applied
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	return scene.Lookup(req.Scene, scene.CameraConfig{Width: req.Width, Height: req.Height})
}

// sceneErrorStatus maps scene construction errors to HTTP status codes
func sceneErrorStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// contentType returns the MIME type for an output format, or "" if unsupported
func contentType(format string) string {
	switch format {
	case canvas.FormatPNG:
		return "image/png"
	case canvas.FormatBMP:
		return "image/bmp"
	case canvas.FormatTIFF:
		return "image/tiff"
	case canvas.FormatPPM:
		return "image/x-portable-pixmap"
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
