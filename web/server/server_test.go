package server

import (
	"bufio"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func newTestServer() *Server {
	return NewServer(0, renderer.RenderConfig{TileSize: 16, NumWorkers: 2}, nil)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(scenes) != len(scene.ListScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.ListScenes()), len(scenes))
	}
}

func TestHandleImage(t *testing.T) {
	rec := get(t, newTestServer(), "/api/image?scene=default&width=32&height=24")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleImage_PPM(t *testing.T) {
	rec := get(t, newTestServer(), "/api/image?scene=planes&width=8&height=4&format=ppm")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "P3\n8 4\n255\n") {
		t.Errorf("Unexpected PPM header in %q", rec.Body.String()[:20])
	}
}

func TestHandleImage_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"unknown scene", "/api/image?scene=cornell-box", http.StatusNotFound},
		{"width too large", "/api/image?width=5000", http.StatusBadRequest},
		{"width not a number", "/api/image?width=abc", http.StatusBadRequest},
		{"unknown format", "/api/image?format=gif", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestServer(), tt.target)
			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestHandleRender_StreamsTiles(t *testing.T) {
	rec := get(t, newTestServer(), "/api/render?scene=default&width=32&height=32")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %s", ct)
	}

	events := make(map[string]int)
	var complete CompleteUpdate
	scanner := bufio.NewScanner(rec.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var current string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
			events[current]++
		case strings.HasPrefix(line, "data: ") && current == "complete":
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &complete); err != nil {
				t.Fatalf("Failed to decode complete event: %v", err)
			}
		}
	}

	// 32x32 with 16px tiles
	if events["tile"] != 4 {
		t.Errorf("Expected 4 tile events, got %d", events["tile"])
	}
	if events["complete"] != 1 {
		t.Errorf("Expected 1 complete event, got %d", events["complete"])
	}
	if events["error"] != 0 {
		t.Errorf("Expected no error events, got %d", events["error"])
	}
	if complete.Width != 32 || complete.Height != 32 || complete.Stats.TotalTiles != 4 {
		t.Errorf("Unexpected completion %+v", complete.Stats)
	}
	if complete.ImageData == "" {
		t.Error("Expected image data in completion event")
	}
}

func TestHandleInspect(t *testing.T) {
	s := newTestServer()

	// Center of the default scene looks straight at the outer sphere
	rec := get(t, s, "/api/inspect?scene=default&width=21&height=21&x=10&y=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Hit || resp.GeometryType != "sphere" {
		t.Errorf("Expected a sphere hit, got %+v", resp)
	}
	if resp.Properties["diffuse"] != 0.7 && resp.Properties["diffuse"] != float64(float32(0.7)) {
		t.Errorf("Expected outer sphere material, got %v", resp.Properties)
	}

	// Top-left corner misses everything
	rec = get(t, s, "/api/inspect?scene=default&width=21&height=21&x=0&y=0")
	resp = InspectResponse{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Hit {
		t.Errorf("Expected a miss at the corner, got %+v", resp)
	}

	if rec := get(t, s, "/api/inspect?scene=default&width=21&height=21&x=5"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing y, got %d", rec.Code)
	}
}
