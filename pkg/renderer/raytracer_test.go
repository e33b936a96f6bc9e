package renderer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// MockWorld colors each ray by the magnitude of its direction components
type MockWorld struct{}

func (MockWorld) ColorAt(ray core.Ray) core.Color {
	d := ray.Direction
	return core.NewColor(math32.Abs(d.X), math32.Abs(d.Y), math32.Abs(d.Z))
}

// recordingLogger captures log output for assertions
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRender_Sequential(t *testing.T) {
	camera := NewCamera(11, 7, math32.Pi/2)
	world := MockWorld{}

	img := Render(camera, world)

	if img.Width() != 11 || img.Height() != 7 {
		t.Fatalf("Expected 11x7 canvas, got %dx%d", img.Width(), img.Height())
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 11; x++ {
			expected := world.ColorAt(camera.RayForPixel(x, y))
			if got := img.At(x, y); got != expected {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, expected, got)
			}
		}
	}
}

func TestRaytracer_MatchesSequentialRender(t *testing.T) {
	camera := NewCamera(23, 17, math32.Pi/3)
	world := MockWorld{}

	tests := []struct {
		name   string
		config RenderConfig
	}{
		{"default config", DefaultRenderConfig()},
		{"small tiles", RenderConfig{TileSize: 5, NumWorkers: 3}},
		{"single worker", RenderConfig{TileSize: 8, NumWorkers: 1}},
	}

	expected := Render(camera, world)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := NewRaytracer(world, camera, tt.config, &recordingLogger{})
			img, stats, err := rt.Render(context.Background(), nil)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			for i, p := range img.Pixels() {
				if p != expected.Pixels()[i] {
					t.Fatalf("Pixel %d: expected %v, got %v", i, expected.Pixels()[i], p)
				}
			}

			if stats.TotalPixels != 23*17 {
				t.Errorf("Expected %d total pixels, got %d", 23*17, stats.TotalPixels)
			}
			if stats.TotalTiles != len(NewTileGrid(23, 17, tt.config.TileSize)) {
				t.Errorf("Unexpected tile count %d", stats.TotalTiles)
			}
			if stats.NumWorkers <= 0 {
				t.Errorf("Expected positive worker count, got %d", stats.NumWorkers)
			}
		})
	}
}

func TestRaytracer_TileCallback(t *testing.T) {
	camera := NewCamera(20, 10, math32.Pi/2)
	config := RenderConfig{TileSize: 4, NumWorkers: 4}
	rt := NewRaytracer(MockWorld{}, camera, config, &recordingLogger{})

	var results []TileCompletionResult
	_, _, err := rt.Render(context.Background(), func(r TileCompletionResult) {
		results = append(results, r)
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expectedTiles := 5 * 3
	if len(results) != expectedTiles {
		t.Fatalf("Expected %d tile callbacks, got %d", expectedTiles, len(results))
	}

	seen := make(map[[2]int]bool)
	for i, r := range results {
		if r.TileNumber != i+1 {
			t.Errorf("Expected tile number %d, got %d", i+1, r.TileNumber)
		}
		if r.TotalTiles != expectedTiles {
			t.Errorf("Expected %d total tiles, got %d", expectedTiles, r.TotalTiles)
		}
		if r.Bounds.Min.X != r.TileX*4 || r.Bounds.Min.Y != r.TileY*4 {
			t.Errorf("Tile (%d,%d) has mismatched bounds %v", r.TileX, r.TileY, r.Bounds)
		}
		seen[[2]int{r.TileX, r.TileY}] = true
	}
	if len(seen) != expectedTiles {
		t.Errorf("Expected %d distinct tiles, got %d", expectedTiles, len(seen))
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := &recordingLogger{}
	rt := NewRaytracer(MockWorld{}, NewCamera(64, 64, math32.Pi/2), RenderConfig{TileSize: 8, NumWorkers: 2}, logger)
	img, _, err := rt.Render(ctx, nil)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no canvas from a cancelled render")
	}
	if !strings.Contains(strings.Join(logger.lines, ""), "stopped") {
		t.Errorf("Expected a log line about stopping, got %q", logger.lines)
	}
}

func TestRaytracer_Logging(t *testing.T) {
	logger := &recordingLogger{}
	rt := NewRaytracer(MockWorld{}, NewCamera(8, 8, math32.Pi/2), RenderConfig{TileSize: 4, NumWorkers: 2}, logger)
	if _, _, err := rt.Render(context.Background(), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	output := strings.Join(logger.lines, "")
	if !strings.Contains(output, "8x8 in 4 tiles (using 2 workers)") {
		t.Errorf("Missing start line in %q", output)
	}
	if !strings.Contains(output, "Render completed") {
		t.Errorf("Missing completion line in %q", output)
	}
}
