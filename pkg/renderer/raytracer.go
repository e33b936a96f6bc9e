package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// World is the part of a scene the renderer needs. It lives here to avoid
// an import cycle with the scene package.
type World interface {
	ColorAt(ray core.Ray) core.Color
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle // Pixel bounds of the tile
	TileImage *image.RGBA     // Image data for just this tile

	// Progress information
	TileNumber int // Completion order (1-based)
	TotalTiles int // Total number of tiles in the image
}

// Raytracer renders a world through a camera using a tiled worker pool
type Raytracer struct {
	world        World
	camera       *Camera
	config       RenderConfig
	tileRenderer *TileRenderer
	workerPool   *WorkerPool
	logger       core.Logger
}

// NewRaytracer creates a new parallel raytracer
func NewRaytracer(world World, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		world:        world,
		camera:       camera,
		config:       config,
		tileRenderer: NewTileRenderer(world, camera),
		workerPool:   NewWorkerPool(config.NumWorkers),
		logger:       logger,
	}
}

// Render shades every pixel of the camera's canvas. tileCallback, if non-nil,
// is invoked once per finished tile from a single goroutine at a time.
// On cancellation the partially rendered canvas is discarded and ctx.Err()
// is returned.
func (rt *Raytracer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (*canvas.Canvas, RenderStats, error) {
	width, height := rt.camera.HSize(), rt.camera.VSize()
	img := canvas.New(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	rt.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		width, height, len(tiles), rt.workerPool.NumWorkers())

	startTime := time.Now()
	completed := 0

	render := func(tile *Tile) error {
		rt.tileRenderer.RenderTileBounds(tile.Bounds, img)
		return nil
	}
	done := func(tile *Tile) {
		completed++
		if tileCallback == nil {
			return
		}
		tileCallback(TileCompletionResult{
			TileX:      tile.Bounds.Min.X / max(1, rt.config.TileSize),
			TileY:      tile.Bounds.Min.Y / max(1, rt.config.TileSize),
			Bounds:     tile.Bounds,
			TileImage:  img.RegionRGBA(tile.Bounds),
			TileNumber: completed,
			TotalTiles: len(tiles),
		})
	}

	if err := rt.workerPool.Run(ctx, tiles, render, done); err != nil {
		rt.logger.Printf("Rendering stopped after %d of %d tiles: %v\n", completed, len(tiles), err)
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels:      width * height,
		TotalTiles:       len(tiles),
		NumWorkers:       rt.workerPool.NumWorkers(),
		Duration:         time.Since(startTime),
		AverageLuminance: CalculateAverageLuminance(img),
	}

	rt.logger.Printf("Render completed in %v\n", stats.Duration)

	return img, stats, nil
}

// Render shades every pixel sequentially, row by row
func Render(camera *Camera, world World) *canvas.Canvas {
	img := canvas.New(camera.HSize(), camera.VSize())
	for y := 0; y < camera.VSize(); y++ {
		for x := 0; x < camera.HSize(); x++ {
			img.Set(x, y, world.ColorAt(camera.RayForPixel(x, y)))
		}
	}
	return img
}
