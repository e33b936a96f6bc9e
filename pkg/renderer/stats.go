package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalTiles       int           // Number of tiles the image was split into
	NumWorkers       int           // Number of parallel workers used
	Duration         time.Duration // Wall-clock render time
	AverageLuminance float64       // Mean Rec. 709 luminance of the clamped image
}

// CalculateAverageLuminance returns the mean luminance of the canvas with
// every pixel clamped to [0, 1]
func CalculateAverageLuminance(c *canvas.Canvas) float64 {
	pixels := c.Pixels()
	if len(pixels) == 0 {
		return 0
	}

	var total float64
	for _, p := range pixels {
		total += float64(p.Clamp(0, 1).Luminance())
	}
	return total / float64(len(pixels))
}
