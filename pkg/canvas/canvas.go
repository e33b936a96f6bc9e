package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a row-major grid of unclamped colors
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// FromPixels wraps an existing row-major pixel buffer
func FromPixels(width, height int, pixels []core.Color) (*Canvas, error) {
	if width < 0 || height < 0 || len(pixels) != width*height {
		return nil, fmt.Errorf("pixel buffer has %d entries, want %dx%d", len(pixels), width, height)
	}
	return &Canvas{width: width, height: height, pixels: pixels}, nil
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Pixels returns the row-major backing buffer
func (c *Canvas) Pixels() []core.Color { return c.pixels }

// Set writes a pixel. Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, col core.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// At returns the pixel at (x, y)
func (c *Canvas) At(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// ToRGBA converts the canvas to an 8-bit image, clamping each channel to [0, 1]
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, ToRGBA(c.At(x, y)))
		}
	}
	return img
}

// RegionRGBA converts the pixels inside r to an 8-bit image whose bounds
// start at (0, 0). r is clipped to the canvas.
func (c *Canvas) RegionRGBA(r image.Rectangle) *image.RGBA {
	r = r.Intersect(image.Rect(0, 0, c.width, c.height))
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x-r.Min.X, y-r.Min.Y, ToRGBA(c.At(x, y)))
		}
	}
	return img
}

// ToRGBA quantizes a color to 8 bits per channel
func ToRGBA(col core.Color) color.RGBA {
	return color.RGBA{
		R: quantize(col.R),
		G: quantize(col.G),
		B: quantize(col.B),
		A: 255,
	}
}

// quantize clamps v to [0, 1] and rounds to the nearest 8-bit value
func quantize(v float32) uint8 {
	if v != v {
		return 0
	}
	return uint8(max(0, min(1, v))*255 + 0.5)
}
