package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// TileRenderer shades the pixels of one tile into a shared canvas
type TileRenderer struct {
	world  World
	camera *Camera
}

// NewTileRenderer creates a tile renderer for the given world and camera
func NewTileRenderer(world World, camera *Camera) *TileRenderer {
	return &TileRenderer{
		world:  world,
		camera: camera,
	}
}

// RenderTileBounds shades every pixel inside bounds and returns the pixel count.
// Tiles never overlap, so concurrent calls on the same canvas are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, c *canvas.Canvas) int {
	bounds = bounds.Intersect(image.Rect(0, 0, c.Width(), c.Height()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.RayForPixel(x, y)
			c.Set(x, y, tr.world.ColorAt(ray))
		}
	}
	return bounds.Dx() * bounds.Dy()
}
