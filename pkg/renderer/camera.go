package renderer

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera is a pinhole camera looking down -z in its own space, with the
// canvas one unit in front of the eye
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float32
	transform   core.Matrix
	inverse     core.Matrix
	halfWidth   float32
	halfHeight  float32
	pixelSize   float32
}

// NewCamera creates a camera for an hsize x vsize canvas with the given
// horizontal field of view in radians. The view transform starts as identity.
func NewCamera(hsize, vsize int, fieldOfView float32) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.Identity(4),
		inverse:     core.Identity(4),
	}

	halfView := math32.Tan(fieldOfView / 2)
	aspect := float32(hsize) / float32(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float32(hsize)

	return c
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float32 { return c.fieldOfView }

// PixelSize returns the world-space size of one pixel on the canvas plane
func (c *Camera) PixelSize() float32 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetTransform sets the view transform. Singular matrices are rejected and
// the camera keeps its previous transform.
func (c *Camera) SetTransform(m core.Matrix) error {
	if m.Rows() != 4 || m.Cols() != 4 {
		return fmt.Errorf("camera transform must be 4x4, got %dx%d", m.Rows(), m.Cols())
	}
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("invalid camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// RayForPixel returns the world-space ray through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float32(px) + 0.5) * c.pixelSize
	yOffset := (float32(py) + 0.5) * c.pixelSize

	// +x is to the left because the camera looks toward -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := core.NewPoint(worldX, worldY, -1).Apply(c.inverse)
	origin := core.Origin().Apply(c.inverse)
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
