package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is a non-attenuating light source with no size
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit vector from point toward the light
func (l PointLight) DirectionFrom(point core.Point) core.Vector {
	return l.Position.Subtract(point).Normalize()
}
