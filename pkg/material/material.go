package material

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong reflectance coefficients of a surface
type Material struct {
	Color     core.Color
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
}

// NewMaterial returns the default material: white, ambient 0.1, diffuse 0.9,
// specular 0.9, shininess 200
func NewMaterial() Material {
	return Material{
		Color:     core.White(),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Validate checks that every coefficient is non-negative
func (m Material) Validate() error {
	coefficients := []struct {
		name  string
		value float32
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
	}
	for _, c := range coefficients {
		if c.value < 0 {
			return fmt.Errorf("material %s must be non-negative, got %g", c.name, c.value)
		}
	}
	return nil
}
