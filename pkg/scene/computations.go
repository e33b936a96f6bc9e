package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Computations holds the precomputed shading state at a ray hit
type Computations struct {
	T      float32
	Object geometry.Shape
	Point  core.Point
	Eye    core.Vector // Reverse of the ray direction
	Normal core.Vector // Unit normal, flipped to face the eye when Inside
	Inside bool
}

// PrepareComputations derives the shading state for an intersection of ray
func PrepareComputations(hit geometry.Intersection, ray core.Ray) Computations {
	point := ray.Position(hit.T)
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  point,
		Eye:    ray.Direction.Negate(),
		Normal: hit.Object.NormalAt(point),
	}

	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Negate()
	}

	return comps
}
