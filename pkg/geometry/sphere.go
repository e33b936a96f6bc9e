package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere is a unit sphere centered at the object-space origin
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the identity transform and default material
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// Intersect solves |O + tD|² = 1 in object space
func (s *Sphere) Intersect(ray core.Ray) Intersections {
	local := s.objectRay(ray)
	origin := local.Origin.Subtract(core.Origin())
	direction := local.Direction

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := direction.Dot(direction)
	b := direction.Dot(origin)
	c := origin.Dot(origin) - 1

	if a == 0 {
		return nil
	}

	// NaN fails the comparison and is treated as a miss
	discriminant := b*b - a*c
	if !(discriminant >= 0) {
		return nil
	}

	sqrtD := math32.Sqrt(discriminant)
	return Intersections{
		NewIntersection(s, (-b-sqrtD)/a),
		NewIntersection(s, (-b+sqrtD)/a),
	}
}

// NormalAt returns the outward normal, corrected for non-uniform scaling
func (s *Sphere) NormalAt(worldPoint core.Point) core.Vector {
	objectNormal := s.objectPoint(worldPoint).Subtract(core.Origin())
	return s.worldNormal(objectNormal)
}
