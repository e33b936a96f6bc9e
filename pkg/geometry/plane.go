package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// parallelEpsilon is the smallest |direction.y| that still counts as crossing the plane
const parallelEpsilon = 1e-5

// Plane is the infinite xz plane (y = 0) in object space
type Plane struct {
	shapeBase
}

// NewPlane creates a plane with the identity transform and default material
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// Intersect returns the single crossing of the plane, or none for parallel rays
func (p *Plane) Intersect(ray core.Ray) Intersections {
	local := p.objectRay(ray)
	if math32.Abs(local.Direction.Y) < parallelEpsilon {
		return nil
	}
	t := -local.Origin.Y / local.Direction.Y
	return Intersections{NewIntersection(p, t)}
}

// NormalAt returns the plane's up vector mapped to world space
func (p *Plane) NormalAt(worldPoint core.Point) core.Vector {
	return p.worldNormal(core.NewVector(0, 1, 0))
}
