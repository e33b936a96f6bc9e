package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Intersect returns every intersection of the world-space ray with the shape,
	// in ascending t, including those behind the ray origin
	Intersect(ray core.Ray) Intersections

	// NormalAt returns the unit world-space surface normal at a world-space point
	NormalAt(worldPoint core.Point) core.Vector

	Material() material.Material
	Transform() core.Matrix
}

// shapeBase holds the object-to-world transform shared by every shape,
// with the inverse and inverse-transpose cached when the transform is set
type shapeBase struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform:        core.Identity(4),
		inverse:          core.Identity(4),
		inverseTranspose: core.Identity(4),
		material:         material.NewMaterial(),
	}
}

// Transform returns the object-to-world matrix
func (b *shapeBase) Transform() core.Matrix {
	return b.transform
}

// SetTransform replaces the object-to-world matrix. A singular matrix is
// rejected and the shape keeps its previous transform.
func (b *shapeBase) SetTransform(m core.Matrix) error {
	if m.Rows() != 4 || m.Cols() != 4 {
		return fmt.Errorf("shape transform must be 4x4, got %dx%d", m.Rows(), m.Cols())
	}
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("invalid shape transform: %w", err)
	}
	b.transform = m
	b.inverse = inv
	b.inverseTranspose = inv.Transpose()
	return nil
}

// Material returns the surface material
func (b *shapeBase) Material() material.Material {
	return b.material
}

// SetMaterial replaces the surface material
func (b *shapeBase) SetMaterial(m material.Material) {
	b.material = m
}

// objectRay maps a world-space ray into object space
func (b *shapeBase) objectRay(ray core.Ray) core.Ray {
	return ray.Apply(b.inverse)
}

// objectPoint maps a world-space point into object space
func (b *shapeBase) objectPoint(p core.Point) core.Point {
	return p.Apply(b.inverse)
}

// worldNormal maps an object-space normal to a unit world-space normal
func (b *shapeBase) worldNormal(n core.Vector) core.Vector {
	return n.Apply(b.inverseTranspose).Normalize()
}
