package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// World is the set of objects and lights a ray is traced against
type World struct {
	Objects []geometry.Shape
	Lights  []lights.PointLight
}

// NewWorld creates an empty world with no objects and no lights
func NewWorld() *World {
	return &World{
		Objects: make([]geometry.Shape, 0),
		Lights:  make([]lights.PointLight, 0),
	}
}

// AddObject appends a shape to the world
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// AddLight appends a point light to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// Intersect returns the intersections of every object with the ray, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// ShadeHit sums the Phong contribution of every light at the hit. A world
// without lights shades everything black.
func (w *World) ShadeHit(comps Computations) core.Color {
	result := core.Black()
	m := comps.Object.Material()
	for _, light := range w.Lights {
		result = result.Add(material.Lighting(m, light, comps.Point, comps.Eye, comps.Normal))
	}
	return result
}

// ColorAt traces a ray into the world, returning black when nothing is hit
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black()
	}
	return w.ShadeHit(PrepareComputations(hit, ray))
}
