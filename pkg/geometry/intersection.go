package geometry

import (
	"cmp"
	"slices"
)

// Intersection records where a ray crossed a shape. It references the shape
// rather than owning it.
type Intersection struct {
	Object Shape
	T      float32
}

// NewIntersection creates a new intersection
func NewIntersection(object Shape, t float32) Intersection {
	return Intersection{Object: object, T: t}
}

// Intersections is a list of intersections along one ray
type Intersections []Intersection

// Sort orders the intersections by ascending t. Equal t values keep their
// relative order.
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Hit returns the intersection with the smallest strictly positive t.
// Intersections at or behind the ray origin are never selected.
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}
