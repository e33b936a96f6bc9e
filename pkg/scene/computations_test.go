package scene

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

func TestPrepareComputations(t *testing.T) {
	tests := []struct {
		name   string
		ray    core.Ray
		t      float32
		point  core.Point
		eye    core.Vector
		normal core.Vector
		inside bool
	}{
		{
			name:   "hit on the outside",
			ray:    core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)),
			t:      4,
			point:  core.NewPoint(0, 0, -1),
			eye:    core.NewVector(0, 0, -1),
			normal: core.NewVector(0, 0, -1),
			inside: false,
		},
		{
			name:   "hit on the inside",
			ray:    core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1)),
			t:      1,
			point:  core.NewPoint(0, 0, 1),
			eye:    core.NewVector(0, 0, -1),
			normal: core.NewVector(0, 0, -1), // Inverted
			inside: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := geometry.NewSphere()
			comps := PrepareComputations(geometry.NewIntersection(shape, tt.t), tt.ray)

			if comps.T != tt.t {
				t.Errorf("Expected t=%v, got %v", tt.t, comps.T)
			}
			if comps.Object != geometry.Shape(shape) {
				t.Error("Expected computations to reference the hit object")
			}
			if !comps.Point.Near(tt.point, core.DefaultEpsilon) {
				t.Errorf("Expected point %v, got %v", tt.point, comps.Point)
			}
			if !comps.Eye.Near(tt.eye, core.DefaultEpsilon) {
				t.Errorf("Expected eye %v, got %v", tt.eye, comps.Eye)
			}
			if !comps.Normal.Near(tt.normal, core.DefaultEpsilon) {
				t.Errorf("Expected normal %v, got %v", tt.normal, comps.Normal)
			}
			if comps.Inside != tt.inside {
				t.Errorf("Expected inside=%v, got %v", tt.inside, comps.Inside)
			}
		})
	}
}
