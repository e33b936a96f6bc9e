package renderer

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from, to core.Point
		up       core.Vector
		expected core.Matrix
	}{
		{
			name:     "default orientation",
			from:     core.NewPoint(0, 0, 0),
			to:       core.NewPoint(0, 0, -1),
			up:       core.NewVector(0, 1, 0),
			expected: core.Identity(4),
		},
		{
			name:     "looking in positive z",
			from:     core.NewPoint(0, 0, 0),
			to:       core.NewPoint(0, 0, 1),
			up:       core.NewVector(0, 1, 0),
			expected: core.Scaling(-1, 1, -1),
		},
		{
			name:     "moves the world",
			from:     core.NewPoint(0, 0, 8),
			to:       core.NewPoint(0, 0, 0),
			up:       core.NewVector(0, 1, 0),
			expected: core.Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: core.NewPoint(1, 3, 2),
			to:   core.NewPoint(4, -2, 8),
			up:   core.NewVector(1, 1, 0),
			expected: core.NewMatrix([][]float32{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0.00000},
				{0, 0, 0, 1},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ViewTransform(tt.from, tt.to, tt.up)
			if !got.Near(tt.expected, 1e-4) {
				t.Errorf("Expected\n%v\ngot\n%v", tt.expected, got)
			}
		})
	}
}
