package core

import "testing"

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float32
		expected Point
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := r.Position(tt.t); got != tt.expected {
			t.Errorf("Position(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Apply(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	translated := r.Apply(Translation(3, 4, 5))
	if translated.Origin != NewPoint(4, 6, 8) {
		t.Errorf("Translated origin: got %v", translated.Origin)
	}
	if translated.Direction != NewVector(0, 1, 0) {
		t.Errorf("Translation must not change direction, got %v", translated.Direction)
	}

	scaled := Transform(r, Scaling(2, 3, 4))
	if scaled.Origin != NewPoint(2, 6, 12) {
		t.Errorf("Scaled origin: got %v", scaled.Origin)
	}
	if scaled.Direction != NewVector(0, 3, 0) {
		t.Errorf("Scaled direction: got %v", scaled.Direction)
	}
}
