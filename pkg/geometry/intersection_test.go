package geometry

import "testing"

func intersectionsAt(s Shape, ts ...float32) Intersections {
	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = NewIntersection(s, t)
	}
	return xs
}

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name     string
		ts       []float32
		expected float32
		found    bool
	}{
		{"all positive", []float32{1, 2}, 1, true},
		{"some negative", []float32{-1, 1}, 1, true},
		{"all negative", []float32{-2, -1}, 0, false},
		{"unsorted", []float32{5, 7, -3, 2}, 2, true},
		{"zero is not a hit", []float32{0, 3}, 3, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := intersectionsAt(s, tt.ts...).Hit()
			if ok != tt.found {
				t.Fatalf("Expected found=%t, got %t", tt.found, ok)
			}
			if ok && hit.T != tt.expected {
				t.Errorf("Expected hit at t=%f, got t=%f", tt.expected, hit.T)
			}
			if ok && hit.Object != Shape(s) {
				t.Error("Hit should reference the sphere")
			}
		})
	}
}

func TestIntersections_SortIsStable(t *testing.T) {
	a := NewSphere()
	b := NewSphere()
	xs := Intersections{
		NewIntersection(a, 6),
		NewIntersection(a, 2),
		NewIntersection(b, 2),
		NewIntersection(b, -1),
	}
	xs.Sort()

	expected := []float32{-1, 2, 2, 6}
	for i, want := range expected {
		if xs[i].T != want {
			t.Errorf("Position %d: expected t=%f, got t=%f", i, want, xs[i].T)
		}
	}
	if xs[1].Object != Shape(a) || xs[2].Object != Shape(b) {
		t.Error("Equal t values should keep their original order")
	}
}
