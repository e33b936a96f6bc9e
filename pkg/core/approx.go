package core

import "github.com/chewxy/math32"

const (
	// DefaultEpsilon is the tolerance used for near-equality of geometric values
	DefaultEpsilon float32 = 1e-5

	// InverseEpsilon is the looser tolerance for results derived from a
	// determinant or inverse, where float error accumulates over O(N³) steps
	InverseEpsilon float32 = 1e-3
)

// Approx is implemented by every value that supports epsilon comparison
type Approx[T any] interface {
	Near(other T, eps float32) bool
}

// NearFloat reports whether a and b differ by less than eps
func NearFloat(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}

// ApproxEqual compares two values with DefaultEpsilon
func ApproxEqual[T Approx[T]](a, b T) bool {
	return a.Near(b, DefaultEpsilon)
}
