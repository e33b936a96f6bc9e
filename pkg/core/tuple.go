package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Tuple is a homogeneous 4-component value. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float32
}

// NewTuple creates a new Tuple
func NewTuple(x, y, z, w float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// IsPoint reports whether the tuple is tagged as a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is tagged as a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// AsPoint converts the tuple to a Point, failing if w != 1
func (t Tuple) AsPoint() (Point, error) {
	if !t.IsPoint() {
		return Point{}, fmt.Errorf("%w: w=%g", ErrNotPoint, t.W)
	}
	return Point{X: t.X, Y: t.Y, Z: t.Z}, nil
}

// AsVector converts the tuple to a Vector, failing if w != 0
func (t Tuple) AsVector() (Vector, error) {
	if !t.IsVector() {
		return Vector{}, fmt.Errorf("%w: w=%g", ErrNotVector, t.W)
	}
	return Vector{X: t.X, Y: t.Y, Z: t.Z}, nil
}

// Add returns the component-wise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float32) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float32) Tuple {
	return t.Multiply(1 / scalar)
}

// Dot returns the four-component dot product
func (t Tuple) Dot(other Tuple) float32 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Length returns the magnitude of the tuple
func (t Tuple) Length() float32 {
	return math32.Sqrt(t.Dot(t))
}

// Normalize returns the tuple divided by its length. A zero tuple stays zero.
func (t Tuple) Normalize() Tuple {
	length := t.Length()
	if length == 0 {
		return Tuple{}
	}
	return t.Divide(length)
}

// Column returns the tuple as a 4x1 matrix
func (t Tuple) Column() Matrix {
	return NewMatrix([][]float32{{t.X}, {t.Y}, {t.Z}, {t.W}})
}

// Apply returns m·t
func (t Tuple) Apply(m Matrix) Tuple {
	return m.MultiplyTuple(t)
}

// Near reports whether every component is within eps of other
func (t Tuple) Near(other Tuple, eps float32) bool {
	return NearFloat(t.X, other.X, eps) &&
		NearFloat(t.Y, other.Y, eps) &&
		NearFloat(t.Z, other.Z, eps) &&
		NearFloat(t.W, other.W, eps)
}
