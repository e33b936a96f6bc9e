package core

import "github.com/chewxy/math32"

// Vector is a direction in space (a tuple with w=0)
type Vector struct {
	X, Y, Z float32
}

// NewVector creates a new Vector
func NewVector(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Tuple returns the homogeneous form of the vector
func (v Vector) Tuple() Tuple {
	return Tuple{v.X, v.Y, v.Z, 0}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float32) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(scalar float32) Vector {
	return v.Multiply(1 / scalar)
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the magnitude of the vector
func (v Vector) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and is returned unchanged.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return v.Divide(length)
}

// Reflect mirrors v about normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Apply returns m·v with w forced back to zero
func (v Vector) Apply(m Matrix) Vector {
	t := m.MultiplyTuple(v.Tuple())
	return Vector{t.X, t.Y, t.Z}
}

// Near reports whether every component is within eps of other
func (v Vector) Near(other Vector, eps float32) bool {
	return NearFloat(v.X, other.X, eps) &&
		NearFloat(v.Y, other.Y, eps) &&
		NearFloat(v.Z, other.Z, eps)
}
