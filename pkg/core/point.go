package core

// Point is a position in space (a tuple with w=1)
type Point struct {
	X, Y, Z float32
}

// NewPoint creates a new Point
func NewPoint(x, y, z float32) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin returns the point (0, 0, 0)
func Origin() Point {
	return Point{}
}

// Tuple returns the homogeneous form of the point
func (p Point) Tuple() Tuple {
	return Tuple{p.X, p.Y, p.Z, 1}
}

// Add moves the point along a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVector moves the point against a vector
func (p Point) SubtractVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Apply returns m·p. The result keeps the point tag; m is assumed affine.
func (p Point) Apply(m Matrix) Point {
	t := m.MultiplyTuple(p.Tuple())
	return Point{t.X, t.Y, t.Z}
}

// Near reports whether every coordinate is within eps of other
func (p Point) Near(other Point, eps float32) bool {
	return NearFloat(p.X, other.X, eps) &&
		NearFloat(p.Y, other.Y, eps) &&
		NearFloat(p.Z, other.Z, eps)
}
