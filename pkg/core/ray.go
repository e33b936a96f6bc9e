package core

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float32) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Apply transforms the origin as a point and the direction as a vector
func (r Ray) Apply(m Matrix) Ray {
	return Ray{Origin: r.Origin.Apply(m), Direction: r.Direction.Apply(m)}
}
