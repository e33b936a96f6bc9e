package core

import "github.com/chewxy/math32"

// Transformable is implemented by geometry that can be mapped by a 4x4 matrix
type Transformable[T any] interface {
	Apply(m Matrix) T
}

// Transform applies each matrix to g in the order given
func Transform[T Transformable[T]](g T, matrices ...Matrix) T {
	for _, m := range matrices {
		g = g.Apply(m)
	}
	return g
}

// Translation returns a matrix that moves points by (x, y, z) and leaves vectors unchanged
func Translation(x, y, z float32) Matrix {
	return NewMatrix([][]float32{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scaling returns a matrix that scales along each axis
func Scaling(x, y, z float32) Matrix {
	return Diagonal(x, y, z, 1)
}

// RotationX returns a rotation of r radians about the x axis
func RotationX(r float32) Matrix {
	sin, cos := math32.Sin(r), math32.Cos(r)
	return NewMatrix([][]float32{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationY returns a rotation of r radians about the y axis
func RotationY(r float32) Matrix {
	sin, cos := math32.Sin(r), math32.Cos(r)
	return NewMatrix([][]float32{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ returns a rotation of r radians about the z axis
func RotationZ(r float32) Matrix {
	sin, cos := math32.Sin(r), math32.Cos(r)
	return NewMatrix([][]float32{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing moves each coordinate in proportion to the other two.
// xy is the amount x moves in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float32) Matrix {
	return NewMatrix([][]float32{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// Then returns t·m, so t is applied after everything already in m
func (m Matrix) Then(t Matrix) Matrix {
	return t.Multiply(m)
}

// Translate chains a translation after m
func (m Matrix) Translate(x, y, z float32) Matrix {
	return m.Then(Translation(x, y, z))
}

// Scale chains a scaling after m
func (m Matrix) Scale(x, y, z float32) Matrix {
	return m.Then(Scaling(x, y, z))
}

// RotateX chains a rotation about x after m
func (m Matrix) RotateX(r float32) Matrix {
	return m.Then(RotationX(r))
}

// RotateY chains a rotation about y after m
func (m Matrix) RotateY(r float32) Matrix {
	return m.Then(RotationY(r))
}

// RotateZ chains a rotation about z after m
func (m Matrix) RotateZ(r float32) Matrix {
	return m.Then(RotationZ(r))
}

// Shear chains a shear after m
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float32) Matrix {
	return m.Then(Shearing(xy, xz, yx, yz, zx, zy))
}
