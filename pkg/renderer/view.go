package renderer

import "github.com/df07/go-phong-raytracer/pkg/core"

// ViewTransform orients the world relative to an eye at from, looking at to,
// with up giving the approximate upward direction
func ViewTransform(from, to core.Point, up core.Vector) core.Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := core.NewMatrix([][]float32{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})

	return orientation.Multiply(core.Translation(-from.X, -from.Y, -from.Z))
}
