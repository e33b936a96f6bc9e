package core

import "errors"

var (
	// ErrSingularMatrix is returned when an inverse is requested for a non-invertible matrix
	ErrSingularMatrix = errors.New("matrix is not invertible")

	// ErrNotSquare is returned when a square-only operation is requested on a rectangular matrix
	ErrNotSquare = errors.New("matrix is not square")

	// ErrNotPoint is returned when a tuple with w != 1 is converted to a Point
	ErrNotPoint = errors.New("tuple is not a point")

	// ErrNotVector is returned when a tuple with w != 0 is converted to a Vector
	ErrNotVector = errors.New("tuple is not a vector")
)
