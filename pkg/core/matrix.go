package core

import (
	"fmt"
	"math"
	"strings"
)

// singularTolerance is the smallest pivot the elimination accepts, relative
// to n times the largest magnitude in the pivot's original column. Entries
// are stored in float32, so pivots below this are rounding noise.
const singularTolerance = 1e-6

// Matrix is a fixed-size rows x cols grid of float32 values.
// Matrices are immutable: every operation returns a new matrix.
type Matrix struct {
	rows, cols int
	data       []float32 // row-major
}

// NewMatrix creates a matrix from row slices. All rows must have the same length.
func NewMatrix(rows [][]float32) Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("core: matrix must have at least one row and one column")
	}
	m := Zeros(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.cols {
			panic(fmt.Sprintf("core: row %d has %d columns, want %d", r, len(row), m.cols))
		}
		copy(m.data[r*m.cols:], row)
	}
	return m
}

// Zeros creates a rows x cols matrix of zeros
func Zeros(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float32, rows*cols)}
}

// Identity creates the n x n identity matrix
func Identity(n int) Matrix {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Diagonal creates a square matrix with values on the diagonal
func Diagonal(values ...float32) Matrix {
	n := len(values)
	m := Zeros(n, n)
	for i, v := range values {
		m.data[i*n+i] = v
	}
	return m
}

// Rows returns the number of rows
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m Matrix) Cols() int { return m.cols }

// At returns the element at (row, col)
func (m Matrix) At(row, col int) float32 {
	return m.data[row*m.cols+col]
}

// Equal reports exact element-wise equality
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// Near reports whether every element is within eps of other
func (m Matrix) Near(other Matrix, eps float32) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if !NearFloat(v, other.data[i], eps) {
			return false
		}
	}
	return true
}

// Multiply returns m·other. Panics if m.Cols() != other.Rows().
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("core: cannot multiply %dx%d by %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	res := Zeros(m.rows, other.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < other.cols; col++ {
			var sum float32
			for i := 0; i < m.cols; i++ {
				sum += m.data[row*m.cols+i] * other.data[i*other.cols+col]
			}
			res.data[row*res.cols+col] = sum
		}
	}
	return res
}

// MultiplyTuple returns m·t with t treated as a 4x1 column
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.rows != 4 || m.cols != 4 {
		panic(fmt.Sprintf("core: cannot multiply %dx%d matrix by a tuple", m.rows, m.cols))
	}
	return m.Multiply(t.Column()).Tuple()
}

// Tuple converts a 4x1 column matrix back to a tuple
func (m Matrix) Tuple() Tuple {
	if m.rows != 4 || m.cols != 1 {
		panic(fmt.Sprintf("core: %dx%d matrix is not a tuple column", m.rows, m.cols))
	}
	return Tuple{m.data[0], m.data[1], m.data[2], m.data[3]}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	res := Zeros(m.cols, m.rows)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			res.data[col*res.cols+row] = m.data[row*m.cols+col]
		}
	}
	return res
}

// Determinant returns the determinant of a square matrix.
// Matrices the elimination rejects as singular report 0.
func (m Matrix) Determinant() float32 {
	if m.rows != m.cols {
		panic(fmt.Sprintf("core: determinant of %dx%d matrix: %v", m.rows, m.cols, ErrNotSquare))
	}
	_, det, ok := m.gaussJordan(false)
	if !ok {
		return 0
	}
	return float32(det)
}

// IsInvertible reports whether Inverse would succeed
func (m Matrix) IsInvertible() bool {
	if m.rows != m.cols {
		return false
	}
	_, _, ok := m.gaussJordan(false)
	return ok
}

// Inverse returns the inverse of a square matrix
func (m Matrix) Inverse() (Matrix, error) {
	if m.rows != m.cols {
		return Matrix{}, fmt.Errorf("inverse of %dx%d matrix: %w", m.rows, m.cols, ErrNotSquare)
	}
	aug, _, ok := m.gaussJordan(true)
	if !ok {
		return Matrix{}, ErrSingularMatrix
	}

	n := m.rows
	res := Zeros(n, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			res.data[row*n+col] = float32(aug[row][n+col])
		}
	}
	return res, nil
}

// gaussJordan reduces m (augmented with the identity when withInverse is set)
// using partial pivoting in float64. It returns the reduced rows, the
// determinant as the signed product of pivots, and false if m is singular.
func (m Matrix) gaussJordan(withInverse bool) ([][]float64, float64, bool) {
	n := m.rows
	width := n
	if withInverse {
		width = 2 * n
	}

	aug := make([][]float64, n)
	for row := range aug {
		aug[row] = make([]float64, width)
		for col := 0; col < n; col++ {
			aug[row][col] = float64(m.data[row*n+col])
		}
		if withInverse {
			aug[row][n+row] = 1
		}
	}

	colMax := make([]float64, n)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			colMax[col] = math.Max(colMax[col], math.Abs(aug[row][col]))
		}
	}

	det := 1.0
	for col := 0; col < n; col++ {
		pivot := col
		best := math.Abs(aug[col][col])
		for row := col + 1; row < n; row++ {
			if v := math.Abs(aug[row][col]); v > best {
				pivot, best = row, v
			}
		}
		if best == 0 || best < singularTolerance*float64(n)*colMax[col] {
			return nil, 0, false
		}
		if pivot != col {
			aug[pivot], aug[col] = aug[col], aug[pivot]
			det = -det
		}

		p := aug[col][col]
		det *= p
		scale := 1 / p
		for j := col; j < width; j++ {
			aug[col][j] *= scale
		}

		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := aug[row][col]
			if factor == 0 {
				continue
			}
			for j := col; j < width; j++ {
				aug[row][j] -= factor * aug[col][j]
			}
		}
	}

	return aug, det, true
}

// String formats the matrix one row per line
func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < m.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%v", m.data[row*m.cols:(row+1)*m.cols])
	}
	return sb.String()
}
