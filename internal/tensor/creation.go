package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Zeros creates a matrix of the given shape filled with zeros.
//
// An empty shape yields an empty matrix. Zeros panics on negative
// dimensions.
//
// Example:
//
//	v := tensor.Zeros(tensor.Shape{Rows: 3, Cols: 4})
func Zeros(shape Shape) *mat.Dense {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	if shape.IsEmpty() {
		return &mat.Dense{}
	}
	// mat.NewDense zero-fills when data is nil.
	return mat.NewDense(shape.Rows, shape.Cols, nil)
}

// ZerosLike creates a zero matrix with the shape of m.
func ZerosLike(m mat.Matrix) *mat.Dense {
	return Zeros(ShapeOf(m))
}

// Full creates a matrix filled with a specific value.
//
// Example:
//
//	m := tensor.Full(tensor.Shape{Rows: 2, Cols: 2}, 0.5)
func Full(shape Shape, value float64) *mat.Dense {
	m := Zeros(shape)
	if shape.IsEmpty() {
		return m
	}
	raw := m.RawMatrix()
	for i := range raw.Data {
		raw.Data[i] = value
	}
	return m
}

// FromRows creates a matrix from row slices. The data is copied.
//
// Returns ErrRaggedRows if the rows differ in length.
//
// Example:
//
//	x, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &mat.Dense{}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrRaggedRows, "row %d has %d entries, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows [][]float64) *mat.Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Raw returns strided row-major storage for m.
//
// Matrices implementing mat.RawMatrixer are returned without copying.
// Anything else (transposed or custom views) is copied into a new dense
// buffer first. Empty matrices yield a zero blas64.General.
func Raw(m mat.Matrix) blas64.General {
	if ShapeOf(m).IsEmpty() {
		return blas64.General{}
	}
	if rm, ok := m.(mat.RawMatrixer); ok {
		return rm.RawMatrix()
	}
	return mat.DenseCopyOf(m).RawMatrix()
}
