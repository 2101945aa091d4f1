// Copyright 2025 The SystemML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dusenberrymw/systemml/internal/tensor"
)

// Shape represents the dimensions of a 2-D matrix.
type Shape = tensor.Shape

// ShapeMismatchError reports an operand whose shape differs from the required one.
type ShapeMismatchError = tensor.ShapeMismatchError

// Errors.
var (
	// ErrShapeMismatch is matched by every shape error returned from this module.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrRaggedRows is returned by FromRows for rows of unequal length.
	ErrRaggedRows = tensor.ErrRaggedRows
)

// ShapeOf returns the shape of m.
func ShapeOf(m mat.Matrix) Shape {
	return tensor.ShapeOf(m)
}

// Zeros creates a matrix of the given shape filled with zeros.
func Zeros(shape Shape) *mat.Dense {
	return tensor.Zeros(shape)
}

// ZerosLike creates a zero matrix with the shape of m.
func ZerosLike(m mat.Matrix) *mat.Dense {
	return tensor.ZerosLike(m)
}

// Full creates a matrix filled with a specific value.
func Full(shape Shape, value float64) *mat.Dense {
	return tensor.Full(shape, value)
}

// FromRows creates a matrix from row slices.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	return tensor.FromRows(rows)
}

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows [][]float64) *mat.Dense {
	return tensor.MustFromRows(rows)
}
