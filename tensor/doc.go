// Copyright 2025 The SystemML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides matrix helpers for the optimizers in this module.
//
// Matrices are gonum *mat.Dense values. This package adds a 2-D Shape type,
// constructors, and the ShapeMismatch error reported by every update rule.
//
// Example:
//
//	x := tensor.MustFromRows([][]float64{{1, 2}, {3, 4}})
//	v := tensor.ZerosLike(x)
//	fmt.Println(tensor.ShapeOf(v)) // (2, 2)
package tensor
