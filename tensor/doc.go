// Copyright 2026 Beras Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the minimal numeric arrays used by Beras layers.
//
// # Overview
//
// Tensors are flat, row-major float64 arrays with a shape. The package
// covers exactly what the layer primitives need:
//   - creation (New, FromSlice, Zeros, Ones, Full)
//   - elementwise addition and multiplication
//   - rank-2 matrix multiplication (backed by gonum)
//   - broadcasting a bias vector across the rows of a matrix
//
// It is intentionally not a general tensor library.
//
// # Basic Usage
//
//	import "github.com/degeneratorL/beras/tensor"
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    w := tensor.Ones(tensor.Shape{2, 3})
//
//	    y, _ := tensor.MatMul(x, w) // Shape: [2, 3]
//	    _ = y
//	}
//
// # Errors
//
// Operations on incompatible operands return errors wrapping
// ErrShapeMismatch; detect them with errors.Is. Index accessors (At, Set)
// panic on out-of-bounds indices, which are programmer errors.
package tensor
