// Copyright 2026 Beras Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/degeneratorL/beras/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is an n-dimensional array backed by a flat row-major []float64.
type Tensor = tensor.Tensor

// ErrShapeMismatch is wrapped by every operation that rejects its operands
// because of incompatible shapes.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// New allocates a zero-filled tensor of the given shape.
func New(shape ...int) *Tensor {
	return tensor.New(shape...)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// MatMul returns a·b for rank-2 tensors: (M, K) @ (K, N) → (M, N).
func MatMul(a, b *Tensor) (*Tensor, error) {
	return tensor.MatMul(a, b)
}

// Add returns a+b elementwise, broadcasting a rank-1 b across the rows of a
// rank-2 a.
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Mul returns the elementwise (Hadamard) product of same-shaped tensors.
func Mul(a, b *Tensor) (*Tensor, error) {
	return tensor.Mul(a, b)
}
