// Package tensor provides the minimal numeric-array support the layer
// packages need: a flat float64-backed n-dimensional array with shape
// bookkeeping, elementwise and matrix multiplication, and row-broadcast
// addition of a bias vector. It is deliberately not a general tensor
// library.
package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is wrapped by every operation that rejects its operands
// because of incompatible shapes. Callers detect it with errors.Is.
var ErrShapeMismatch = errors.New("tensor: shape mismatch")

// Tensor is an n-dimensional array backed by a flat row-major []float64.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4})
//	t.Set(1.5, 2, 0)
//	v := t.At(2, 0)
type Tensor struct {
	data  []float64
	shape Shape
}

// New allocates a zero-filled tensor of the given shape.
// Panics if the shape has a non-positive dimension; use FromSlice for
// fallible construction from external data.
func New(shape ...int) *Tensor {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return &Tensor{
		data:  make([]float64, s.NumElements()),
		shape: s.Clone(),
	}
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	t := New(shape...)
	copy(t.data, data)
	return t, nil
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return New(shape...)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	t := New(shape...)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the tensor's backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	clone := New(t.shape...)
	copy(clone.data, t.data)
	return clone
}

// Reshape returns a tensor sharing the same data with a different shape.
// The new shape must describe the same number of elements.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != t.NumElements() {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShapeMismatch, t.shape, s)
	}
	return &Tensor{data: t.data, shape: s.Clone()}, nil
}

// Equal reports whether two tensors have the same shape and exactly the
// same element values.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v of %d elements", t.shape, t.NumElements())
}
