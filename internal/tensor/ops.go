package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MatMul returns a·b for rank-2 tensors: (M, K) @ (K, N) → (M, N).
// The multiplication itself is delegated to gonum's BLAS-backed mat.Dense.
func MatMul(a, b *Tensor) (*Tensor, error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, fmt.Errorf("%w: MatMul requires rank-2 tensors, got %v and %v",
			ErrShapeMismatch, a.shape, b.shape)
	}
	m, k := a.shape[0], a.shape[1]
	k2, n := b.shape[0], b.shape[1]
	if k != k2 {
		return nil, fmt.Errorf("%w: inner dimensions must match: %d vs %d",
			ErrShapeMismatch, k, k2)
	}

	out := New(m, n)
	// Row-major flat data wraps directly into gonum matrices (zero-copy).
	am := mat.NewDense(m, k, a.data)
	bm := mat.NewDense(k2, n, b.data)
	om := mat.NewDense(m, n, out.data)
	om.Mul(am, bm)
	return out, nil
}

// Add returns a+b elementwise. One broadcast case is supported: if b is a
// rank-1 vector whose length equals the trailing dimension of rank-2 a, b is
// added to every row of a (bias broadcasting).
func Add(a, b *Tensor) (*Tensor, error) {
	if a.shape.Equal(b.shape) {
		out := a.Clone()
		floats.Add(out.data, b.data)
		return out, nil
	}
	if a.Rank() == 2 && b.Rank() == 1 && b.shape[0] == a.shape[1] {
		out := a.Clone()
		cols := a.shape[1]
		for i := 0; i < a.shape[0]; i++ {
			floats.Add(out.data[i*cols:(i+1)*cols], b.data)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: cannot add %v and %v", ErrShapeMismatch, a.shape, b.shape)
}

// Mul returns the elementwise (Hadamard) product of same-shaped tensors.
func Mul(a, b *Tensor) (*Tensor, error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("%w: cannot multiply %v and %v elementwise",
			ErrShapeMismatch, a.shape, b.shape)
	}
	out := a.Clone()
	floats.Mul(out.data, b.data)
	return out, nil
}
