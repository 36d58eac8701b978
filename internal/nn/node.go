// Package nn implements the differentiable-node building blocks of Beras:
//   - Node interface: the capability contract the backpropagation engine
//     programs against
//   - Parameter: trainable tensors with an externally written gradient slot
//   - Dense: the fully connected (affine) layer
//   - Initializer: statistically motivated weight-initialization strategies
//
// Design inspired by PyTorch's nn.Module but with explicit error returns
// and an explicit per-call forward cache instead of hidden instance state.
package nn

import (
	"errors"

	"github.com/degeneratorL/beras/internal/tensor"
)

// ErrNoForward is returned by gradient queries that are handed no forward
// cache: local gradients are only defined relative to an input that has
// actually been run through the layer.
var ErrNoForward = errors.New("nn: no cached input (gradient query before forward)")

// Cache carries the input retained by one Forward call for the gradient
// queries that follow it. Each Forward call returns a fresh Cache, so two
// interleaved forward passes through the same layer never clobber each
// other's state.
type Cache struct {
	input    *tensor.Tensor // batch-promoted, always rank-2
	promoted bool           // input arrived rank-1 and was promoted to 1×n
}

// Input returns the retained, batch-promoted input.
func (c *Cache) Input() *tensor.Tensor {
	return c.input
}

// Promoted reports whether the original input was a rank-1 single sample.
func (c *Cache) Promoted() bool {
	return c.promoted
}

func (c *Cache) valid() bool {
	return c != nil && c.input != nil
}

// Node is the capability contract every layer satisfies so the external
// chain-rule engine can treat layers polymorphically.
//
// Call ordering: Forward produces the output together with the Cache that
// the two gradient queries consume. The gradients are local (derivatives
// of this layer's output with respect to its input and parameters); the
// engine combines them with upstream gradients itself.
type Node interface {
	// Forward computes the layer output for x. It is a pure function of x
	// and the current parameter values; parameters are never mutated.
	Forward(x *tensor.Tensor) (*tensor.Tensor, *Cache, error)

	// InputGradients returns, for each forward input, the local derivative
	// factor of the output with respect to that input.
	InputGradients(c *Cache) ([]*tensor.Tensor, error)

	// WeightGradients returns, for each owned Parameter, the local
	// derivative of the output with respect to that parameter, computed
	// from the cached input. The order matches Weights positionally.
	WeightGradients(c *Cache) ([]*tensor.Tensor, error)

	// Weights returns the owned Parameters in a stable, deterministic
	// order so an optimizer can correlate gradients positionally.
	Weights() []*Parameter
}
