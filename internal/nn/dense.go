package nn

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/degeneratorL/beras/internal/tensor"
)

// Dense implements a fully connected (affine) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch_size, input_size], or a single
//     rank-1 sample of length input_size (promoted to a batch of one)
//   - W is the weight matrix with shape [input_size, output_size]
//   - b is the bias vector with shape [output_size]
//   - y is the output with shape [batch_size, output_size]
//
// Both parameters are created at construction via the selected Initializer
// and keep their shapes for the layer's lifetime.
//
// Example:
//
//	layer, err := nn.NewDense(784, 128, nn.Xavier, nil)
//	out, cache, err := layer.Forward(input)
//	grads, err := layer.WeightGradients(cache)
type Dense struct {
	inputSize  int
	outputSize int
	weight     *Parameter // [input_size, output_size]
	bias       *Parameter // [output_size]
}

// Dense satisfies the Node contract.
var _ Node = (*Dense)(nil)

// NewDense creates a Dense layer with W drawn per init and b zeroed.
//
// src seeds the weight draws; nil uses the process-global source. A size
// that is not positive or an initializer outside the recognized set fails
// construction atomically: no Parameter is created.
func NewDense(inputSize, outputSize int, init Initializer, src rand.Source) (*Dense, error) {
	if inputSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("nn: dense layer sizes must be positive, got input %d, output %d",
			inputSize, outputSize)
	}

	w, b, err := init.build(inputSize, outputSize, src)
	if err != nil {
		return nil, err
	}

	return &Dense{
		inputSize:  inputSize,
		outputSize: outputSize,
		weight:     NewParameter("weight", w),
		bias:       NewParameter("bias", b),
	}, nil
}

// NewDenseNamed is like NewDense but resolves the initializer from its
// case-insensitive configuration name (e.g. "xavier uniform").
func NewDenseNamed(inputSize, outputSize int, initializer string, src rand.Source) (*Dense, error) {
	init, err := ParseInitializer(initializer)
	if err != nil {
		return nil, err
	}
	return NewDense(inputSize, outputSize, init, src)
}

// Forward computes y = x @ W + b.
//
// x is either a rank-1 sample of length input_size, promoted to shape
// [1, input_size] before computation, or a rank-2 batch of shape
// [batch_size, input_size]. The output is always rank-2
// [batch_size, output_size], with the bias broadcast across the batch.
//
// The returned Cache retains the (possibly promoted) input for the gradient
// queries belonging to this call.
func (d *Dense) Forward(x *tensor.Tensor) (*tensor.Tensor, *Cache, error) {
	promoted := false
	switch x.Rank() {
	case 1:
		if x.Shape()[0] != d.inputSize {
			return nil, nil, fmt.Errorf("%w: dense forward expected input of length %d, got %d",
				tensor.ErrShapeMismatch, d.inputSize, x.Shape()[0])
		}
		x2, err := x.Reshape(1, d.inputSize)
		if err != nil {
			return nil, nil, err
		}
		x = x2
		promoted = true
	case 2:
		if x.Shape()[1] != d.inputSize {
			return nil, nil, fmt.Errorf("%w: dense forward expected %d input features, got %d",
				tensor.ErrShapeMismatch, d.inputSize, x.Shape()[1])
		}
	default:
		return nil, nil, fmt.Errorf("%w: dense forward expected rank-1 or rank-2 input, got shape %v",
			tensor.ErrShapeMismatch, x.Shape())
	}

	out, err := tensor.MatMul(x, d.weight.Tensor())
	if err != nil {
		return nil, nil, err
	}
	out, err = tensor.Add(out, d.bias.Tensor())
	if err != nil {
		return nil, nil, err
	}

	return out, &Cache{input: x, promoted: promoted}, nil
}

// InputGradients returns the local derivative factor of the output with
// respect to the forward input: the weight matrix W itself, with shape
// [input_size, output_size], with no transpose and no batch dimension. The
// chain-rule engine owns the orientation when combining it with the
// upstream gradient.
func (d *Dense) InputGradients(c *Cache) ([]*tensor.Tensor, error) {
	if !c.valid() {
		return nil, ErrNoForward
	}
	return []*tensor.Tensor{d.weight.Tensor()}, nil
}

// WeightGradients returns the local derivatives of the output with respect
// to the owned parameters, in Weights order: [weight gradient, bias gradient].
//
// For a single-sample forward (rank-1 input) the weight gradient has shape
// [input_size, output_size] with every column equal to x, since
// ∂y_j/∂W[k,j] = x[k] for any j. For a batched forward it has shape
// [batch_size, input_size, output_size], applying the same rule per sample.
// The bias gradient is the all-ones vector of length output_size in both
// cases, never expanded by batch size. The engine relies on this asymmetry.
func (d *Dense) WeightGradients(c *Cache) ([]*tensor.Tensor, error) {
	if !c.valid() {
		return nil, ErrNoForward
	}
	x := c.input
	if x.Rank() != 2 || x.Shape()[1] != d.inputSize {
		return nil, fmt.Errorf("%w: cached input %v does not fit dense layer with %d input features",
			tensor.ErrShapeMismatch, x.Shape(), d.inputSize)
	}

	batchSize := x.Shape()[0]

	var wGrad *tensor.Tensor
	if c.promoted {
		wGrad = tensor.New(d.inputSize, d.outputSize)
		data := wGrad.Data()
		for k := 0; k < d.inputSize; k++ {
			xk := x.At(0, k)
			for j := 0; j < d.outputSize; j++ {
				data[k*d.outputSize+j] = xk
			}
		}
	} else {
		wGrad = tensor.New(batchSize, d.inputSize, d.outputSize)
		data := wGrad.Data()
		for i := 0; i < batchSize; i++ {
			base := i * d.inputSize * d.outputSize
			for k := 0; k < d.inputSize; k++ {
				xik := x.At(i, k)
				for j := 0; j < d.outputSize; j++ {
					data[base+k*d.outputSize+j] = xik
				}
			}
		}
	}

	bGrad := tensor.Ones(tensor.Shape{d.outputSize})

	return []*tensor.Tensor{wGrad, bGrad}, nil
}

// Weights returns the trainable parameters in stable order: [weight, bias].
func (d *Dense) Weights() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}

// Weight returns the weight parameter.
func (d *Dense) Weight() *Parameter {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense) Bias() *Parameter {
	return d.bias
}

// InputSize returns the number of input features (fan-in).
func (d *Dense) InputSize() int {
	return d.inputSize
}

// OutputSize returns the number of output features (fan-out).
func (d *Dense) OutputSize() int {
	return d.outputSize
}

// StateDict returns a map of parameter names to their tensors.
// The tensors are shared, not copied.
func (d *Dense) StateDict() map[string]*tensor.Tensor {
	return map[string]*tensor.Tensor{
		"weight": d.weight.Tensor(),
		"bias":   d.bias.Tensor(),
	}
}

// LoadStateDict loads parameter values from a state dictionary.
func (d *Dense) LoadStateDict(stateDict map[string]*tensor.Tensor) error {
	weight, ok := stateDict["weight"]
	if !ok {
		return fmt.Errorf("nn: missing weight in state dict")
	}
	expectedWeightShape := tensor.Shape{d.inputSize, d.outputSize}
	if !weight.Shape().Equal(expectedWeightShape) {
		return fmt.Errorf("%w: weight shape %v, expected %v",
			tensor.ErrShapeMismatch, weight.Shape(), expectedWeightShape)
	}

	bias, ok := stateDict["bias"]
	if !ok {
		return fmt.Errorf("nn: missing bias in state dict")
	}
	expectedBiasShape := tensor.Shape{d.outputSize}
	if !bias.Shape().Equal(expectedBiasShape) {
		return fmt.Errorf("%w: bias shape %v, expected %v",
			tensor.ErrShapeMismatch, bias.Shape(), expectedBiasShape)
	}

	copy(d.weight.Tensor().Data(), weight.Data())
	copy(d.bias.Tensor().Data(), bias.Data())
	return nil
}
