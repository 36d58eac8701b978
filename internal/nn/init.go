package nn

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/degeneratorL/beras/internal/tensor"
)

// ErrUnknownInitializer is wrapped by construction errors caused by an
// initializer name or kind outside the recognized set.
var ErrUnknownInitializer = errors.New("nn: unknown initializer")

// Initializer is a closed enumeration of weight-initialization strategies.
//
// Every strategy produces a weight matrix per its distribution and an
// all-zero bias vector. The variance-scaled strategies (Xavier, Kaiming and
// their uniform variants) keep activation variance stable across layers,
// which helps against exploding or vanishing gradients.
type Initializer int

const (
	// Zero fills the weights with zeros. Mostly useful for tests: every
	// weight receives the same gradient update, so real training degenerates.
	Zero Initializer = iota
	// Normal draws weights from N(0, 1).
	Normal
	// Xavier (Glorot) draws from N(0, sqrt(2/(fan_in+fan_out))).
	// Typically used with tanh or sigmoid activations.
	Xavier
	// Kaiming (He) draws from N(0, sqrt(2/fan_in)).
	// Typically used with ReLU activations.
	Kaiming
	// XavierUniform draws from U(-L, L) with L = sqrt(6/(fan_in+fan_out)).
	XavierUniform
	// KaimingUniform draws from U(-L, L) with L = sqrt(6/fan_in).
	KaimingUniform
)

var initializerNames = map[Initializer]string{
	Zero:           "zero",
	Normal:         "normal",
	Xavier:         "xavier",
	Kaiming:        "kaiming",
	XavierUniform:  "xavier uniform",
	KaimingUniform: "kaiming uniform",
}

// String returns the canonical configuration name of the strategy.
func (init Initializer) String() string {
	if name, ok := initializerNames[init]; ok {
		return name
	}
	return fmt.Sprintf("initializer(%d)", int(init))
}

// ParseInitializer maps a case-insensitive configuration name to its
// Initializer kind. Unrecognized names return an error wrapping
// ErrUnknownInitializer that quotes the offending string.
func ParseInitializer(name string) (Initializer, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for init, canonical := range initializerNames {
		if want == canonical {
			return init, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownInitializer, name)
}

// fillFunc fills a flat weight slice in place using the given random source.
type fillFunc func(w []float64, fanIn, fanOut int, src rand.Source)

// initTable maps each strategy to its fill procedure. Resolved once at layer
// construction; an Initializer value outside the table fails construction.
var initTable = map[Initializer]fillFunc{
	Zero: func([]float64, int, int, rand.Source) {},
	Normal: func(w []float64, _, _ int, src rand.Source) {
		fill(w, distuv.Normal{Mu: 0, Sigma: 1, Src: src})
	},
	Xavier: func(w []float64, fanIn, fanOut int, src rand.Source) {
		sigma := math.Sqrt(2.0 / float64(fanIn+fanOut))
		fill(w, distuv.Normal{Mu: 0, Sigma: sigma, Src: src})
	},
	Kaiming: func(w []float64, fanIn, _ int, src rand.Source) {
		sigma := math.Sqrt(2.0 / float64(fanIn))
		fill(w, distuv.Normal{Mu: 0, Sigma: sigma, Src: src})
	},
	XavierUniform: func(w []float64, fanIn, fanOut int, src rand.Source) {
		limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
		fill(w, distuv.Uniform{Min: -limit, Max: limit, Src: src})
	},
	KaimingUniform: func(w []float64, fanIn, _ int, src rand.Source) {
		limit := math.Sqrt(6.0 / float64(fanIn))
		fill(w, distuv.Uniform{Min: -limit, Max: limit, Src: src})
	},
}

func fill(w []float64, dist distuv.Rander) {
	for i := range w {
		w[i] = dist.Rand()
	}
}

// build produces the (W, b) pair for a layer with the given fan-in/fan-out.
// The bias always starts at zero. A nil src falls back to gonum's global
// source; passing an explicit seeded source makes construction reproducible.
func (init Initializer) build(inputSize, outputSize int, src rand.Source) (w, b *tensor.Tensor, err error) {
	fillWeights, ok := initTable[init]
	if !ok {
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownInitializer, init.String())
	}
	w = tensor.New(inputSize, outputSize)
	fillWeights(w.Data(), inputSize, outputSize, src)
	b = tensor.New(outputSize)
	return w, b, nil
}
