// Copyright 2026 Beras Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the differentiable layer primitives of Beras.
//
// # Overview
//
// The package is built around the Node contract: a layer computes a forward
// pass and answers local-gradient queries that an external backpropagation
// engine combines via the chain rule. Currently it provides:
//   - Node: the capability interface every layer implements
//   - Dense: the fully connected (affine) layer, y = x @ W + b
//   - Parameter: trainable tensors an optimizer updates in place
//   - Initializer: zero/normal/xavier/kaiming strategies and their
//     uniform variants
//
// # Basic Usage
//
//	import (
//	    "github.com/degeneratorL/beras/nn"
//	    "github.com/degeneratorL/beras/tensor"
//	)
//
//	func main() {
//	    layer, _ := nn.NewDense(784, 128, nn.Xavier, nil)
//
//	    x, _ := tensor.FromSlice(pixels, tensor.Shape{32, 784})
//	    out, cache, _ := layer.Forward(x) // Shape: [32, 128]
//
//	    grads, _ := layer.WeightGradients(cache) // [dW, db]
//	    params := layer.Weights()                // [W, b], same order
//	    _, _, _ = out, grads, params
//	}
//
// # Forward caches
//
// Forward returns an explicit Cache holding the batch-promoted input; the
// gradient queries take that Cache as an argument. Because every call gets
// its own Cache, interleaved forward passes through one layer do not
// invalidate each other. Querying gradients with a nil Cache returns
// ErrNoForward.
//
// # Reproducibility
//
// Constructors accept an optional golang.org/x/exp/rand Source. Seeding one
// source and passing it to each layer makes weight initialization fully
// reproducible; passing nil uses the process-global source.
package nn
