// Copyright 2026 Beras Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"golang.org/x/exp/rand"

	"github.com/degeneratorL/beras/internal/nn"
	"github.com/degeneratorL/beras/internal/tensor"
)

// Node is the capability contract every layer satisfies for the external
// chain-rule engine.
type Node = nn.Node

// Cache carries the input retained by one Forward call for the gradient
// queries that follow it.
type Cache = nn.Cache

// Parameter represents a trainable parameter owned by a layer.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Errors

// ErrNoForward is returned by gradient queries handed no forward cache.
var ErrNoForward = nn.ErrNoForward

// ErrUnknownInitializer is wrapped by construction errors caused by an
// initializer name outside the recognized set.
var ErrUnknownInitializer = nn.ErrUnknownInitializer

// Initializers

// Initializer is a closed enumeration of weight-initialization strategies.
type Initializer = nn.Initializer

const (
	// Zero fills the weights with zeros.
	Zero = nn.Zero
	// Normal draws weights from N(0, 1).
	Normal = nn.Normal
	// Xavier (Glorot) draws from N(0, sqrt(2/(fan_in+fan_out))).
	Xavier = nn.Xavier
	// Kaiming (He) draws from N(0, sqrt(2/fan_in)).
	Kaiming = nn.Kaiming
	// XavierUniform draws from U(-L, L) with L = sqrt(6/(fan_in+fan_out)).
	XavierUniform = nn.XavierUniform
	// KaimingUniform draws from U(-L, L) with L = sqrt(6/fan_in).
	KaimingUniform = nn.KaimingUniform
)

// ParseInitializer maps a case-insensitive configuration name (e.g.
// "xavier uniform") to its Initializer kind.
func ParseInitializer(name string) (Initializer, error) {
	return nn.ParseInitializer(name)
}

// Layers

// Dense represents a fully connected (affine) layer.
type Dense = nn.Dense

// NewDense creates a new dense layer with W drawn per init and b zeroed.
//
// Example:
//
//	layer, err := nn.NewDense(784, 128, nn.Xavier, nil)
func NewDense(inputSize, outputSize int, init Initializer, src rand.Source) (*Dense, error) {
	return nn.NewDense(inputSize, outputSize, init, src)
}

// NewDenseNamed is like NewDense but resolves the initializer from its
// configuration name.
func NewDenseNamed(inputSize, outputSize int, initializer string, src rand.Source) (*Dense, error) {
	return nn.NewDenseNamed(inputSize, outputSize, initializer, src)
}
