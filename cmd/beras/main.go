// Package main provides the Beras CLI.
package main

import (
	"fmt"
	"os"

	"github.com/degeneratorL/beras/nn"
	"github.com/degeneratorL/beras/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Beras %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintln(os.Stderr, "demo:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Beras - Differentiable Layer Primitives for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Run a dense-layer forward/gradient round trip")
}

// demo runs one forward pass and the matching gradient queries through a
// small dense layer, printing the shapes the chain-rule engine would see.
func demo() error {
	layer, err := nn.NewDense(2, 3, nn.Zero, nil)
	if err != nil {
		return err
	}

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	if err != nil {
		return err
	}

	out, cache, err := layer.Forward(x)
	if err != nil {
		return err
	}
	fmt.Printf("forward output: shape %v data %v\n", out.Shape(), out.Data())

	inputGrads, err := layer.InputGradients(cache)
	if err != nil {
		return err
	}
	fmt.Printf("input gradient: shape %v\n", inputGrads[0].Shape())

	weightGrads, err := layer.WeightGradients(cache)
	if err != nil {
		return err
	}
	for i, p := range layer.Weights() {
		fmt.Printf("%s: shape %v, local gradient shape %v\n",
			p.Name(), p.Tensor().Shape(), weightGrads[i].Shape())
	}
	return nil
}
