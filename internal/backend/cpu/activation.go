package cpu

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/lazynn/internal/tensor"
)

// Tanh computes the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.Tensor) *tensor.Tensor {
	return cpu.unary(x, math.Tanh)
}

// Sigmoid computes σ(x) = 1 / (1 + exp(-x)) element-wise.
func (cpu *CPUBackend) Sigmoid(x *tensor.Tensor) *tensor.Tensor {
	return cpu.unary(x, func(v float64) float64 {
		// Split by sign so exp never overflows.
		if v >= 0 {
			return 1 / (1 + math.Exp(-v))
		}
		e := math.Exp(v)
		return e / (1 + e)
	})
}

// Relu computes x for x > 0 and alpha*x otherwise. alpha = 0 is the plain ReLU.
func (cpu *CPUBackend) Relu(x *tensor.Tensor, alpha float64) *tensor.Tensor {
	return cpu.unary(x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return alpha * v
	})
}

// Softmax computes softmax(x / temperature) along the last axis.
//
// The row maximum is subtracted before exponentiation for numerical stability.
func (cpu *CPUBackend) Softmax(x *tensor.Tensor, temperature float64) (*tensor.Tensor, error) {
	if temperature <= 0 || math.IsNaN(temperature) {
		return nil, errors.Errorf("softmax: temperature must be positive, got %g", temperature)
	}
	shape := x.Shape()
	if len(shape) == 0 {
		return nil, errors.New("softmax: expected at least a 1D tensor, got a scalar")
	}

	src := x.Data()
	dst := make([]float64, len(src))
	n := shape.Last()

	for start := 0; start < len(src); start += n {
		row := src[start : start+n]
		out := dst[start : start+n]
		m := floats.Max(row)
		for i, v := range row {
			out[i] = math.Exp((v - m) / temperature)
		}
		floats.Scale(1/floats.Sum(out), out)
	}

	return cpu.newResult(dst, shape), nil
}
