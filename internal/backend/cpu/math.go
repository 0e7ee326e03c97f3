package cpu

import (
	"math"

	"github.com/born-ml/lazynn/internal/tensor"
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return cpu.binary("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with NumPy-style broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return cpu.binary("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return cpu.binary("mul", a, b, func(x, y float64) float64 { return x * y })
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.Tensor, scalar float64) *tensor.Tensor {
	return cpu.unary(x, func(v float64) float64 { return v + scalar })
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.Tensor, scalar float64) *tensor.Tensor {
	return cpu.unary(x, func(v float64) float64 { return v * scalar })
}

// Exp computes e^x element-wise.
func (cpu *CPUBackend) Exp(x *tensor.Tensor) *tensor.Tensor {
	return cpu.unary(x, math.Exp)
}

// Abs computes |x| element-wise.
func (cpu *CPUBackend) Abs(x *tensor.Tensor) *tensor.Tensor {
	return cpu.unary(x, math.Abs)
}

// Clip limits every element to [lo, hi].
func (cpu *CPUBackend) Clip(x *tensor.Tensor, lo, hi float64) *tensor.Tensor {
	return cpu.unary(x, func(v float64) float64 {
		return math.Min(math.Max(v, lo), hi)
	})
}
