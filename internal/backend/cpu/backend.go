// Package cpu implements tensor.Backend in pure Go on top of gonum.
package cpu

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/lazynn/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
//
// All results are rounded to the backend's working precision (Floatx).
type CPUBackend struct {
	floatx tensor.DataType
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithFloatx sets the working precision of created tensors (default Float32).
func WithFloatx(dtype tensor.DataType) Option {
	return func(cpu *CPUBackend) {
		cpu.floatx = dtype
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		floatx: tensor.Float32,
	}
	for _, opt := range opts {
		opt(cpu)
	}
	if !cpu.floatx.Valid() {
		panic(fmt.Sprintf("cpu: unsupported working precision %d", cpu.floatx))
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Floatx returns the working precision.
func (cpu *CPUBackend) Floatx() tensor.DataType {
	return cpu.floatx
}

// newResult wraps data computed by an operation. Shapes reaching here were
// derived from valid operands, so a failure is a bug in the backend.
func (cpu *CPUBackend) newResult(data []float64, shape tensor.Shape) *tensor.Tensor {
	t, err := tensor.FromSlice(data, shape, cpu.floatx)
	if err != nil {
		panic(fmt.Sprintf("cpu: failed to create result tensor: %v", err))
	}
	return t
}

// unary applies fn to every element of x.
func (cpu *CPUBackend) unary(x *tensor.Tensor, fn func(float64) float64) *tensor.Tensor {
	src := x.Data()
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = fn(v)
	}
	return cpu.newResult(dst, x.Shape())
}

// binary applies fn element-wise with NumPy-style broadcasting.
func (cpu *CPUBackend) binary(op string, a, b *tensor.Tensor, fn func(x, y float64) float64) (*tensor.Tensor, error) {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	ad, bd := a.Data(), b.Data()
	dst := make([]float64, outShape.NumElements())

	if !needsBroadcast {
		// Fast path: identical shapes
		for i := range dst {
			dst[i] = fn(ad[i], bd[i])
		}
		return cpu.newResult(dst, outShape), nil
	}

	aIdx := tensor.BroadcastIndex(outShape, a.Shape())
	bIdx := tensor.BroadcastIndex(outShape, b.Shape())
	for i := range dst {
		dst[i] = fn(ad[aIdx[i]], bd[bIdx[i]])
	}
	return cpu.newResult(dst, outShape), nil
}

// normalizeAxis resolves a possibly negative axis against rank.
func normalizeAxis(axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, errors.Errorf("axis %d out of range for tensor of rank %d", axis, rank)
	}
	return axis, nil
}
