// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/lazynn/internal/backend/cpu"
	"github.com/born-ml/lazynn/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of the tensor operations
// layers need, with matrix products delegated to gonum.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend. The working precision defaults to Float32.
//
// Example:
//
//	import (
//	    "github.com/born-ml/lazynn/backend/cpu"
//	    "github.com/born-ml/lazynn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New(cpu.WithFloatx(tensor.Float64))
//	    x, _ := tensor.Zeros(tensor.Shape{2, 3}, backend.Floatx())
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithFloatx sets the working precision every result is rounded to.
// New panics on an unsupported precision.
func WithFloatx(dtype tensor.DataType) Option {
	return internalcpu.WithFloatx(dtype)
}
