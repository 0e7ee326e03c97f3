// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensors layers consume and produce.
//
// # Overview
//
// This package provides:
//   - Tensor: a dense, row-major tensor whose values are rounded to a DataType
//   - Shape: tensor dimensions, including the leading batch dimension
//   - DataType: the working precision (Float16, Float32, Float64)
//   - Backend: the numeric operations layers are written against
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/lazynn/backend/cpu"
//	    "github.com/born-ml/lazynn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend.Floatx())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    y, err := backend.Softmax(x, 1.0) // (2, 3), rows sum to 1
//	}
//
// # Working Precision
//
// Values are stored as float64 but rounded to the tensor's DataType on
// creation, and backends round every result to their Floatx(). A Float16
// tensor therefore holds exactly the values a half-precision array would.
//
// # Broadcasting
//
// Element-wise backend operations follow NumPy broadcasting rules:
//
//	(32, 10) + (10,)      → (32, 10)
//	(32, 4, 10) + (4, 10) → (32, 4, 10)
package tensor
