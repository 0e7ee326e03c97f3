// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides lazily shaped neural network layers.
//
// # Overview
//
// This package contains:
//   - Node: the lifecycle contract (infer shapes, create parameters, call)
//   - Layers: Linear, Softmax, Sigmoid, Tanh, Relu, Elu, LeakyRelu, Tanlu, Maxout
//   - Composition: Chain and Sequential
//   - Initialization: GlorotUniform (default), Uniform, Normal, Constant, Zero
//
// A layer may be built without knowing its input dimension. The first call
// with real data fixes the input dimension from the trailing axis of the
// input, creates the parameters and then runs the forward computation.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/lazynn/backend/cpu"
//	    "github.com/born-ml/lazynn/nn"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    hidden, _ := nn.NewRelu(backend, nn.WithShapeOut(128))
//	    probs, _ := nn.NewSoftmax(backend, nn.WithShapeOut(10))
//	    model := hidden.Chain(probs)
//
//	    // First call infers (784 → 128 → 10) and creates W and b.
//	    y, err := model.Call(x) // x: (batch, 784), y: (batch, 10)
//	}
//
// # Elementwise Layers
//
// A layer built without an output dimension applies only its activation:
//
//	softmax, _ := nn.NewSoftmax(backend) // Softmax()
//
// A Linear layer without an output dimension would be an identity node and
// is rejected with ErrInvalidElementwiseUse.
//
// # Sequential Models
//
//	model := nn.NewSequential(
//	    must.M1(nn.NewTanh(backend, nn.WithShapeOut(64))),
//	    must.M1(nn.NewMaxout(backend, nn.WithShapeOut(32), nn.WithK(4))),
//	    must.M1(nn.NewSoftmax(backend, nn.WithShapeOut(10))),
//	)
//
// # Parameter Management
//
// Parameters exist once the node has been initialized:
//
//	params, err := model.Parameters()
//	for _, param := range params {
//	    fmt.Println(param.Name(), param.Shape())
//	}
//
// # Concurrency
//
// The first call of a node mutates it and must not race with other calls.
// Once initialized, Call only reads parameters and is safe for concurrent use.
package nn
