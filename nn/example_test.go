// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"fmt"

	"github.com/janpfeifer/must"

	"github.com/born-ml/lazynn/backend/cpu"
	"github.com/born-ml/lazynn/nn"
	"github.com/born-ml/lazynn/tensor"
)

func ExampleNewSequential() {
	backend := cpu.New()
	model := nn.NewSequential(
		must.M1(nn.NewTanh(backend, nn.WithShapeOut(16))),
		must.M1(nn.NewMaxout(backend, nn.WithShapeOut(8), nn.WithK(3))),
		must.M1(nn.NewSoftmax(backend, nn.WithShapeOut(4))),
	)
	fmt.Println(model)

	x := must.M1(tensor.Zeros(tensor.Shape{32, 5}, backend.Floatx()))
	y := must.M1(model.Call(x))
	fmt.Println(model)
	fmt.Println(y.Shape())

	for _, p := range must.M1(model.Parameters()) {
		fmt.Println(p.Name(), p.Shape())
	}
	// Output:
	// Tanh(?, 16) >> Maxout(?, 8) >> Softmax(?, 4)
	// Tanh(5, 16) >> Maxout(16, 8) >> Softmax(8, 4)
	// (32, 4)
	// W (5, 16)
	// b (16,)
	// W (3, 16, 8)
	// b (3, 8)
	// W (8, 4)
	// b (4,)
}
