package nn

import (
	"github.com/born-ml/lazynn/internal/tensor"
)

// ParamName identifies a parameter within a node.
type ParamName string

// Parameter names used by the layers in this package.
const (
	Weight ParamName = "W"
	Bias   ParamName = "b"
	Alpha  ParamName = "alpha"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are created once by their owning node and keep their identity
// for the node's lifetime: every call after initialization sees the same
// *Parameter.
//
// Example:
//
//	w, err := layer.Parameter(nn.Weight)
//	w.Tensor().Shape() // (dimIn, dimOut)
type Parameter struct {
	name   ParamName      // Parameter name (e.g., "W", "b")
	tensor *tensor.Tensor // The parameter tensor
}

// NewParameter creates a new parameter wrapping t.
func NewParameter(name ParamName, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() ParamName {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Shape returns the shape of the parameter tensor.
func (p *Parameter) Shape() tensor.Shape {
	return p.tensor.Shape()
}
