package nn

import (
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/lazynn/internal/tensor"
)

// Chain applies two nodes in sequence: the output of Left feeds Right.
//
// Chain is itself a Node. Building it performs no shape inference: on the
// first Call, Left is inferred from the data and Right from Left's output
// dimension, then both are initialized.
//
// Example:
//
//	hidden, _ := nn.NewTanh(backend, nn.WithShapeOut(64))
//	probs, _ := nn.NewSoftmax(backend, nn.WithShapeOut(10))
//	model := hidden.Chain(probs)
//	y, err := model.Call(x) // x: (batch, features) → y: (batch, 10)
type Chain struct {
	left, right Node
}

var _ Node = (*Chain)(nil)

// NewChain composes left and right.
func NewChain(left, right Node) *Chain {
	return &Chain{left: left, right: right}
}

// Left returns the node applied first.
func (c *Chain) Left() Node {
	return c.left
}

// Right returns the node applied second.
func (c *Chain) Right() Node {
	return c.right
}

// DimIn returns the input dimension of the left node.
func (c *Chain) DimIn() (int, bool) {
	return c.left.DimIn()
}

// DimOut returns the output dimension of the right node.
func (c *Chain) DimOut() (int, bool) {
	return c.right.DimOut()
}

// InferShape infers (or checks) the left node from shapes, then the right
// node from the left node's output dimension.
func (c *Chain) InferShape(shapes ...tensor.Shape) error {
	if err := c.left.InferShape(shapes...); err != nil {
		return err
	}
	return c.inferRight()
}

func (c *Chain) inferRight() error {
	out, ok := c.left.DimOut()
	if !ok {
		return errors.Wrapf(ErrInsufficientShapeInfo, "%s: output dimension of %s unknown", c, c.left)
	}
	if in, known := c.right.DimIn(); known {
		if in != out {
			return errors.Wrapf(ErrShapeMismatch, "%s: %s outputs %d features but %s expects %d",
				c, c.left, out, c.right, in)
		}
		return nil
	}
	return c.right.InferShape(tensor.Shape{out})
}

// IsInitialized reports whether both nodes are initialized.
func (c *Chain) IsInitialized() bool {
	return c.left.IsInitialized() && c.right.IsInitialized()
}

// Initialize initializes the left node, infers the right node from it if
// needed, then initializes the right node.
func (c *Chain) Initialize() error {
	if c.IsInitialized() {
		return nil
	}
	if err := c.left.Initialize(); err != nil {
		return err
	}
	if err := c.inferRight(); err != nil {
		return err
	}
	if err := c.right.Initialize(); err != nil {
		return err
	}
	klog.V(1).Infof("nn: initialized %s", c)
	return nil
}

// Call runs the left node and feeds its output to the right node.
func (c *Chain) Call(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	if err := prepare(c, inputs); err != nil {
		return nil, err
	}
	hidden, err := c.left.Call(inputs...)
	if err != nil {
		return nil, err
	}
	return c.right.Call(hidden)
}

// Parameters returns the left node's parameters followed by the right's.
func (c *Chain) Parameters() ([]*Parameter, error) {
	if !c.IsInitialized() {
		return nil, ErrNotInitialized
	}
	left, err := c.left.Parameters()
	if err != nil {
		return nil, err
	}
	right, err := c.right.Parameters()
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}

// Chain composes c with right, applying c first.
func (c *Chain) Chain(right Node) *Chain {
	return NewChain(c, right)
}

// String renders "left >> right".
func (c *Chain) String() string {
	return fmt.Sprintf("%s >> %s", c.left, c.right)
}

// NewSequential folds nodes into left-nested chains:
// NewSequential(a, b, c) is a.Chain(b).Chain(c). A single node is returned
// as is.
func NewSequential(first Node, rest ...Node) Node {
	model := first
	for _, next := range rest {
		model = NewChain(model, next)
	}
	return model
}
