package nn

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/lazynn/internal/tensor"
)

// Activation is the function a Layer applies after its linear core.
type Activation interface {
	// Name is the layer name used by Layer.String, e.g. "Softmax".
	Name() string

	// Activate computes the activation of x. params gives access to the
	// layer's parameters for activations that own some (see Tanlu).
	Activate(backend tensor.Backend, x *tensor.Tensor, params ParameterSource) (*tensor.Tensor, error)
}

// ParameterSource looks parameters up by name.
type ParameterSource interface {
	Parameter(name ParamName) (*Parameter, error)
}

var _ Node = (*Layer)(nil)

// projector is implemented by activations that reshape the linear core's
// parameters, like Maxout's k projections.
type projector interface {
	projection(dimIn, dimOut int) (w, b tensor.Shape)
}

// parameterized is implemented by activations that own parameters beyond
// the linear core's W and b.
type parameterized interface {
	parameters(dimOut int) []paramSpec
}

// Layer is a shaped layer: an optional linear core followed by an activation.
//
// A layer declared without an output dimension is elementwise: its output
// shape equals its input shape and it applies only the activation.
// Otherwise it computes activate(X·W + b), where W has shape (in, out) and
// b has shape (out,), broadcasting over the leading (batch) dimensions.
//
// Example:
//
//	layer, err := nn.NewTanh(backend, nn.WithShapeOut(10))
//	y, err := layer.Call(x) // x: (32, 5) → W: (5, 10), y: (32, 10)
type Layer struct {
	Base

	act         Activation
	shapeIn     int
	shapeOut    int
	elementwise bool
	weights     []float64
	bias        []float64
}

// NewLayer creates a layer applying act after its linear core.
func NewLayer(backend tensor.Backend, act Activation, opts ...Option) (*Layer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newLayer(backend, act, cfg)
}

// NewLinear creates a layer without activation: y = X·W + b.
//
// A Linear layer must declare an output dimension, since an elementwise
// Linear layer would be the identity.
func NewLinear(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return NewLayer(backend, identity{}, opts...)
}

func newLayer(backend tensor.Backend, act Activation, cfg config) (*Layer, error) {
	if backend == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "backend must not be nil")
	}
	if act == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "activation must not be nil")
	}
	if err := validateActivation(act); err != nil {
		return nil, err
	}

	l := &Layer{
		Base:        newBase(backend, cfg.initializer),
		act:         act,
		shapeIn:     cfg.shapeIn,
		shapeOut:    cfg.shapeOut,
		elementwise: cfg.shapeOut == 0,
		weights:     cfg.weights,
		bias:        cfg.bias,
	}
	if l.elementwise {
		if _, ok := act.(identity); ok {
			return nil, errors.Wrapf(ErrInvalidElementwiseUse, "%s declared without an output dimension", act.Name())
		}
		if _, ok := act.(projector); ok {
			return nil, errors.Wrapf(ErrInvalidConfig, "%s requires an output dimension", act.Name())
		}
		l.shapeOut = l.shapeIn
	}
	if l.shapeIn > 0 {
		l.state = Shaped
	}
	return l, nil
}

// validateActivation rejects hyper-parameters the backend would only refuse
// at forward time, e.g. a zero-valued Softmax{}.
func validateActivation(act Activation) error {
	switch a := act.(type) {
	case Maxout:
		if a.K < 1 {
			return errors.Wrapf(ErrInvalidConfig, "maxout k must be at least 1, got %d", a.K)
		}
	case Softmax:
		if !(a.Temperature > 0) || math.IsInf(a.Temperature, 0) {
			return errors.Wrapf(ErrInvalidConfig, "softmax temperature must be positive and finite, got %g", a.Temperature)
		}
	case Elu:
		if math.IsNaN(a.Alpha) || math.IsInf(a.Alpha, 0) {
			return errors.Wrapf(ErrInvalidConfig, "elu alpha must be finite, got %g", a.Alpha)
		}
	case LeakyRelu:
		if math.IsNaN(a.Alpha) || math.IsInf(a.Alpha, 0) {
			return errors.Wrapf(ErrInvalidConfig, "leaky relu alpha must be finite, got %g", a.Alpha)
		}
	}
	return nil
}

// IsElementwise reports whether the layer applies only its activation.
func (l *Layer) IsElementwise() bool {
	return l.elementwise
}

// Activation returns the layer's activation strategy.
func (l *Layer) Activation() Activation {
	return l.act
}

// DimIn returns the input feature dimension, if known.
func (l *Layer) DimIn() (int, bool) {
	return l.shapeIn, l.shapeIn > 0
}

// DimOut returns the output feature dimension, if known.
func (l *Layer) DimOut() (int, bool) {
	return l.shapeOut, l.shapeOut > 0
}

// InferShape records the input dimension from the trailing dimension of the
// single input shape. Elementwise layers take it as output dimension too.
// Once the input dimension is known, it only checks that shape agrees.
func (l *Layer) InferShape(shapes ...tensor.Shape) error {
	if len(shapes) != 1 {
		return errors.Wrapf(ErrInputCount, "%s expects 1 input, got %d", l, len(shapes))
	}
	dim := shapes[0].Last()
	if dim <= 0 {
		return errors.Wrapf(ErrInsufficientShapeInfo, "%s: input shape %v has no feature dimension", l, shapes[0])
	}
	if l.shapeIn > 0 {
		if dim != l.shapeIn {
			return errors.Wrapf(ErrShapeMismatch, "%s: input has %d features, want %d", l, dim, l.shapeIn)
		}
		return nil
	}

	l.shapeIn = dim
	if l.elementwise {
		l.shapeOut = dim
	}
	l.state = Shaped
	klog.V(2).Infof("nn: inferred %s from input shape %v", l, shapes[0])
	return nil
}

// Initialize creates the layer's parameters. It is a no-op once the layer is
// initialized and fails with ErrInsufficientShapeInfo while the input
// dimension is unknown.
func (l *Layer) Initialize() error {
	switch l.state {
	case Ready:
		return nil
	case Unshaped:
		return errors.Wrapf(ErrInsufficientShapeInfo, "%s", l)
	}

	var specs []paramSpec
	if !l.elementwise {
		wShape, bShape := tensor.Shape{l.shapeIn, l.shapeOut}, tensor.Shape{l.shapeOut}
		if p, ok := l.act.(projector); ok {
			wShape, bShape = p.projection(l.shapeIn, l.shapeOut)
		}
		specs = append(specs,
			paramSpec{name: Weight, shape: wShape, values: l.weights},
			paramSpec{name: Bias, shape: bShape, values: l.bias},
		)
	}
	if p, ok := l.act.(parameterized); ok {
		specs = append(specs, p.parameters(l.shapeOut)...)
	}

	if err := l.createAll(specs); err != nil {
		return errors.WithMessagef(err, "initializing %s", l)
	}
	l.state = Ready
	klog.V(1).Infof("nn: initialized %s with %d parameters (%s)", l, len(l.order), l.initializer)
	return nil
}

// Call runs the layer on a single input, initializing it first if needed.
func (l *Layer) Call(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	if err := prepare(l, inputs); err != nil {
		return nil, err
	}
	return l.forward(inputs)
}

func (l *Layer) forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if len(inputs) != 1 {
		return nil, errors.Wrapf(ErrInputCount, "%s expects 1 input, got %d", l, len(inputs))
	}
	x := inputs[0]
	if got := x.Shape().Last(); got != l.shapeIn {
		return nil, errors.Wrapf(ErrShapeMismatch, "%s: input shape %v has %d features, want %d", l, x.Shape(), got, l.shapeIn)
	}

	if l.elementwise {
		if _, ok := l.act.(identity); ok {
			return nil, errors.Wrapf(ErrInvalidElementwiseUse, "%s", l)
		}
		return l.activate(x)
	}

	params, err := l.ParameterList(Weight, Bias)
	if err != nil {
		return nil, err
	}
	z, err := l.backend.Dot(x, params[0].Tensor())
	if err != nil {
		return nil, errors.Wrapf(err, "%s", l)
	}
	z, err = l.backend.Add(z, params[1].Tensor())
	if err != nil {
		return nil, errors.Wrapf(err, "%s", l)
	}
	return l.activate(z)
}

func (l *Layer) activate(x *tensor.Tensor) (*tensor.Tensor, error) {
	y, err := l.act.Activate(l.backend, x, l)
	if err != nil {
		return nil, errors.Wrapf(err, "%s activation", l)
	}
	return y, nil
}

// Chain composes l with right, applying l first.
func (l *Layer) Chain(right Node) *Chain {
	return NewChain(l, right)
}

// String renders "Name()" for elementwise layers and "Name(in, out)"
// otherwise; an unknown dimension renders as "?".
func (l *Layer) String() string {
	if l.elementwise {
		return l.act.Name() + "()"
	}
	return fmt.Sprintf("%s(%s, %s)", l.act.Name(), formatDim(l.DimIn()), formatDim(l.DimOut()))
}

func formatDim(dim int, ok bool) string {
	if !ok {
		return "?"
	}
	return fmt.Sprint(dim)
}

// identity is the activation of a plain Linear layer.
type identity struct{}

func (identity) Name() string { return "Linear" }

func (identity) Activate(_ tensor.Backend, x *tensor.Tensor, _ ParameterSource) (*tensor.Tensor, error) {
	return x, nil
}
