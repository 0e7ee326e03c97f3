// Package nn implements lazily shaped neural network layers.
//
// This package provides:
//   - Node interface: the call contract shared by layers and compositions
//   - Base: the per-node parameter store and lifecycle state
//   - Layer: a linear core followed by an activation strategy
//   - Activations: Softmax, Sigmoid, Tanh, Relu, Elu, LeakyRelu, Tanlu, Maxout
//   - Chain / Sequential: sequential composition of nodes
//
// Layers are built without knowing their input dimensionality. The first
// Call infers the missing shapes from the data, creates the parameters and
// then runs the forward computation.
package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/lazynn/internal/initializers"
	"github.com/born-ml/lazynn/internal/tensor"
)

// Node is a composable unit of forward computation whose parameters are
// created lazily, on the first call with real data.
//
// Call drives the lifecycle:
//  1. InferShape runs on the input shapes with the leading (batch)
//     dimension stripped, fixing unknown dimensions and rejecting inputs
//     that disagree with known ones;
//  2. if the node is not initialized, Initialize creates its parameters,
//     failing with ErrInsufficientShapeInfo when shapes are still unknown;
//  3. the forward computation runs with the now fixed parameters.
//
// The first call mutates the node and must not run concurrently with any
// other call on the same node; serialize it (e.g. behind a sync.Once or a
// mutex) if needed. Once initialized, Call only reads parameters and may be
// used from several goroutines.
type Node interface {
	fmt.Stringer

	// Call runs the node on inputs, initializing it first if needed.
	Call(inputs ...*tensor.Tensor) (*tensor.Tensor, error)

	// InferShape fixes unknown shapes from input shapes without the batch
	// dimension, or checks them against shapes already fixed.
	InferShape(shapes ...tensor.Shape) error

	// IsInitialized reports whether parameters have been created.
	IsInitialized() bool

	// Initialize creates the node's parameters once its shapes are known.
	Initialize() error

	// DimIn and DimOut report the feature dimensionality; ok is false
	// while it is still unknown.
	DimIn() (dim int, ok bool)
	DimOut() (dim int, ok bool)

	// Parameters returns every parameter in creation order, or
	// ErrNotInitialized before the first successful call.
	Parameters() ([]*Parameter, error)

	// Chain composes this node with right into a node applying this node
	// first. No shape inference happens until the composite is called.
	Chain(right Node) *Chain
}

// State is the lifecycle stage of a node.
type State int

// Lifecycle stages. A node only moves forward: Unshaped → Shaped → Ready.
const (
	Unshaped State = iota // Input shape unknown.
	Shaped                // Shapes known, parameters not created.
	Ready                 // Parameters created.
)

func (s State) String() string {
	switch s {
	case Unshaped:
		return "unshaped"
	case Shaped:
		return "shaped"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Base holds what every layer shares: the backend, the initializer captured
// at construction, the parameters and the lifecycle state.
type Base struct {
	backend     tensor.Backend
	initializer initializers.Initializer
	params      map[ParamName]*Parameter
	order       []*Parameter
	state       State
}

func newBase(backend tensor.Backend, init initializers.Initializer) Base {
	return Base{
		backend:     backend,
		initializer: init,
		params:      make(map[ParamName]*Parameter),
	}
}

// Backend returns the numeric backend the node computes with.
func (b *Base) Backend() tensor.Backend {
	return b.backend
}

// Initializer returns the initialization strategy captured at construction.
func (b *Base) Initializer() initializers.Initializer {
	return b.initializer
}

// State returns the lifecycle stage.
func (b *Base) State() State {
	return b.state
}

// IsInitialized reports whether the node reached Ready.
func (b *Base) IsInitialized() bool {
	return b.state == Ready
}

// CreateParameter creates the parameter name with values drawn from the
// node's initializer. If name already exists it is returned unchanged.
func (b *Base) CreateParameter(name ParamName, shape tensor.Shape) (*Parameter, error) {
	return b.create(paramSpec{name: name, shape: shape})
}

// CreateParameterWithValue creates the parameter name from literal values,
// rounded to the backend's working precision. A single value fills the whole
// shape; otherwise exactly shape.NumElements() values are required. If name
// already exists it is returned unchanged and values are ignored.
func (b *Base) CreateParameterWithValue(name ParamName, shape tensor.Shape, values ...float64) (*Parameter, error) {
	if values == nil {
		values = []float64{}
	}
	return b.create(paramSpec{name: name, shape: shape, values: values})
}

// Parameter returns the parameter name, or ErrMissingParameter.
func (b *Base) Parameter(name ParamName) (*Parameter, error) {
	p, found := b.params[name]
	if !found {
		return nil, errors.Wrapf(ErrMissingParameter, "parameter %q", name)
	}
	return p, nil
}

// ParameterList returns the parameters for names, in the order asked.
func (b *Base) ParameterList(names ...ParamName) ([]*Parameter, error) {
	list := make([]*Parameter, len(names))
	for i, name := range names {
		p, err := b.Parameter(name)
		if err != nil {
			return nil, err
		}
		list[i] = p
	}
	return list, nil
}

// Parameters returns all parameters in creation order.
func (b *Base) Parameters() ([]*Parameter, error) {
	if !b.IsInitialized() {
		return nil, ErrNotInitialized
	}
	list := make([]*Parameter, len(b.order))
	copy(list, b.order)
	return list, nil
}

// paramSpec describes a parameter to create. A nil values slice means "draw
// from the initializer".
type paramSpec struct {
	name   ParamName
	shape  tensor.Shape
	values []float64
}

func (b *Base) create(spec paramSpec) (*Parameter, error) {
	if p, found := b.params[spec.name]; found {
		return p, nil
	}
	p, err := b.build(spec)
	if err != nil {
		return nil, err
	}
	b.commit(p)
	return p, nil
}

// createAll builds every missing parameter first and only then commits them,
// so a failure leaves no partially initialized node behind.
func (b *Base) createAll(specs []paramSpec) error {
	staged := make([]*Parameter, 0, len(specs))
	for _, spec := range specs {
		if _, found := b.params[spec.name]; found {
			continue
		}
		p, err := b.build(spec)
		if err != nil {
			return err
		}
		staged = append(staged, p)
	}
	for _, p := range staged {
		b.commit(p)
	}
	return nil
}

func (b *Base) build(spec paramSpec) (*Parameter, error) {
	if err := spec.shape.Validate(); err != nil {
		return nil, errors.Wrapf(ErrShapeMismatch, "parameter %q: %v", spec.name, err)
	}
	dtype := b.backend.Floatx()

	var (
		t   *tensor.Tensor
		err error
	)
	switch n := spec.shape.NumElements(); {
	case spec.values == nil:
		t, err = b.initializer.Initialize(spec.shape, dtype)
		if err == nil && !t.Shape().Equal(spec.shape) {
			err = errors.Errorf("initializer %s returned shape %v, want %v", b.initializer, t.Shape(), spec.shape)
		}
	case len(spec.values) == 1:
		t, err = tensor.Full(spec.shape, spec.values[0], dtype)
	case len(spec.values) == n:
		t, err = tensor.FromSlice(spec.values, spec.shape, dtype)
	default:
		return nil, errors.Wrapf(ErrShapeMismatch, "parameter %q: %d values given for shape %v (%d elements)",
			spec.name, len(spec.values), spec.shape, n)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "creating parameter %q", spec.name)
	}
	return NewParameter(spec.name, t), nil
}

func (b *Base) commit(p *Parameter) {
	b.params[p.name] = p
	b.order = append(b.order, p)
}

// lazyNode is the part of Node the call protocol drives.
type lazyNode interface {
	DimIn() (int, bool)
	InferShape(shapes ...tensor.Shape) error
	IsInitialized() bool
	Initialize() error
}

// prepare runs shape inference and initialization ahead of a forward pass.
func prepare(n lazyNode, inputs []*tensor.Tensor) error {
	for i, x := range inputs {
		if x == nil {
			return errors.Wrapf(ErrInputCount, "input %d is nil", i)
		}
	}
	// InferShape also checks inputs against shapes that are already known,
	// so nothing is created for a call that cannot succeed.
	shapes := make([]tensor.Shape, len(inputs))
	for i, x := range inputs {
		shapes[i] = x.Shape().StripBatch()
	}
	if err := n.InferShape(shapes...); err != nil {
		return err
	}
	if n.IsInitialized() {
		return nil
	}
	return n.Initialize()
}
