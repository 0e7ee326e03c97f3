// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/lazynn/internal/initializers"
	"github.com/born-ml/lazynn/internal/nn"
	"github.com/born-ml/lazynn/tensor"
)

// Node is the lifecycle contract every layer and composite satisfies.
type Node = nn.Node

// State is the lifecycle stage of a node.
type State = nn.State

// Lifecycle stages.
const (
	Unshaped State = nn.Unshaped
	Shaped   State = nn.Shaped
	Ready    State = nn.Ready
)

// Parameter represents a named parameter owned by a node.
type Parameter = nn.Parameter

// ParamName names a parameter within its node.
type ParamName = nn.ParamName

// Parameter names used by the layers.
const (
	Weight ParamName = nn.Weight
	Bias   ParamName = nn.Bias
	Alpha  ParamName = nn.Alpha
)

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name ParamName, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Errors

// Errors returned by nodes. Match them with errors.Is.
var (
	ErrInsufficientShapeInfo = nn.ErrInsufficientShapeInfo
	ErrMissingParameter      = nn.ErrMissingParameter
	ErrNotInitialized        = nn.ErrNotInitialized
	ErrInvalidElementwiseUse = nn.ErrInvalidElementwiseUse
	ErrShapeMismatch         = nn.ErrShapeMismatch
	ErrInputCount            = nn.ErrInputCount
	ErrInvalidConfig         = nn.ErrInvalidConfig
)

// Layers

// Layer is a linear transform followed by an activation.
type Layer = nn.Layer

// Activation is the elementwise function a Layer applies.
type Activation = nn.Activation

// ParameterSource gives activations access to their layer's parameters.
type ParameterSource = nn.ParameterSource

// NewLayer creates a layer with a custom activation.
func NewLayer(backend tensor.Backend, act Activation, opts ...Option) (*Layer, error) {
	return nn.NewLayer(backend, act, opts...)
}

// NewLinear creates a layer without activation. WithShapeOut is required.
//
// Example:
//
//	backend := cpu.New()
//	layer, err := nn.NewLinear(backend, nn.WithShapeOut(10))
func NewLinear(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewLinear(backend, opts...)
}

// Activations

// Softmax normalizes the last axis into a distribution, scaled by Temperature.
type Softmax = nn.Softmax

// Sigmoid is the logistic function.
type Sigmoid = nn.Sigmoid

// Tanh is the hyperbolic tangent.
type Tanh = nn.Tanh

// Relu is the rectified linear unit.
type Relu = nn.Relu

// Elu is the exponential linear unit.
type Elu = nn.Elu

// LeakyRelu lets Alpha times the negative part through.
type LeakyRelu = nn.LeakyRelu

// Tanlu mixes tanh and relu with a learned per-unit weight.
type Tanlu = nn.Tanlu

// Maxout takes the maximum of K linear projections.
type Maxout = nn.Maxout

// NewSoftmax creates a softmax layer. See WithTemperature.
func NewSoftmax(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewSoftmax(backend, opts...)
}

// NewSigmoid creates a sigmoid layer.
func NewSigmoid(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewSigmoid(backend, opts...)
}

// NewTanh creates a tanh layer.
func NewTanh(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewTanh(backend, opts...)
}

// NewRelu creates a relu layer.
func NewRelu(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewRelu(backend, opts...)
}

// NewElu creates an elu layer. See WithAlpha.
func NewElu(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewElu(backend, opts...)
}

// NewLeakyRelu creates a leaky relu layer. See WithAlpha.
func NewLeakyRelu(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewLeakyRelu(backend, opts...)
}

// NewTanlu creates a tanlu layer.
func NewTanlu(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewTanlu(backend, opts...)
}

// NewMaxout creates a maxout layer. WithShapeOut is required; see WithK.
func NewMaxout(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return nn.NewMaxout(backend, opts...)
}

// Composition

// Chain applies its left node, then its right node.
type Chain = nn.Chain

// NewChain composes left and right. No shapes are inferred until it is called.
func NewChain(left, right Node) *Chain {
	return nn.NewChain(left, right)
}

// NewSequential chains nodes in order.
//
// Example:
//
//	model := nn.NewSequential(hidden, output)
func NewSequential(first Node, rest ...Node) Node {
	return nn.NewSequential(first, rest...)
}

// Options

// Option configures a layer.
type Option = nn.Option

// Default hyper-parameters.
const (
	DefaultTemperature    = nn.DefaultTemperature
	DefaultEluAlpha       = nn.DefaultEluAlpha
	DefaultLeakyReluAlpha = nn.DefaultLeakyReluAlpha
	DefaultMaxoutK        = nn.DefaultMaxoutK
	DefaultTanluAlpha     = nn.DefaultTanluAlpha
)

// WithShapeIn declares the input dimension, skipping inference.
func WithShapeIn(dim int) Option { return nn.WithShapeIn(dim) }

// WithShapeOut declares the output dimension.
func WithShapeOut(dim int) Option { return nn.WithShapeOut(dim) }

// WithShape declares both dimensions.
func WithShape(in, out int) Option { return nn.WithShape(in, out) }

// WithInitializer sets the initializer for parameters without literal values.
func WithInitializer(init Initializer) Option { return nn.WithInitializer(init) }

// WithTemperature sets the softmax temperature.
func WithTemperature(t float64) Option { return nn.WithTemperature(t) }

// WithAlpha sets the elu or leaky relu slope.
func WithAlpha(alpha float64) Option { return nn.WithAlpha(alpha) }

// WithK sets the number of maxout projections.
func WithK(k int) Option { return nn.WithK(k) }

// WithWeights supplies literal weight values.
func WithWeights(values ...float64) Option { return nn.WithWeights(values...) }

// WithBias supplies literal bias values.
func WithBias(values ...float64) Option { return nn.WithBias(values...) }

// Initialization

// Initializer produces the initial value of a parameter.
type Initializer = initializers.Initializer

// InitializerFactory builds an initializer from numeric arguments.
type InitializerFactory = initializers.Factory

// Initializers.
type (
	Constant      = initializers.Constant
	Uniform       = initializers.Uniform
	Normal        = initializers.Normal
	GlorotUniform = initializers.GlorotUniform
)

// Zero initializes parameters with zeros.
var Zero = initializers.Zero

// InitializerFromName builds a registered initializer, e.g. ("normal", 0.02).
func InitializerFromName(name string, args ...float64) (Initializer, error) {
	return initializers.FromName(name, args...)
}

// RegisterInitializer adds or replaces a named initializer.
func RegisterInitializer(name string, factory InitializerFactory) {
	initializers.Register(name, factory)
}
