package nn

import (
	"github.com/born-ml/lazynn/internal/tensor"
)

// Softmax applies softmax(X / Temperature) along the feature axis.
type Softmax struct {
	Temperature float64
}

// Name implements Activation.
func (Softmax) Name() string { return "Softmax" }

// Activate implements Activation.
func (s Softmax) Activate(backend tensor.Backend, x *tensor.Tensor, _ ParameterSource) (*tensor.Tensor, error) {
	return backend.Softmax(x, s.Temperature)
}

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)).
type Sigmoid struct{}

// Name implements Activation.
func (Sigmoid) Name() string { return "Sigmoid" }

// Activate implements Activation.
func (Sigmoid) Activate(backend tensor.Backend, x *tensor.Tensor, _ ParameterSource) (*tensor.Tensor, error) {
	return backend.Sigmoid(x), nil
}

// Tanh applies the hyperbolic tangent.
type Tanh struct{}

// Name implements Activation.
func (Tanh) Name() string { return "Tanh" }

// Activate implements Activation.
func (Tanh) Activate(backend tensor.Backend, x *tensor.Tensor, _ ParameterSource) (*tensor.Tensor, error) {
	return backend.Tanh(x), nil
}

// Relu applies max(0, x).
type Relu struct{}

// Name implements Activation.
func (Relu) Name() string { return "Relu" }

// Activate implements Activation.
func (Relu) Activate(backend tensor.Backend, x *tensor.Tensor, _ ParameterSource) (*tensor.Tensor, error) {
	return backend.Relu(x, 0), nil
}

// Elu applies relu(x) + Alpha·(exp((x − |x|)/2) − 1), which equals x for
// positive x and Alpha·(exp(x) − 1) otherwise.
type Elu struct {
	Alpha float64
}

// Name implements Activation.
func (Elu) Name() string { return "Elu" }

// Activate implements Activation.
func (e Elu) Activate(backend tensor.Backend, x *tensor.Tensor, _ ParameterSource) (*tensor.Tensor, error) {
	neg, err := backend.Sub(x, backend.Abs(x))
	if err != nil {
		return nil, err
	}
	// exp(min(x, 0)) - 1, scaled by alpha
	tail := backend.MulScalar(backend.AddScalar(backend.Exp(backend.MulScalar(neg, 0.5)), -1), e.Alpha)
	return backend.Add(backend.Relu(x, 0), tail)
}

// LeakyRelu applies x for positive x and Alpha·x otherwise.
type LeakyRelu struct {
	Alpha float64
}

// Name implements Activation.
func (LeakyRelu) Name() string { return "LeakyRelu" }

// Activate implements Activation.
func (l LeakyRelu) Activate(backend tensor.Backend, x *tensor.Tensor, _ ParameterSource) (*tensor.Tensor, error) {
	return backend.Relu(x, l.Alpha), nil
}

// Tanlu mixes tanh and relu with a trainable per-feature weight:
//
//	a = clip(alpha, 0, 1)
//	y = a·tanh(x) + (1 − a)·relu(x)
//
// alpha has shape (out,) and starts at 0.5. It is clipped at evaluation
// time, so its stored value may leave [0, 1].
type Tanlu struct{}

// Name implements Activation.
func (Tanlu) Name() string { return "Tanlu" }

func (Tanlu) parameters(dimOut int) []paramSpec {
	return []paramSpec{{name: Alpha, shape: tensor.Shape{dimOut}, values: []float64{DefaultTanluAlpha}}}
}

// Activate implements Activation.
func (Tanlu) Activate(backend tensor.Backend, x *tensor.Tensor, params ParameterSource) (*tensor.Tensor, error) {
	alpha, err := params.Parameter(Alpha)
	if err != nil {
		return nil, err
	}
	a := backend.Clip(alpha.Tensor(), 0, 1)
	oneMinusA := backend.AddScalar(backend.MulScalar(a, -1), 1)

	t, err := backend.Mul(a, backend.Tanh(x))
	if err != nil {
		return nil, err
	}
	r, err := backend.Mul(oneMinusA, backend.Relu(x, 0))
	if err != nil {
		return nil, err
	}
	return backend.Add(t, r)
}

// Maxout computes K linear projections and keeps the element-wise maximum.
//
// W has shape (K, in, out) and b has shape (K, out); the pre-activation has
// shape (..., K, out) and the activation reduces the K axis.
type Maxout struct {
	K int
}

// Name implements Activation.
func (Maxout) Name() string { return "Maxout" }

func (m Maxout) projection(dimIn, dimOut int) (w, b tensor.Shape) {
	return tensor.Shape{m.K, dimIn, dimOut}, tensor.Shape{m.K, dimOut}
}

// Activate implements Activation.
func (Maxout) Activate(backend tensor.Backend, x *tensor.Tensor, _ ParameterSource) (*tensor.Tensor, error) {
	return backend.Max(x, x.Rank()-2)
}

// NewSoftmax creates a Softmax layer (WithTemperature, default 1.0).
func NewSoftmax(backend tensor.Backend, opts ...Option) (*Layer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newLayer(backend, Softmax{Temperature: cfg.temperature}, cfg)
}

// NewSigmoid creates a Sigmoid layer.
func NewSigmoid(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return NewLayer(backend, Sigmoid{}, opts...)
}

// NewTanh creates a Tanh layer.
func NewTanh(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return NewLayer(backend, Tanh{}, opts...)
}

// NewRelu creates a Relu layer.
func NewRelu(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return NewLayer(backend, Relu{}, opts...)
}

// NewElu creates an Elu layer (WithAlpha, default 1.0).
func NewElu(backend tensor.Backend, opts ...Option) (*Layer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newLayer(backend, Elu{Alpha: cfg.alphaOr(DefaultEluAlpha)}, cfg)
}

// NewLeakyRelu creates a LeakyRelu layer (WithAlpha, default 0.1).
func NewLeakyRelu(backend tensor.Backend, opts ...Option) (*Layer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newLayer(backend, LeakyRelu{Alpha: cfg.alphaOr(DefaultLeakyReluAlpha)}, cfg)
}

// NewTanlu creates a Tanlu layer with a trainable alpha initialized to 0.5.
func NewTanlu(backend tensor.Backend, opts ...Option) (*Layer, error) {
	return NewLayer(backend, Tanlu{}, opts...)
}

// NewMaxout creates a Maxout layer (WithK, default 4). It requires an output
// dimension.
func NewMaxout(backend tensor.Backend, opts ...Option) (*Layer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newLayer(backend, Maxout{K: cfg.k}, cfg)
}
