package nn

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/lazynn/internal/initializers"
)

// Default layer configuration.
const (
	DefaultTemperature    = 1.0
	DefaultEluAlpha       = 1.0
	DefaultLeakyReluAlpha = 0.1
	DefaultMaxoutK        = 4
	DefaultTanluAlpha     = 0.5
)

// Option configures a layer at construction.
//
// Options that do not apply to a layer are ignored, e.g. WithK on a Sigmoid.
type Option func(*config)

type config struct {
	shapeIn     int
	shapeOut    int
	initializer initializers.Initializer
	temperature float64
	alpha       *float64
	k           int
	weights     []float64
	bias        []float64
}

// WithShapeIn declares the input feature dimension, skipping inference.
func WithShapeIn(dim int) Option {
	return func(c *config) {
		c.shapeIn = dim
	}
}

// WithShapeOut declares the output feature dimension. A layer without an
// output dimension is elementwise: it applies only its activation.
func WithShapeOut(dim int) Option {
	return func(c *config) {
		c.shapeOut = dim
	}
}

// WithShape declares both feature dimensions.
func WithShape(in, out int) Option {
	return func(c *config) {
		c.shapeIn = in
		c.shapeOut = out
	}
}

// WithInitializer sets the strategy drawing parameter values
// (default initializers.Default()).
func WithInitializer(init initializers.Initializer) Option {
	return func(c *config) {
		c.initializer = init
	}
}

// WithTemperature sets the Softmax temperature (default 1.0).
func WithTemperature(t float64) Option {
	return func(c *config) {
		c.temperature = t
	}
}

// WithAlpha sets alpha for Elu (default 1.0) and LeakyRelu (default 0.1).
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		c.alpha = &alpha
	}
}

// WithK sets the number of Maxout projections (default 4).
func WithK(k int) Option {
	return func(c *config) {
		c.k = k
	}
}

// WithWeights supplies literal values for W instead of drawing them from
// the initializer. A single value fills the whole tensor.
func WithWeights(values ...float64) Option {
	return func(c *config) {
		c.weights = values
	}
}

// WithBias supplies literal values for b instead of drawing them from the
// initializer. A single value fills the whole tensor.
func WithBias(values ...float64) Option {
	return func(c *config) {
		c.bias = values
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := config{
		initializer: initializers.Default(),
		temperature: DefaultTemperature,
		k:           DefaultMaxoutK,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.shapeIn < 0:
		return cfg, errors.Wrapf(ErrInvalidConfig, "input dimension must not be negative, got %d", cfg.shapeIn)
	case cfg.shapeOut < 0:
		return cfg, errors.Wrapf(ErrInvalidConfig, "output dimension must not be negative, got %d", cfg.shapeOut)
	case cfg.initializer == nil:
		return cfg, errors.Wrap(ErrInvalidConfig, "initializer must not be nil")
	case !(cfg.temperature > 0) || math.IsInf(cfg.temperature, 0):
		return cfg, errors.Wrapf(ErrInvalidConfig, "temperature must be positive and finite, got %g", cfg.temperature)
	case cfg.alpha != nil && (math.IsNaN(*cfg.alpha) || math.IsInf(*cfg.alpha, 0)):
		return cfg, errors.Wrapf(ErrInvalidConfig, "alpha must be finite, got %g", *cfg.alpha)
	case cfg.k < 1:
		return cfg, errors.Wrapf(ErrInvalidConfig, "maxout k must be at least 1, got %d", cfg.k)
	}
	return cfg, nil
}

// alphaOr returns the configured alpha or def.
func (c config) alphaOr(def float64) float64 {
	if c.alpha == nil {
		return def
	}
	return *c.alpha
}
