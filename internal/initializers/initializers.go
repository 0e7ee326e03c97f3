// Package initializers include several weight initializers, to be used by
// the layers in internal/nn when they materialize their parameters.
package initializers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/lazynn/internal/tensor"
)

// Initializer produces the initial value of a parameter of the given shape.
//
// Implementations must return a tensor of exactly that shape, rounded to dtype.
type Initializer interface {
	Initialize(shape tensor.Shape, dtype tensor.DataType) (*tensor.Tensor, error)
	String() string
}

// Default returns the initializer layers use when none is configured.
func Default() Initializer {
	return GlorotUniform{}
}

// Constant initializes every element with Value.
type Constant struct {
	Value float64
}

// Initialize implements Initializer.
func (c Constant) Initialize(shape tensor.Shape, dtype tensor.DataType) (*tensor.Tensor, error) {
	return tensor.Full(shape, c.Value, dtype)
}

func (c Constant) String() string {
	return fmt.Sprintf("constant(%g)", c.Value)
}

// Zero initializes variables with zero.
var Zero = Constant{Value: 0}

// Uniform draws values from U(Low, High).
type Uniform struct {
	Low, High float64
}

// Initialize implements Initializer.
func (u Uniform) Initialize(shape tensor.Shape, dtype tensor.DataType) (*tensor.Tensor, error) {
	if !(u.Low < u.High) {
		return nil, fmt.Errorf("uniform initializer: low %g must be below high %g", u.Low, u.High)
	}
	dist := distuv.Uniform{Min: u.Low, Max: u.High}
	return sample(shape, dtype, dist.Rand)
}

func (u Uniform) String() string {
	return fmt.Sprintf("uniform(%g, %g)", u.Low, u.High)
}

// Normal draws values from N(0, Stddev²).
type Normal struct {
	Stddev float64
}

// Initialize implements Initializer.
func (n Normal) Initialize(shape tensor.Shape, dtype tensor.DataType) (*tensor.Tensor, error) {
	if n.Stddev <= 0 {
		return nil, fmt.Errorf("normal initializer: stddev must be positive, got %g", n.Stddev)
	}
	dist := distuv.Normal{Mu: 0, Sigma: n.Stddev}
	return sample(shape, dtype, dist.Rand)
}

func (n Normal) String() string {
	return fmt.Sprintf("normal(%g)", n.Stddev)
}

// GlorotUniform (Xavier) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// fan_in and fan_out are the last two dimensions of the shape; a vector uses
// its only dimension for both.
type GlorotUniform struct{}

// Initialize implements Initializer.
func (GlorotUniform) Initialize(shape tensor.Shape, dtype tensor.DataType) (*tensor.Tensor, error) {
	fanIn, fanOut := fans(shape)
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return Uniform{Low: -bound, High: bound}.Initialize(shape, dtype)
}

func (GlorotUniform) String() string {
	return "glorot_uniform"
}

// fans returns the fan-in and fan-out of a weight shape.
func fans(shape tensor.Shape) (fanIn, fanOut int) {
	switch len(shape) {
	case 0:
		return 1, 1
	case 1:
		return shape[0], shape[0]
	default:
		return shape[len(shape)-2], shape[len(shape)-1]
	}
}

// sample fills a tensor of the given shape with draws from rnd.
func sample(shape tensor.Shape, dtype tensor.DataType, rnd func() float64) (*tensor.Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = rnd()
	}
	return tensor.FromSlice(data, shape, dtype)
}
