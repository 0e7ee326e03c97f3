// Package tensor provides the dense tensor type, the working-precision data
// types and the Backend contract used by the layers in internal/nn.
package tensor

import (
	"github.com/x448/float16"
)

// DataType is the floating-point precision values are rounded to.
type DataType int

// Supported working precisions.
const (
	Float32 DataType = iota
	Float64
	Float16
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Valid reports whether dt is one of the supported precisions.
func (dt DataType) Valid() bool {
	return dt == Float16 || dt == Float32 || dt == Float64
}

// Round returns v rounded to the nearest value representable in dt.
func (dt DataType) Round(v float64) float64 {
	switch dt {
	case Float16:
		return float64(float16.Fromfloat32(float32(v)).Float32())
	case Float32:
		return float64(float32(v))
	default:
		return v
	}
}

// RoundAll rounds every element of data in place.
func (dt DataType) RoundAll(data []float64) {
	if dt == Float64 {
		return
	}
	for i, v := range data {
		data[i] = dt.Round(v)
	}
}
