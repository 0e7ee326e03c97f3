package cpu

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/lazynn/internal/tensor"
)

// Max returns the maximum along axis, removing that axis from the shape.
//
// Parameters:
//   - axis: dimension to reduce (supports negative indexing: -1 = last dim)
//
// Example:
//
//	x := ... // shape (32, 4, 10)
//	y, _ := backend.Max(x, 1) // shape (32, 10)
func (cpu *CPUBackend) Max(x *tensor.Tensor, axis int) (*tensor.Tensor, error) {
	shape := x.Shape()
	axis, err := normalizeAxis(axis, len(shape))
	if err != nil {
		return nil, errors.Wrap(err, "max")
	}

	outer := shape[:axis].NumElements()
	size := shape[axis]
	inner := shape[axis+1:].NumElements()

	src := x.Data()
	dst := make([]float64, outer*inner)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			m := math.Inf(-1)
			for d := 0; d < size; d++ {
				m = math.Max(m, src[(o*size+d)*inner+i])
			}
			dst[o*inner+i] = m
		}
	}

	outShape := make(tensor.Shape, 0, len(shape)-1)
	outShape = append(outShape, shape[:axis]...)
	outShape = append(outShape, shape[axis+1:]...)
	return cpu.newResult(dst, outShape), nil
}
