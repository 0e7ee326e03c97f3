package cpu

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/lazynn/internal/tensor"
)

// Dot computes the NumPy-style dot product of a and b.
//
// The last axis of a is contracted with the second-to-last axis of b (or the
// only axis of a vector b). The result shape is
// a.shape[:-1] + b.shape[:-2] + b.shape[-1:].
//
// Example:
//
//	(32, 5) · (5, 10)    → (32, 10)
//	(32, 5) · (4, 5, 10) → (32, 4, 10)
func (cpu *CPUBackend) Dot(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) == 0 || len(bShape) == 0 {
		return nil, errors.Errorf("dot: scalar operands are not supported (shapes %v and %v)", aShape, bShape)
	}

	// A vector b contracts like a (K, 1) matrix whose trailing axis is dropped.
	vector := len(bShape) == 1
	if vector {
		bShape = tensor.Shape{bShape[0], 1}
	}

	k := aShape.Last()
	bk := bShape[len(bShape)-2]
	if k != bk {
		return nil, errors.Errorf("dot: shapes %v and %v not aligned: %d (dim %d) != %d (dim %d)",
			a.Shape(), b.Shape(), k, len(aShape)-1, bk, len(bShape)-2)
	}

	rows := aShape.NumElements() / k
	cols := bShape.Last()
	batch := bShape[:len(bShape)-2].NumElements()

	lhs := mat.NewDense(rows, k, a.Data())
	dst := make([]float64, rows*batch*cols)
	prod := mat.NewDense(rows, cols, nil)
	bd := b.Data()

	for p := 0; p < batch; p++ {
		rhs := mat.NewDense(k, cols, bd[p*k*cols:(p+1)*k*cols])
		prod.Mul(lhs, rhs)
		// out[r, p, c] = prod[r, c]
		for r := 0; r < rows; r++ {
			copy(dst[(r*batch+p)*cols:(r*batch+p+1)*cols], prod.RawRowView(r))
		}
	}

	outShape := aShape[:len(aShape)-1].Clone()
	outShape = append(outShape, bShape[:len(bShape)-2]...)
	if !vector {
		outShape = append(outShape, cols)
	}
	return cpu.newResult(dst, outShape), nil
}
