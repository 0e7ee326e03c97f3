package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense, row-major tensor.
//
// Values are stored as float64 but always rounded to the tensor's DataType,
// so a Float32 tensor holds exactly the values a float32 array would.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Float32)
//	x.Shape() // (2, 3)
type Tensor struct {
	data  []float64
	shape Shape
	dtype DataType
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory and rounded to dtype.
func FromSlice(data []float64, shape Shape, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("invalid data type %d", dtype)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	dtype.RoundAll(buf)

	return &Tensor{data: buf, shape: shape.Clone(), dtype: dtype}, nil
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return FromSlice(data, shape, dtype)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	return Full(shape, 0, dtype)
}

// Shape returns a copy of the tensor's shape, including the batch dimension.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the underlying row-major buffer.
//
// Writes through the returned slice are visible to the tensor; callers are
// responsible for keeping values representable in DType.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
func (t *Tensor) At(indices ...int) (float64, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("At: expected %d indices, got %d", len(t.shape), len(indices))
	}
	strides := t.shape.ComputeStrides()
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("At: index %d out of range for axis %d of size %d", idx, i, t.shape[i])
		}
		flat += idx * strides[i]
	}
	return t.data[flat], nil
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: t.shape.Clone(), dtype: t.dtype}
}

// String renders the tensor's shape, data type and a short data preview.
func (t *Tensor) String() string {
	const preview = 8
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v %s [", t.shape, t.dtype)
	for i, v := range t.data {
		if i == preview {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("]")
	return sb.String()
}
