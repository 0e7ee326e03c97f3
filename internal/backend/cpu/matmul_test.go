package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/lazynn/internal/tensor"
)

func TestDot(t *testing.T) {
	backend := newTestBackend()

	// a: (2, 3)
	a := mustTensor(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	tests := []struct {
		name   string
		a, b   *tensor.Tensor
		shape  tensor.Shape
		expect []float64
	}{
		{
			name:   "Matrix",
			a:      a,
			b:      mustTensor(t, []float64{1, 0, 0, 1, 1, 1}, tensor.Shape{3, 2}),
			shape:  tensor.Shape{2, 2},
			expect: []float64{4, 5, 10, 11},
		},
		{
			name:   "Vector",
			a:      a,
			b:      mustTensor(t, []float64{1, 1, 1}, tensor.Shape{3}),
			shape:  tensor.Shape{2},
			expect: []float64{6, 15},
		},
		{
			name: "Stacked",
			a:    a,
			// Two (3, 1) matrices: [1, 0, 0]ᵀ and [0, 0, 1]ᵀ
			b:      mustTensor(t, []float64{1, 0, 0, 0, 0, 1}, tensor.Shape{2, 3, 1}),
			shape:  tensor.Shape{2, 2, 1},
			expect: []float64{1, 3, 4, 6},
		},
		{
			name:   "BatchedInput",
			a:      mustTensor(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 1, 2}),
			b:      mustTensor(t, []float64{1, 0, 0, 2}, tensor.Shape{2, 2}),
			shape:  tensor.Shape{2, 1, 2},
			expect: []float64{1, 4, 3, 8},
		},
		{
			name:   "VectorInput",
			a:      mustTensor(t, []float64{1, 2}, tensor.Shape{2}),
			b:      mustTensor(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2}),
			shape:  tensor.Shape{2},
			expect: []float64{7, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := backend.Dot(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, got.Shape())
			assert.Equal(t, tt.expect, got.Data())
		})
	}
}

func TestDot_Errors(t *testing.T) {
	backend := newTestBackend()
	a := mustTensor(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	_, err := backend.Dot(a, mustTensor(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2}))
	assert.Error(t, err)

	scalar := mustTensor(t, []float64{1}, tensor.Shape{})
	_, err = backend.Dot(scalar, a)
	assert.Error(t, err)
}

func TestMax(t *testing.T) {
	backend := newTestBackend()
	// (2, 3, 2)
	x := mustTensor(t, []float64{
		1, 9, 2, 8, 3, 7,
		-1, -9, -2, -8, -3, -7,
	}, tensor.Shape{2, 3, 2})

	tests := []struct {
		axis   int
		shape  tensor.Shape
		expect []float64
	}{
		{0, tensor.Shape{3, 2}, []float64{1, 9, 2, 8, 3, 7}},
		{1, tensor.Shape{2, 2}, []float64{3, 9, -1, -7}},
		{2, tensor.Shape{2, 3}, []float64{9, 8, 7, -1, -2, -3}},
		{-1, tensor.Shape{2, 3}, []float64{9, 8, 7, -1, -2, -3}},
	}
	for _, tt := range tests {
		got, err := backend.Max(x, tt.axis)
		require.NoError(t, err)
		assert.Equal(t, tt.shape, got.Shape(), "axis %d", tt.axis)
		assert.Equal(t, tt.expect, got.Data(), "axis %d", tt.axis)
	}

	_, err := backend.Max(x, 3)
	assert.Error(t, err)
}
