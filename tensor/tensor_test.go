// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/lazynn/backend/cpu"
	"github.com/born-ml/lazynn/tensor"
)

// TestBackendInterface verifies that cpu.Backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

// TestTensorAPI verifies the Tensor alias exposes the expected API.
func TestTensorAPI(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Float32)
	require.NoError(t, err)

	assert.True(t, x.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, x.DType())
	assert.Equal(t, 6, x.NumElements())

	v, err := x.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	zeros, err := tensor.Zeros(tensor.Shape{3}, tensor.Float16)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, zeros.Data())

	full, err := tensor.Full(tensor.Shape{2}, 7, tensor.Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7}, full.Data())
}

// TestBroadcastShapes verifies broadcasting is exposed publicly.
func TestBroadcastShapes(t *testing.T) {
	out, broadcast, err := tensor.BroadcastShapes(tensor.Shape{32, 10}, tensor.Shape{10})
	require.NoError(t, err)
	assert.True(t, broadcast)
	assert.Equal(t, tensor.Shape{32, 10}, out)

	_, _, err = tensor.BroadcastShapes(tensor.Shape{3}, tensor.Shape{4})
	assert.Error(t, err)
}
