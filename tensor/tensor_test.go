// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/tensorism/dim"
	"github.com/born-ml/tensorism/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI verifies the aliases expose the internal behavior.
func TestPublicAPI(t *testing.T) {
	rows, cols := dim.Static(2), dim.New(3)
	x, err := tensor.New(tensor.Of(rows, cols), []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 6.0, x.MustAt(1, 2))
	assert.True(t, x.Shape().Equal(tensor.Of(dim.Static(2), dim.Static(3))))

	_, err = x.At(2, 0)
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfRange)

	_, err = tensor.New(tensor.Of(rows), []int{1})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestCreationFunctions(t *testing.T) {
	n := dim.Static(2)
	assert.Equal(t, []int{7, 7, 7, 7}, tensor.Full(tensor.Of(n, n), 7).Data())
	assert.Equal(t, 5, tensor.Scalar(5).Item())

	eye := tensor.FromFunc(tensor.Of(n, n), func(ix []int) int {
		if ix[0] == ix[1] {
			return 1
		}
		return 0
	})
	assert.Equal(t, []int{1, 0, 0, 1}, eye.Data())

	owned, err := tensor.Own(tensor.Of(n), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", owned.MustAt(0))

	built, err := tensor.NewBuilder[int](tensor.Of(n, n)).Append(1).Fill(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 2}, built.Data())
}

func TestCastAndEqual(t *testing.T) {
	n := dim.Static(2)
	loaded, err := tensor.New(tensor.Of(dim.New(2), dim.New(2)), []int{1, 0, 0, 1})
	require.NoError(t, err)

	square, err := loaded.Cast(tensor.Of(n, n))
	require.NoError(t, err)
	assert.Equal(t, "〈2, 2〉[[1, 0], [0, 1]]", square.String())

	eye := tensor.FromFunc(tensor.Of(n, n), func(ix []int) int {
		if ix[0] == ix[1] {
			return 1
		}
		return 0
	})
	assert.True(t, tensor.Equal(square, eye))
	assert.True(t, tensor.Equal(loaded, eye))

	_, err = loaded.Cast(tensor.Of(dim.Static(4)))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
