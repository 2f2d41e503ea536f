// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for element-wise helpers and concatenation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

func TestApply(t *testing.T) {
	t.Parallel()

	a := matrix.FromRows([]float64{-1, 4}, []float64{9, -16})
	abs := matrix.Apply(a, element.Abs[float64])
	assert.Equal(t, [][]float64{{1, 4}, {9, 16}}, Rows(abs))

	sq := matrix.Apply(abs, element.Sqrt[float64])
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, Rows(sq))

	// input untouched
	assert.Equal(t, -1.0, a.At(0, 0))
}

func TestEqualApprox(t *testing.T) {
	t.Parallel()

	a := matrix.FromRows([]float64{1, 2}, []float64{3, 4})
	b := matrix.FromRows([]float64{1 + 1e-10, 2}, []float64{3, 4 - 1e-10})

	assert.True(t, matrix.EqualApprox(a, b, 1e-9))
	assert.False(t, matrix.EqualApprox(a, b, 1e-11))
	assert.True(t, matrix.EqualApprox(a, b, -1e-9), "negative eps is treated as |eps|")
	assert.False(t, matrix.EqualApprox(a, matrix.Zeros[float64](2, 3), 1))

	nan := matrix.FromRows([]float64{math.NaN()})
	assert.False(t, matrix.EqualApprox(nan, nan, 1))
}

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()

	a := matrix.FromRows([]float32{1, 2}, []float32{3, 4})
	b := matrix.FromRows([]float32{1, 2.5}, []float32{2, 4})
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	assert.Equal(t, float32(1), d)

	_, err = matrix.MaxAbsDiff(a, matrix.Zeros[float32](1, 2))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// ---------- HCat / VCat ----------

func TestHCat(t *testing.T) {
	t.Parallel()

	a := matrix.New(2, 2, []float64{1, 2, 3, 4})
	b := matrix.New(2, 1, []float64{5, 6})
	got, err := matrix.HCat(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(matrix.New(2, 3, []float64{1, 2, 3, 4, 5, 6})))

	single, err := matrix.HCat(a)
	require.NoError(t, err)
	assert.True(t, single.Equal(a))
	single.Set(0, 0, 100)
	assert.Equal(t, 1.0, a.At(0, 0), "HCat must copy")
}

func TestVCat(t *testing.T) {
	t.Parallel()

	a := matrix.New(2, 2, []float64{1, 2, 3, 4})
	b := matrix.New(1, 2, []float64{5, 6})
	c := matrix.New(1, 2, []float64{7, 8})
	got, err := matrix.VCat(a, b, c)
	require.NoError(t, err)
	assert.True(t, got.Equal(matrix.New(4, 2, []float64{1, 2, 5, 7, 3, 4, 6, 8})))
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}, {5, 6}, {7, 8}}, Rows(got))
}

func TestConcat_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.HCat[float64]()
	require.ErrorIs(t, err, matrix.ErrNotEnoughInput)
	_, err = matrix.VCat[float64]()
	require.ErrorIs(t, err, matrix.ErrNotEnoughInput)

	_, err = matrix.HCat(matrix.Zeros[float64](2, 2), matrix.Zeros[float64](3, 1))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.VCat(matrix.Zeros[float64](2, 2), matrix.Zeros[float64](1, 3))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestConcat_TransposeDuality checks VCat(a, b)ᵀ == HCat(aᵀ, bᵀ).
func TestConcat_TransposeDuality(t *testing.T) {
	t.Parallel()

	a := RandomDense[float64](t, 2, 3, 11)
	b := RandomDense[float64](t, 4, 3, 12)
	v, err := matrix.VCat(a, b)
	require.NoError(t, err)
	h, err := matrix.HCat(matrix.Transpose(a), matrix.Transpose(b))
	require.NoError(t, err)
	assert.True(t, matrix.Transpose(v).Equal(h))
}
