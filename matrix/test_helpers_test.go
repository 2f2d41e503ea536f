// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

// approxDelta is the default tolerance for float64 comparisons in this package.
const approxDelta = 1e-12

// RandomDense builds an r×c matrix with values drawn uniformly from [-1, 1)
// using a PCG source seeded with seed. Same seed ⇒ same matrix.
func RandomDense[E element.Float](tb testing.TB, r, c int, seed uint64) *matrix.Dense[E] {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]E, r*c)
	for i := range data {
		data[i] = E(rng.Float64()*2 - 1)
	}

	return matrix.FromOwned(r, c, data)
}

// Rows extracts m as row slices for readable comparisons against literals.
func Rows[E element.Float](m *matrix.Dense[E]) [][]E {
	out := make([][]E, m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		out[i] = make([]E, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}

// RequireApprox fails the test unless got and want have the same shape and all
// elements lie within delta of each other. The failure message prints both
// matrices row by row.
func RequireApprox[E element.Float](tb testing.TB, want, got *matrix.Dense[E], delta E) {
	tb.Helper()
	r, c := want.Shape()
	gr, gc := got.Shape()
	require.Equal(tb, []int{r, c}, []int{gr, gc}, "shape")
	require.Truef(tb, matrix.EqualApprox(want, got, delta),
		"matrices differ beyond %g\nwant:\n%vgot:\n%v", float64(delta), want, got)
}
