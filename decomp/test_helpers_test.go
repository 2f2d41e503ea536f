// SPDX-License-Identifier: MIT
// Package decomp_test contains shared fixtures and assertions for the
// factorization tests.
package decomp_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

// factorTol is the reconstruction tolerance required of every factorization.
const factorTol = 1e-7

// randomDense returns an r×c matrix with entries uniform in [-1, 1).
func randomDense[E element.Float](r, c int, seed uint64) *matrix.Dense[E] {
	rng := rand.New(rand.NewPCG(seed, 0xda3e39cb94b95bdb))
	data := make([]E, r*c)
	for i := range data {
		data[i] = E(rng.Float64()*2 - 1)
	}

	return matrix.FromOwned(r, c, data)
}

// requireApprox asserts equal shapes and element-wise |want-got| <= delta.
func requireApprox[E element.Float](tb testing.TB, want, got *matrix.Dense[E], delta float64) {
	tb.Helper()
	require.Truef(tb, matrix.EqualApprox(want, got, E(delta)),
		"matrices differ beyond %g\nwant:\n%vgot:\n%v", delta, want, got)
}

// requireUpper asserts every entry strictly below the diagonal is exactly zero.
func requireUpper[E element.Float](tb testing.TB, m *matrix.Dense[E]) {
	tb.Helper()
	r, c := m.Shape()
	var i, j int
	for j = 0; j < c; j++ {
		for i = j + 1; i < r; i++ {
			require.Zerof(tb, m.At(i, j), "entry (%d,%d) below the diagonal", i, j)
		}
	}
}

// requireOrthogonal asserts Qᵀ·Q ≈ I.
func requireOrthogonal[E element.Float](tb testing.TB, q *matrix.Dense[E], delta float64) {
	tb.Helper()
	requireApprox(tb, matrix.Identity[E](q.Cols()), matrix.Gram(q), delta)
}

// permuteRows returns the matrix whose row i is row p[i] of a.
func permuteRows[E element.Float](a *matrix.Dense[E], p []int) *matrix.Dense[E] {
	out := matrix.ZerosLike(a)
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			out.Set(i, j, a.At(p[i], j))
		}
	}

	return out
}
