// SPDX-License-Identifier: MIT
package decomp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/decomp"
	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

// qrFunc lets the same property tests run against both algorithms.
type qrFunc[E element.Float] func(*matrix.Dense[E]) (*decomp.QRResult[E], error)

func qrVariants[E element.Float]() map[string]qrFunc[E] {
	return map[string]qrFunc[E]{
		"GramSchmidt": decomp.GramSchmidt[E],
		"Householder": decomp.Householder[E],
	}
}

// checkQR asserts the QR contract: Q·R ≈ A, Qᵀ·Q ≈ I, R upper-trapezoidal,
// shapes m×m and m×n.
func checkQR[E element.Float](t *testing.T, a *matrix.Dense[E], res *decomp.QRResult[E], delta float64) {
	t.Helper()
	m, n := a.Shape()
	qr, qc := res.Q.Shape()
	rr, rc := res.R.Shape()
	require.Equal(t, []int{m, m, m, n}, []int{qr, qc, rr, rc})

	prod, err := matrix.Mul(res.Q, res.R)
	require.NoError(t, err)
	requireApprox(t, a, prod, delta)
	requireOrthogonal(t, res.Q, delta)
	requireUpper(t, res.R)
}

func TestQR_KnownInputs(t *testing.T) {
	inputs := []*matrix.Dense[float64]{
		matrix.FromRows([]float64{1, 2}, []float64{1, 1}),
		matrix.FromRows(
			[]float64{1, 2, 3},
			[]float64{1, 1, 4},
			[]float64{5, 6, 2},
		),
		matrix.FromRows([]float64{1, 2}, []float64{3, 4}, []float64{5, 6}),
	}
	for name, f := range qrVariants[float64]() {
		for i, a := range inputs {
			t.Run(fmt.Sprintf("%s/%d", name, i), func(t *testing.T) {
				orig := a.Clone()
				res, err := f(a)
				require.NoError(t, err)
				require.True(t, a.Equal(orig), "input mutated")
				checkQR(t, a, res, factorTol)
			})
		}
	}
}

func TestQR_RandomTall(t *testing.T) {
	for name, f := range qrVariants[float64]() {
		for _, shape := range [][2]int{{1, 1}, {4, 4}, {7, 3}, {10, 1}, {9, 0}} {
			m, n := shape[0], shape[1]
			t.Run(fmt.Sprintf("%s/%dx%d", name, m, n), func(t *testing.T) {
				a := randomDense[float64](m, n, uint64(m*31+n))
				res, err := f(a)
				require.NoError(t, err)
				checkQR(t, a, res, factorTol)
			})
		}
	}
}

func TestQR_Float32(t *testing.T) {
	for name, f := range qrVariants[float32]() {
		t.Run(name, func(t *testing.T) {
			a := randomDense[float32](6, 4, 5)
			res, err := f(a)
			require.NoError(t, err)
			checkQR(t, a, res, 1e-4)
		})
	}
}

// TestQR_RankDeficient covers zero and dependent columns; Q must stay orthogonal.
func TestQR_RankDeficient(t *testing.T) {
	inputs := map[string]*matrix.Dense[float64]{
		"dependent": matrix.FromRows([]float64{1, 2}, []float64{2, 4}, []float64{3, 6}),
		"zero col":  matrix.FromRows([]float64{0, 1}, []float64{0, 2}, []float64{0, 3}),
		"zero":      matrix.Zeros[float64](3, 2),
	}
	for name, f := range qrVariants[float64]() {
		for label, a := range inputs {
			t.Run(name+"/"+label, func(t *testing.T) {
				res, err := f(a)
				require.NoError(t, err)
				checkQR(t, a, res, factorTol)
			})
		}
	}
}

func TestQR_ShapeMismatch(t *testing.T) {
	wide := matrix.Zeros[float64](2, 3)
	for name, f := range qrVariants[float64]() {
		_, err := f(wide)
		require.ErrorIs(t, err, matrix.ErrShapeMismatch, name)
		assert.Contains(t, err.Error(), name)
	}
}

// TestHouseholder_SingleColumn checks the reflector sign convention:
// R[0,0] = -sign(a0)·‖a‖.
func TestHouseholder_SingleColumn(t *testing.T) {
	res, err := decomp.Householder(matrix.FromRows([]float64{3}, []float64{4}))
	require.NoError(t, err)
	assert.InDelta(t, -5.0, res.R.At(0, 0), 1e-12)
	assert.Zero(t, res.R.At(1, 0))
	assert.InDelta(t, -0.6, res.Q.At(0, 0), 1e-12)
	assert.InDelta(t, -0.8, res.Q.At(1, 0), 1e-12)
}

// TestGramSchmidt_SingleColumn checks the positive-diagonal convention and
// the completed second column.
func TestGramSchmidt_SingleColumn(t *testing.T) {
	res, err := decomp.GramSchmidt(matrix.FromRows([]float64{3}, []float64{4}))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.R.At(0, 0), 1e-12)
	assert.InDelta(t, 0.6, res.Q.At(0, 0), 1e-12)
	assert.InDelta(t, 0.8, res.Q.At(1, 0), 1e-12)
	assert.InDelta(t, 0.0, res.Q.At(0, 0)*res.Q.At(0, 1)+res.Q.At(1, 0)*res.Q.At(1, 1), 1e-12)
}

// TestQR_AgainstGonum compares |diag(R)| with gonum's QR, which is unique up
// to the sign of each row of R for a full-rank input.
func TestQR_AgainstGonum(t *testing.T) {
	a := randomDense[float64](6, 4, 21)
	var ref mat.QR
	ref.Factorize(matrix.AsGonum(a))
	var refR mat.Dense
	ref.RTo(&refR)

	for name, f := range qrVariants[float64]() {
		res, err := f(a)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			got, want := res.R.At(i, i), refR.At(i, i)
			assert.Truef(t, scalar.EqualWithinAbs(abs(got), abs(want), 1e-9),
				"%s: |R[%d,%d]| = %g, gonum %g", name, i, i, got, want)
		}
	}
}

func abs(x float64) float64 { return element.Abs(x) }
