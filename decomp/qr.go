// SPDX-License-Identifier: MIT

package decomp

import (
	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

// QRResult holds the factors of A = Q·R.
type QRResult[E element.Float] struct {
	// Q is m×m orthogonal.
	Q *matrix.Dense[E]
	// R is m×n upper-trapezoidal.
	R *matrix.Dense[E]
}

// GramSchmidt factorizes a tall or square matrix by the Gram-Schmidt process.
//
// Implementation:
//   - Stage 1: validate rows >= cols.
//   - Stage 2: for each column i, start from a copy of a[:,i] and subtract
//     its projection on every q_j, j < i, using the running residual. The
//     normalized residual becomes q_i.
//   - Stage 3: a residual that vanishes relative to ‖a[:,i]‖ (rank
//     deficiency), and every column past n, is replaced by a completion
//     vector so Q is a full m×m orthogonal matrix.
//   - Stage 4: R[j,i] = <q_j, a[:,i]> for j <= i, zero elsewhere.
//
// Behavior highlights:
//   - Orthogonality degrades on nearly dependent columns; use Householder
//     when that matters.
//   - a is never mutated.
//
// Errors:
//   - matrix.ErrShapeMismatch when rows < cols.
//
// Complexity:
//   - Time O(m^2·n + m^3) with basis completion, Space O(m^2).
func GramSchmidt[E element.Float](a *matrix.Dense[E]) (*QRResult[E], error) {
	if err := matrix.ValidateTall(a); err != nil {
		return nil, decompErrorf(opGramSchmidt, err)
	}

	m, n := a.Shape()
	q := matrix.Zeros[E](m, m)
	residual := make([]E, m)
	relTol := element.Sqrt(element.Tolerance[E]())

	var (
		i, j   int
		nrm    E
		ai, qj []E
	)
	for i = 0; i < n; i++ {
		ai = a.Column(i)
		copy(residual, ai)
		for j = 0; j < i; j++ {
			qj = q.Column(j)
			axpy(residual, -dot(residual, qj), qj)
		}
		nrm = norm2(residual)
		if nrm <= relTol*norm2(ai) {
			completeColumn(q, i)
			continue
		}
		divTo(q.Column(i), residual, nrm)
	}
	for i = n; i < m; i++ {
		completeColumn(q, i)
	}

	r := matrix.Zeros[E](m, n)
	for i = 0; i < n; i++ {
		ai = a.Column(i)
		for j = 0; j <= i; j++ {
			r.Set(j, i, dot(q.Column(j), ai))
		}
	}

	return &QRResult[E]{Q: q, R: r}, nil
}

// completeColumn writes into q[:,col] a unit vector orthogonal to
// q[:,0:col], which must already be orthonormal. It starts from the standard
// basis vector e_k that keeps the most length after projection, i.e. the k
// minimising Σ_j q[k,j]², and orthogonalizes it twice.
func completeColumn[E element.Float](q *matrix.Dense[E], col int) {
	m := q.Rows()
	var (
		best, r, j int
		w, bestW   E
	)
	for r = 0; r < m; r++ {
		w = 0
		for j = 0; j < col; j++ {
			w += q.At(r, j) * q.At(r, j)
		}
		if r == 0 || w < bestW {
			best, bestW = r, w
		}
	}

	v := q.Column(col)
	clear(v)
	v[best] = element.One[E]()
	for pass := 0; pass < 2; pass++ {
		for j = 0; j < col; j++ {
			qj := q.Column(j)
			axpy(v, -dot(v, qj), qj)
		}
	}
	divTo(v, v, norm2(v))
}

// Householder factorizes a tall or square matrix with Householder reflections.
//
// Implementation:
//   - Stage 1: validate rows >= cols; Q = I, R = clone(a).
//   - Stage 2: for k = 0 .. min(rows-1, cols)-1, take x = R[k:,k],
//     alpha = -sign(x0)·‖x‖, u = x with u0 -= alpha, normalized.
//   - Stage 3: Q_k = I - 2·u·uᵀ on the trailing (rows-k)² block, identity
//     elsewhere; Q = Q_k·Q and R = Q_k·R. Entries of R below (k,k) are
//     then set to zero.
//   - Stage 4: return Qᵀ and R, since R = Q_{last}···Q_0·A.
//
// Behavior highlights:
//   - A sub-column that is already zero has no reflector; the step is skipped.
//   - The factor 2 is applied with element.TimesReal.
//
// Errors:
//   - matrix.ErrShapeMismatch when rows < cols.
//
// Complexity:
//   - Time O(m^3·min(m, n)), Space O(m^2).
func Householder[E element.Float](a *matrix.Dense[E]) (*QRResult[E], error) {
	if err := matrix.ValidateTall(a); err != nil {
		return nil, decompErrorf(opHouseholder, err)
	}

	m, n := a.Shape()
	r := a.Clone()
	q := matrix.Identity[E](m)
	u := make([]E, m)

	var (
		k, i, j   int
		alpha, un E
		x, uk     []E
		err       error
	)
	for k = 0; k < min(m-1, n); k++ {
		x = r.Column(k)[k:]
		alpha = -element.Sign(x[0]) * norm2(x)
		uk = u[:m-k]
		copy(uk, x)
		uk[0] -= alpha
		un = norm2(uk)
		if un == 0 {
			continue
		}
		divTo(uk, uk, un)

		qk := matrix.Identity[E](m)
		for j = 0; j < m-k; j++ {
			for i = 0; i < m-k; i++ {
				qk.Set(k+i, k+j, qk.At(k+i, k+j)-element.TimesReal(uk[i]*uk[j], 2))
			}
		}

		if q, err = matrix.Mul(qk, q); err != nil {
			return nil, decompErrorf(opHouseholder, err)
		}
		if r, err = matrix.Mul(qk, r); err != nil {
			return nil, decompErrorf(opHouseholder, err)
		}
		clear(r.Column(k)[k+1:])
	}

	return &QRResult[E]{Q: matrix.Transpose(q), R: r}, nil
}
