// SPDX-License-Identifier: MIT
// Package matrix - element-wise helpers.
//
// Purpose:
//   - Apply: map a scalar function over every element into a fresh matrix.
//   - EqualApprox: tolerance-based comparison used by tests and by callers
//     verifying factorizations (Q·R ≈ A, P·A ≈ L·U).

package matrix

import "github.com/katalvlaran/linalg/element"

// Apply returns a new matrix whose elements are f(m[i,j]).
// f is called once per element in column-major order.
// Complexity: O(r*c).
func Apply[E element.Float](m *Dense[E], f func(E) E) *Dense[E] {
	res := Zeros[E](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}

	return res
}

// EqualApprox reports whether a and b have the same shape and every pair of
// elements satisfies |a[i,j] - b[i,j]| <= eps.
// A shape mismatch yields false rather than an error. NaN never compares equal.
// Complexity: O(r*c), Space O(1).
func EqualApprox[E element.Float](a, b *Dense[E], eps E) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	eps = element.Abs(eps)
	for idx := range a.data {
		if !(element.Abs(a.data[idx]-b.data[idx]) <= eps) {
			return false
		}
	}

	return true
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| over all elements, the residual
// reported by diagnostics after a factorization round trip.
// Errors: ErrShapeMismatch when shapes differ.
func MaxAbsDiff[E element.Float](a, b *Dense[E]) (E, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var worst, d E
	for idx := range a.data {
		d = element.Abs(a.data[idx] - b.data[idx])
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}
