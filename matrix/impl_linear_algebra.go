// SPDX-License-Identifier: MIT
// Package matrix provides the shape-checked algebra on Dense matrices:
// element-wise addition and subtraction, negation, matrix multiplication,
// transpose and real scaling. All fallible functions perform fail-fast
// validation and return ErrShapeMismatch wrapped with the operation tag.
//
// Determinism:
//   - Every kernel walks the column-major buffers in a fixed order.
//   - Inputs are never mutated; each call allocates exactly one result.

package matrix

import "github.com/katalvlaran/linalg/element"

// addSub computes element-wise out = a + b (sub=false) or a - b (sub=true).
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop over the column-major buffers (shapes equal ⇒ layouts equal).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[E element.Float](a, b *Dense[E], sub bool, opTag string) (*Dense[E], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := Zeros[E](a.r, a.c)
	if sub {
		for idx := range res.data {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range res.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add returns a + b element-wise.
// Errors: ErrShapeMismatch when shapes differ.
// Complexity: O(r*c).
func Add[E element.Float](a, b *Dense[E]) (*Dense[E], error) { return addSub(a, b, false, opAdd) }

// Sub returns left - right element-wise.
// Errors: ErrShapeMismatch when shapes differ.
// Complexity: O(r*c).
func Sub[E element.Float](left, right *Dense[E]) (*Dense[E], error) {
	return addSub(left, right, true, opSub)
}

// Neg returns -m element-wise. Always succeeds.
func Neg[E element.Float](m *Dense[E]) *Dense[E] {
	res := Zeros[E](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = -v
	}

	return res
}

// Mul computes the matrix product left × right.
//
// Implementation:
//   - Stage 1: ValidateMulShape (left.Cols == right.Rows).
//   - Stage 2: for each output column c and row r, accumulate
//     Σ_k left[r,k]*right[k,c] into a zero of E.
//
// Behavior highlights:
//   - Accumulation happens in E itself; a float32 caller gets float32 rounding.
//   - right's column c is read as a contiguous slice.
//
// Errors:
//   - ErrShapeMismatch when left.Cols != right.Rows.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[E element.Float](left, right *Dense[E]) (*Dense[E], error) {
	if err := ValidateMulShape(left, right); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := left.r, left.c, right.c
	res := Zeros[E](rows, cols)
	var (
		r, c, k int
		acc     E
		rc      []E // right column c
	)
	for c = 0; c < cols; c++ {
		rc = right.data[c*inner : (c+1)*inner]
		for r = 0; r < rows; r++ {
			acc = element.Zero[E]()
			for k = 0; k < inner; k++ {
				acc += left.data[r+k*rows] * rc[k]
			}
			res.data[r+c*rows] = acc
		}
	}

	return res, nil
}

// Transpose returns mᵀ (shape cols×rows). Always succeeds; m is not mutated.
// Complexity: O(r*c).
func Transpose[E element.Float](m *Dense[E]) *Dense[E] {
	res := Zeros[E](m.c, m.r)
	var i, j int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			// m[i,j] → res[j,i]
			res.data[j+i*m.c] = m.data[i+j*m.r]
		}
	}

	return res
}

// Scale returns alpha*m, applying alpha through element.TimesReal so the
// constant keeps float64 precision before rounding into E.
// Complexity: O(r*c).
func Scale[E element.Float](m *Dense[E], alpha float64) *Dense[E] {
	res := Zeros[E](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = element.TimesReal(v, alpha)
	}

	return res
}
