// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points that read naturally at call sites.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/katalvlaran/linalg/element"

// ---------- Constructors & Utilities ----------

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike[E element.Float](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[E](m.r), nil
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum[E element.Float](a, b *Dense[E]) (*Dense[E], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff[E element.Float](a, b *Dense[E]) (*Dense[E], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[E element.Float](a, b *Dense[E]) (*Dense[E], error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E element.Float](m *Dense[E]) *Dense[E] { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy[E element.Float](m *Dense[E], alpha float64) *Dense[E] { return Scale(m, alpha) }

// ---------- Convenience facades (compositions only; no loop duplication) ----------

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
// Errors: ErrShapeMismatch when m is not square.
// Complexity: O(rc).
func Symmetrize[E element.Float](m *Dense[E]) (*Dense[E], error) {
	sum, err := Add(m, Transpose(m))
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Scale(sum, 0.5), nil
}

// Gram returns mᵀ·m, the Gram matrix of m's columns. QR callers use it to
// check orthonormality (Gram(Q) ≈ I).
// Complexity: O(r*c^2).
func Gram[E element.Float](m *Dense[E]) *Dense[E] {
	g, err := Mul(Transpose(m), m)
	if err != nil {
		// Transpose(m).Cols == m.Rows always holds.
		panic(err)
	}

	return g
}
