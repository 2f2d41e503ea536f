// SPDX-License-Identifier: MIT

package decomp

import (
	"errors"

	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - 0×0: the empty product, one.
//   - 1×1 and 2×2: closed forms (a and ad - bc).
//   - larger: LU with the given options; det = (-1)^swaps · Πdiag(L) · Πdiag(U),
//     swaps counted by PermutationSwaps on P.
//
// Behavior highlights:
//   - A singular LU is not an error here: the determinant is zero.
//   - opts only matter for n >= 3, where they select the pivot tolerance.
//
// Errors:
//   - matrix.ErrShapeMismatch if a is not square.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det[E element.Float](a *matrix.Dense[E], opts ...Option) (E, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, decompErrorf(opDet, err)
	}

	switch a.Rows() {
	case 0:
		return element.One[E](), nil
	case 1:
		return a.At(0, 0), nil
	case 2:
		return a.At(0, 0)*a.At(1, 1) - a.At(0, 1)*a.At(1, 0), nil
	}

	res, err := LU(a, opts...)
	if errors.Is(err, matrix.ErrSingularMatrix) {
		return element.Zero[E](), nil
	}
	if err != nil {
		return 0, decompErrorf(opDet, err)
	}

	det := diagonalProduct(res.L) * diagonalProduct(res.U)
	if PermutationSwaps(res.P)%2 == 1 {
		det = -det
	}

	return det, nil
}

// diagonalProduct returns Π m[i,i] for a square m.
func diagonalProduct[E element.Float](m *matrix.Dense[E]) E {
	prod := element.One[E]()
	for i := 0; i < m.Rows(); i++ {
		prod *= m.At(i, i)
	}

	return prod
}
