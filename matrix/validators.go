// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape preconditions.
//  - Keep kernels minimal by delegating shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap once more with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/element"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b have equal dimensions.
// Returns a wrapped ErrShapeMismatch otherwise.
// Complexity: O(1). Use for Add/Sub-like element-wise kernels.
func ValidateSameShape[E element.Float](a, b *Dense[E]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrShapeMismatch if not square.
// Complexity: O(1). Use before LU and determinant.
func ValidateSquare[E element.Float](m *Dense[E]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulShape checks the inner dimensions of left×right agree.
func ValidateMulShape[E element.Float](left, right *Dense[E]) error {
	if left.c != right.r {
		return validatorErrorf("ValidateMulShape", ErrShapeMismatch)
	}

	return nil
}

// ValidateTall checks Rows >= Cols, the precondition of both QR kernels.
func ValidateTall[E element.Float](m *Dense[E]) error {
	if m.r < m.c {
		return validatorErrorf("ValidateTall", ErrShapeMismatch)
	}

	return nil
}
