// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set shared by the matrix and decomp packages.
// All fallible operations return one of these sentinels, wrapped once with the
// operation tag; tests and callers MUST match them via errors.Is.
// Panics are reserved for programmer errors (malformed constructor input).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) at the
// detection site; callers still use errors.Is to match.

var (
	// ErrShapeMismatch indicates operands whose dimensions violate the
	// operation's precondition: differing shapes for Add/Sub, a.Cols != b.Rows
	// for Mul, non-square input to LU/Det, rows < cols for QR, disagreeing
	// row/column counts for HCat/VCat.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotEnoughInput indicates that a variadic operation (HCat/VCat)
	// received no operands.
	ErrNotEnoughInput = errors.New("matrix: not enough input")

	// ErrSingularMatrix is returned when the pivot search of an LU
	// factorization finds no usable pivot in a column.
	ErrSingularMatrix = errors.New("matrix: singular matrix")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opHCat       = "HCat"
	opVCat       = "VCat"
	opMaxAbsDiff = "MaxAbsDiff"
)

// Panic messages for contract violations.
const (
	panicDataLength    = "matrix: data length does not match rows*cols"
	panicNegativeShape = "matrix: negative dimension"
	panicRaggedRows    = "matrix: FromRows: rows have different lengths"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
