// SPDX-License-Identifier: MIT

// Package decomp implements the factorizations of dense column-major
// matrices and the quantities derived from them.
//
// What:
//
//   - LU with partial pivoting: P·A = L·U, L unit lower-triangular,
//     U upper-triangular, P encoded as a row-index slice.
//   - QR by classical Gram-Schmidt and by Householder reflections:
//     A = Q·R with Q m×m orthogonal and R m×n upper-trapezoidal.
//   - Det: determinant from LU plus permutation parity (closed forms up to 2×2).
//
// Why:
//
//   - Every routine is generic over element.Float, so a float32 caller gets
//     float32 storage and rounding throughout, a float64 caller float64.
//   - Inputs are never mutated: each call clones a private working copy.
//   - Failures are values: matrix.ErrShapeMismatch and matrix.ErrSingularMatrix,
//     wrapped with the operation tag ("LU: ...") and matched via errors.Is.
//
// Pivot tolerance:
//
// LU treats a column as singular when its largest remaining magnitude is not
// greater than a tolerance. The default is element.Tolerance[E]() (1e-16 for
// float64, 1e-7 for float32). WithPivotTolerance overrides it and
// WithExactPivot selects the exact-zero rule:
//
//	res, err := decomp.LU(a)                        // type-derived tolerance
//	res, err  = decomp.LU(a, decomp.WithExactPivot()) // |pivot| == 0 only
//
// Choosing a QR variant:
//
// Gram-Schmidt is the textbook algorithm and loses orthogonality on nearly
// dependent columns. Householder costs more (one m×m reflector product per
// column) and is stable. Neither is a default; pick one explicitly or by
// name through ParseMethod and QR.
//
// Complexity:
//
//   - LU, Det: O(n^3) time, O(n^2) memory.
//   - GramSchmidt: O(m^2·n) time, O(m^2) memory.
//   - Householder: O(m^3·min(m, n)) time (explicit reflector products), O(m^2) memory.
//
// Concurrency:
//
// No package state is shared between calls; concurrent calls on distinct
// inputs are safe.
package decomp
