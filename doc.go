// Package linalg is a small dense linear-algebra kernel for float32 and
// float64 matrices stored in column-major order.
//
// What is inside:
//
//	element/     Float constraint plus generic scalar helpers (Abs, Sqrt, Sign, Tolerance)
//	matrix/      the Dense[E] type, arithmetic, concatenation, gonum interop
//	decomp/      LU with partial pivoting, QR (Gram-Schmidt, Householder), determinant
//	random/      reproducible uniform and standard normal matrices
//	cmd/linalg/  diagnostic command: factorizes a random matrix and logs residuals
//
// Storage is a single contiguous slice; element (r, c) lives at r + c*rows,
// so every column is a contiguous sub-slice and can be viewed without copying.
//
// Quick example:
//
//	a := matrix.FromRows([]float64{2, 1}, []float64{4, 3})
//	lu, _ := decomp.LU(a)          // P·A = L·U
//	qr, _ := decomp.Householder(a) // A = Q·R
//	d, _ := decomp.Det(a)          // 2
//
// Algorithms never mutate their inputs and return freshly allocated results.
// Failures are reported through the sentinels matrix.ErrShapeMismatch,
// matrix.ErrNotEnoughInput and matrix.ErrSingularMatrix, wrapped with the
// name of the failing operation; test them with errors.Is.
//
//	go get github.com/katalvlaran/linalg
package linalg
