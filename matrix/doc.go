// Package matrix offers a dense, column-major matrix generic over the element
// types of package element, plus the shape-checked algebra built on it.
//
// The matrix package provides:
//
//   - Dense[E]: a flat column-major buffer with O(1) element access and
//     zero-copy whole-column views (Column), which the QR kernels in decomp
//     rely on.
//   - Factories: New (copying), FromOwned (taking ownership), Zeros,
//     Identity and the row-literal builder FromRows.
//   - Algebra: Add, Sub, Neg, Mul, Transpose, Scale, Apply, HCat, VCat and
//     EqualApprox.
//   - Interop with gonum: AsGonum (zero-copy view), ToGonum and FromGonum.
//
// Errors are the sentinels in errors.go (ErrShapeMismatch,
// ErrNotEnoughInput, ErrSingularMatrix), wrapped with the operation name and
// matched via errors.Is. Malformed construction input (data length not equal
// to rows*cols) is a programmer error and panics.
//
// See the examples in this package and in decomp for usage patterns.
package matrix
