// SPDX-License-Identifier: MIT

package decomp

import (
	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

// LUResult holds the factors of P·A = L·U.
type LUResult[E element.Float] struct {
	// L is unit lower-triangular (n×n).
	L *matrix.Dense[E]
	// U is upper-triangular (n×n); entries below the diagonal are exactly zero.
	U *matrix.Dense[E]
	// P[i] is the row of A that occupies row i of U (and of P·A).
	P []int
}

// LU factorizes a square matrix with partial (row-max) pivoting.
//
// Implementation:
//   - Stage 1: validate squareness, resolve the pivot tolerance, clone a.
//   - Stage 2: for each column i, pick the row of the working copy with the
//     largest |a[r,i]| (lowest index wins ties). If that magnitude is not
//     greater than the tolerance, fail with ErrSingularMatrix.
//   - Stage 3: swap the labels of output rows i and the pivot's current
//     output row in P and its inverse, swapping the already computed part of
//     L (columns < i) along with them.
//   - Stage 4: move the pivot row into row i of U and clear it in the copy.
//   - Stage 5: eliminate column i from every other row with a nonzero entry,
//     storing the ratio at L[invP[r], i].
//
// Behavior highlights:
//   - a is never mutated.
//   - NaN pivots count as singular.
//   - 0×0 input yields empty factors.
//
// Errors:
//   - matrix.ErrShapeMismatch if a is not square.
//   - matrix.ErrSingularMatrix if a column has no usable pivot.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU[E element.Float](a *matrix.Dense[E], opts ...Option) (*LUResult[E], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, decompErrorf(opLU, err)
	}
	tol := pivotTolerance[E](gatherOptions(opts...))

	n := a.Rows()
	work := a.Clone()
	w := work.Data()
	l := matrix.Identity[E](n)
	u := matrix.Zeros[E](n, n)
	ld, ud := l.Data(), u.Data()

	p := make([]int, n)
	invP := make([]int, n) // invP[x] = output row currently holding row x of a
	for i := range p {
		p[i], invP[i] = i, i
	}

	var (
		i, r, c          int
		pivotRow, outRow int
		best, v, ratio   E
		col              []E
	)
	for i = 0; i < n; i++ {
		// Stage 2: row-max pivot search over column i.
		col = work.Column(i)
		pivotRow, best = 0, element.Abs(col[0])
		for r = 1; r < n; r++ {
			if v = element.Abs(col[r]); v > best {
				pivotRow, best = r, v
			}
		}
		if !(best > tol) {
			return nil, decompErrorf(opLU, matrix.ErrSingularMatrix)
		}

		// Stage 3: relabel output rows i <-> outRow.
		outRow = invP[pivotRow]
		src1, src2 := p[i], p[outRow]
		p[i], p[outRow] = src2, src1
		invP[src2], invP[src1] = i, outRow
		for c = 0; c < i; c++ {
			ld[i+c*n], ld[outRow+c*n] = ld[outRow+c*n], ld[i+c*n]
		}

		// Stage 4: pivot row → U row i. Columns < i are already zero.
		for c = i; c < n; c++ {
			ud[i+c*n] = w[pivotRow+c*n]
			w[pivotRow+c*n] = 0
		}

		// Stage 5: eliminate column i.
		for r = 0; r < n; r++ {
			if w[r+i*n] == 0 {
				continue
			}
			ratio = w[r+i*n] / ud[i+i*n]
			w[r+i*n] = 0
			for c = i + 1; c < n; c++ {
				w[r+c*n] -= ratio * ud[i+c*n]
			}
			ld[invP[r]+i*n] = ratio
		}
	}

	return &LUResult[E]{L: l, U: u, P: p}, nil
}

// PermutationMatrix materialises P: row i has a single one at column P[i],
// so P·A moves row P[i] of A to row i.
// Complexity: O(n^2).
func (res *LUResult[E]) PermutationMatrix() *matrix.Dense[E] {
	n := len(res.P)
	pm := matrix.Zeros[E](n, n)
	for i, src := range res.P {
		pm.Set(i, src, element.One[E]())
	}

	return pm
}

// Reconstruct returns Pᵀ·L·U, which equals the factorized matrix up to rounding.
// Complexity: O(n^3).
func (res *LUResult[E]) Reconstruct() *matrix.Dense[E] {
	lu, err := matrix.Mul(res.L, res.U)
	if err != nil {
		panic(err) // L and U are both n×n
	}
	n := len(res.P)
	out := matrix.Zeros[E](n, n)
	var i, c int
	for i = 0; i < n; i++ {
		for c = 0; c < n; c++ {
			out.Set(res.P[i], c, lu.At(i, c))
		}
	}

	return out
}

// PermutationSwaps returns the number of transpositions that take p back to
// the identity, following each cycle on a private copy (p is not modified).
// Its parity is the parity of the permutation.
// Complexity: O(n).
func PermutationSwaps(p []int) int {
	a := make([]int, len(p))
	copy(a, p)

	swaps := 0
	for i := range a {
		for a[i] != i {
			j := a[i]
			a[i], a[j] = a[j], j
			swaps++
		}
	}

	return swaps
}
