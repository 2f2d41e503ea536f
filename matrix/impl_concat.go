// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linalg/element"

// HCat concatenates matrices side by side: [m0 | m1 | ...].
//
// Implementation:
//   - Stage 1: require at least one operand and a common row count.
//   - Stage 2: column-major buffers are appended as-is (columns stay contiguous).
//
// Errors:
//   - ErrNotEnoughInput when called with no operands.
//   - ErrShapeMismatch when row counts differ.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func HCat[E element.Float](ms ...*Dense[E]) (*Dense[E], error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opHCat, ErrNotEnoughInput)
	}
	rows, cols := ms[0].r, 0
	for _, m := range ms {
		if m.r != rows {
			return nil, matrixErrorf(opHCat, ErrShapeMismatch)
		}
		cols += m.c
	}

	data := make([]E, 0, rows*cols)
	for _, m := range ms {
		data = append(data, m.data...)
	}

	return FromOwned(rows, cols, data), nil
}

// VCat stacks matrices on top of each other.
//
// Implementation:
//   - Stage 1: require at least one operand and a common column count.
//   - Stage 2: for every output column, append that column of each operand in order.
//
// Errors:
//   - ErrNotEnoughInput when called with no operands.
//   - ErrShapeMismatch when column counts differ.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func VCat[E element.Float](ms ...*Dense[E]) (*Dense[E], error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opVCat, ErrNotEnoughInput)
	}
	rows, cols := 0, ms[0].c
	for _, m := range ms {
		if m.c != cols {
			return nil, matrixErrorf(opVCat, ErrShapeMismatch)
		}
		rows += m.r
	}

	data := make([]E, 0, rows*cols)
	for c := 0; c < cols; c++ {
		for _, m := range ms {
			data = append(data, m.Column(c)...)
		}
	}

	return FromOwned(rows, cols, data), nil
}
