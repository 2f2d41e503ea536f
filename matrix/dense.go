// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & accessors.
//
// Purpose:
//   - Provide a flat column-major buffer with the explicit index formula i + j*rows.
//   - Expose whole columns as zero-copy slices (Column) for column-oriented kernels.
//   - Keep the hot path unchecked: At/Set rely on Go's slice bounds check only,
//     out-of-range coordinates are a caller bug, not an error value.
//
// Complexity quicksheet:
//   - New/Zeros/Identity: O(r*c); FromOwned: O(1); At/Set/Column: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/element"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// checkShape panics on negative dimensions or a data length that disagrees
// with rows*cols. It is the single guard behind every public constructor.
func checkShape(rows, cols, n int) {
	if rows < 0 || cols < 0 {
		panic(panicNegativeShape)
	}
	if n != rows*cols {
		panic(panicDataLength)
	}
}

// New creates a rows×cols matrix from column-major data, copying it.
// MAIN DESCRIPTION:
//   - Public constructor for callers that keep using their slice afterwards.
//
// Implementation:
//   - Stage 1: validate len(data) == rows*cols (panic otherwise).
//   - Stage 2: allocate and copy.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - data: column-major values, data[i + j*rows] = A[i,j].
//
// Returns:
//   - *Dense[E] owning a private copy of data.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Use FromRows when the values are naturally written row by row.
func New[E element.Float](rows, cols int, data []E) *Dense[E] {
	checkShape(rows, cols, len(data))
	buf := make([]E, len(data))
	copy(buf, data)

	return &Dense[E]{r: rows, c: cols, data: buf}
}

// FromOwned creates a rows×cols matrix that takes ownership of data (no copy).
// The caller must not touch data afterwards. Panics if len(data) != rows*cols.
// Complexity: O(1).
func FromOwned[E element.Float](rows, cols int, data []E) *Dense[E] {
	checkShape(rows, cols, len(data))

	return &Dense[E]{r: rows, c: cols, data: data}
}

// Zeros returns a rows×cols matrix filled with the additive identity.
// Complexity: O(r*c) zeroing by the runtime.
func Zeros[E element.Float](rows, cols int) *Dense[E] {
	if rows < 0 || cols < 0 {
		panic(panicNegativeShape)
	}

	return &Dense[E]{r: rows, c: cols, data: make([]E, rows*cols)}
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[E element.Float](n int) *Dense[E] {
	m := Zeros[E](n, n)
	for i := 0; i < n; i++ {
		m.data[i+i*n] = element.One[E]()
	}

	return m
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike[E element.Float](m *Dense[E]) *Dense[E] { return Zeros[E](m.r, m.c) }

// FromRows builds a matrix from row literals, the way matrices are usually
// written down:
//
//	a := matrix.FromRows(
//		[]float64{1, 2},
//		[]float64{3, 4},
//	)
//
// All rows must have the same length (panics otherwise). No rows yields 0×0.
// Complexity: O(r*c).
func FromRows[E element.Float](rows ...[]E) *Dense[E] {
	r := len(rows)
	if r == 0 {
		return Zeros[E](0, 0)
	}
	c := len(rows[0])
	m := Zeros[E](r, c)
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			panic(panicRaggedRows)
		}
		for j = 0; j < c; j++ {
			m.data[i+j*r] = rows[i][j]
		}
	}

	return m
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[E]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[E]) IsSquare() bool { return m.r == m.c }

// Index returns the flat offset of (row, col) in Data(). No bounds check.
func (m *Dense[E]) Index(row, col int) int { return row + col*m.r }

// At returns the element at (row, col).
// Out-of-range coordinates are a caller bug and may panic or alias another cell.
func (m *Dense[E]) At(row, col int) E { return m.data[row+col*m.r] }

// Set stores v at (row, col). Same bounds contract as At.
func (m *Dense[E]) Set(row, col int, v E) { m.data[row+col*m.r] = v }

// Column returns column col as a sub-slice of the backing buffer.
// No copy is made: writes through the slice are visible in m. Callers that
// only read must treat it as read-only.
// Complexity: O(1).
func (m *Dense[E]) Column(col int) []E {
	return m.data[col*m.r : (col+1)*m.r : (col+1)*m.r]
}

// Data returns the column-major backing slice (len == Rows()*Cols()).
func (m *Dense[E]) Data() []E { return m.data }

// Clone returns a deep copy of m.
// Complexity: O(r*c) time and memory.
func (m *Dense[E]) Clone() *Dense[E] {
	buf := make([]E, len(m.data))
	copy(buf, m.data)

	return &Dense[E]{r: m.r, c: m.c, data: buf}
}

// Equal reports whether m and other have the same shape and identical elements.
// NaN never equals NaN, matching ==.
func (m *Dense[E]) Equal(other *Dense[E]) bool {
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line:
//
//	[1, 2]
//	[3, 4]
//
// Complexity: O(r*c).
func (m *Dense[E]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(fmt.Sprintf("%g", m.data[i+j*m.r]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
