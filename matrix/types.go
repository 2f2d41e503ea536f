// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file intentionally contains ONLY the Dense container type; its
// constructors and methods live in dense.go, algebra in impl_linear_algebra.go.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/element"
)

// Dense is a column-major matrix of E values.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c; element (i,j) lives at i + j*r.
//
// Column-major storage makes Column(j) a free sub-slice, which is the cost
// model the column-oriented QR kernels are written against.
//
// Complexity notes: all accessors are O(1) except Clone/Equal/String (O(r*c)).
type Dense[E element.Float] struct {
	r, c int // row and column counts (>= 0)
	data []E // contiguous column-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)
