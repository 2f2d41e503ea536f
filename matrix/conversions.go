// SPDX-License-Identifier: MIT
// Package matrix - converters between Dense[E] and gonum's mat package.
//
// Purpose:
//   - Let callers hand a Dense to gonum routines (norms, solvers, reference
//     factorizations) without copying: AsGonum returns a read-only view.
//   - Materialize a *mat.Dense (row-major, float64) with ToGonum.
//   - Bring gonum results back into any element.Float with FromGonum.
//
// Precision:
//   - float32 elements are widened to float64 on the way out and rounded on
//     the way back. No other conversion happens.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/element"
)

// GonumView adapts *Dense[E] to gonum's mat.Matrix interface.
// It reads through to the underlying buffer; later writes to the Dense are visible.
type GonumView[E element.Float] struct {
	m *Dense[E]
}

var _ mat.Matrix = GonumView[float64]{}

// AsGonum returns a zero-copy mat.Matrix view over m.
func AsGonum[E element.Float](m *Dense[E]) GonumView[E] { return GonumView[E]{m: m} }

// Dims returns the dimensions of the view.
func (v GonumView[E]) Dims() (r, c int) { return v.m.r, v.m.c }

// At returns element (i, j) widened to float64.
// Panics with mat.ErrIndexOutOfRange for invalid coordinates, like gonum's own types.
func (v GonumView[E]) At(i, j int) float64 {
	if i < 0 || i >= v.m.r || j < 0 || j >= v.m.c {
		panic(mat.ErrIndexOutOfRange)
	}

	return float64(v.m.data[i+j*v.m.r])
}

// T returns the implicit transpose of the view.
func (v GonumView[E]) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// ToGonum copies m into a freshly allocated row-major *mat.Dense.
// Empty matrices yield nil, since gonum rejects zero-sized Dense values.
// Complexity: O(r*c).
func ToGonum[E element.Float](m *Dense[E]) *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return nil
	}
	data := make([]float64, m.r*m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			data[i*m.c+j] = float64(m.data[i+j*m.r])
		}
	}

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum matrix into a new Dense[E].
// A nil source, including the nil *mat.Dense that ToGonum returns for an
// empty matrix, yields a 0×0 matrix.
// Complexity: O(r*c).
func FromGonum[E element.Float](src mat.Matrix) *Dense[E] {
	if d, ok := src.(*mat.Dense); src == nil || (ok && d == nil) {
		return Zeros[E](0, 0)
	}
	r, c := src.Dims()
	res := Zeros[E](r, c)
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			res.data[i+j*r] = E(src.At(i, j))
		}
	}

	return res
}
