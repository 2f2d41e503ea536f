// SPDX-License-Identifier: MIT

package decomp

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/element"
)

// Column kernels shared by the QR variants. Slices of exactly []float64 are
// handed to gonum/floats; every other element type takes the generic loop.
// Callers guarantee equal lengths.

// dot returns Σ x[i]*y[i].
func dot[E element.Float](x, y []E) E {
	if xf, ok := any(x).([]float64); ok {
		return E(floats.Dot(xf, any(y).([]float64)))
	}
	var s E
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}

// norm2 returns the Euclidean norm of x.
func norm2[E element.Float](x []E) E {
	if xf, ok := any(x).([]float64); ok {
		return E(floats.Norm(xf, 2))
	}

	return element.Sqrt(dot(x, x))
}

// axpy computes dst += alpha*s.
func axpy[E element.Float](dst []E, alpha E, s []E) {
	if df, ok := any(dst).([]float64); ok {
		floats.AddScaled(df, float64(alpha), any(s).([]float64))
		return
	}
	for i := range dst {
		dst[i] += alpha * s[i]
	}
}

// divTo computes dst = s / d element-wise. dst and s may alias.
func divTo[E element.Float](dst, s []E, d E) {
	for i := range dst {
		dst[i] = s[i] / d
	}
}
