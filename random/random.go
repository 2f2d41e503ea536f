// SPDX-License-Identifier: MIT

package random

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

// Uniform returns a rows×cols matrix of independent samples from the open
// interval (0, 1).
//
// Behavior highlights:
//   - Samples are drawn in float64 and rounded into E; a value that rounds to
//     0 or 1 (possible for float32) is drawn again.
//   - Panics on negative dimensions, like matrix.Zeros.
//
// Complexity: O(rows*cols).
func Uniform[E element.Float](rows, cols int, opts ...Option) *matrix.Dense[E] {
	o := gatherOptions(opts...)

	return uniform[E](rows, cols, distuv.Uniform{Min: 0, Max: 1, Src: o.src})
}

func uniform[E element.Float](rows, cols int, dist distuv.Uniform) *matrix.Dense[E] {
	m := matrix.Zeros[E](rows, cols)
	data := m.Data()
	var v E
	for i := range data {
		for {
			v = E(dist.Rand())
			if v > 0 && v < 1 {
				break
			}
		}
		data[i] = v
	}

	return m
}

// Normal returns a rows×cols matrix of independent standard normal samples
// (mean 0, variance 1).
//
// Implementation:
//   - Draw two uniform matrices U and V from the same stream.
//   - Box-Muller: x = sqrt(-2·ln u) · cos(2π·v), element by element, using
//     the element operations of E.
//
// Complexity: O(rows*cols).
func Normal[E element.Float](rows, cols int, opts ...Option) *matrix.Dense[E] {
	o := gatherOptions(opts...)
	dist := distuv.Uniform{Min: 0, Max: 1, Src: o.src}
	u := uniform[E](rows, cols, dist)
	v := uniform[E](rows, cols, dist)

	ud, vd := u.Data(), v.Data()
	var radius E
	for i := range ud {
		radius = element.Sqrt(element.TimesReal(element.Log(ud[i]), -2))
		ud[i] = radius * element.Cos(element.TimesReal(vd[i], 2*math.Pi))
	}

	return u
}
