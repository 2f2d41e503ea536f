// SPDX-License-Identifier: MIT

// Package decomp: functional configuration of the factorizations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Defaults:
//   - The LU pivot tolerance is derived from the element type
//     (element.Tolerance[E]) unless set explicitly.
package decomp

import (
	"math"

	"github.com/katalvlaran/linalg/element"
)

// Option mutates internal options. Safe to apply repeatedly; the last one wins.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivotTol    float64 // >= 0, meaningful only when pivotTolSet
	pivotTolSet bool    // false ⇒ element.Tolerance[E]()
}

// WithPivotTolerance sets the magnitude at or below which an LU pivot
// counts as zero.
//
// Inputs:
//   - tol: finite, non-negative. The value is rounded into the element type
//     of the matrix being factorized.
//
// Errors:
//   - Panics with a stable message when tol is negative, NaN or infinite.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolerance)
	}

	return func(o *Options) {
		o.pivotTol = tol
		o.pivotTolSet = true
	}
}

// WithExactPivot selects the exact-zero singularity rule: only a column whose
// largest magnitude is exactly zero is singular.
func WithExactPivot() Option { return WithPivotTolerance(0) }

// gatherOptions applies setters in order over zero-value defaults.
// nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// pivotTolerance resolves the effective tolerance for element type E.
func pivotTolerance[E element.Float](o Options) E {
	if o.pivotTolSet {
		return E(o.pivotTol)
	}

	return element.Tolerance[E]()
}
