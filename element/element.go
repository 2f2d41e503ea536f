// SPDX-License-Identifier: MIT

package element

import (
	"math"
	"reflect"
)

// Float is the element type set accepted by matrices and decompositions.
// Named types whose underlying type is float32 or float64 are admitted too.
type Float interface {
	~float32 | ~float64
}

// Per-type significant-digit floors.
const (
	// Float64Tolerance is the magnitude under which a float64 pivot is treated as zero.
	Float64Tolerance = 1e-16

	// Float32Tolerance is the magnitude under which a float32 pivot is treated as zero.
	Float32Tolerance = 1e-7
)

// Zero returns the additive identity of E.
func Zero[E Float]() E { return 0 }

// One returns the multiplicative identity of E.
func One[E Float]() E { return 1 }

// Abs returns |x|. Negative zero maps to positive zero.
func Abs[E Float](x E) E {
	if x < 0 {
		return -x
	}

	return x + 0 // folds -0 into +0
}

// Sqrt returns the square root of x; negative inputs yield NaN.
func Sqrt[E Float](x E) E { return E(math.Sqrt(float64(x))) }

// Sign returns +1 or -1 according to the sign bit of x.
// Zero returns +1 and negative zero returns -1; callers must not rely on either.
func Sign[E Float](x E) E { return E(math.Copysign(1, float64(x))) }

// TimesReal scales x by an arbitrary float64 constant f.
// The product is formed in float64 and rounded once into E.
func TimesReal[E Float](x E, f float64) E { return E(float64(x) * f) }

// Sin returns the sine of x (radians).
func Sin[E Float](x E) E { return E(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[E Float](x E) E { return E(math.Cos(float64(x))) }

// Log returns the natural logarithm of x.
func Log[E Float](x E) E { return E(math.Log(float64(x))) }

// IsFloat32 reports whether E is backed by a 32-bit float.
// Complexity: O(1); uses reflection once per call, keep it out of inner loops.
func IsFloat32[E Float]() bool {
	return reflect.TypeFor[E]().Kind() == reflect.Float32
}

// Tolerance returns the significant-digit floor of E:
// Float32Tolerance for 32-bit element types, Float64Tolerance otherwise.
//
// Decompositions use it as the default threshold below which a pivot is
// considered zero. Callers needing the exact-zero rule pass an explicit
// tolerance of 0 instead (see decomp.WithExactPivot).
func Tolerance[E Float]() E {
	if IsFloat32[E]() {
		return Float32Tolerance
	}

	return Float64Tolerance
}
