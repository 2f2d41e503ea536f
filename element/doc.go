// Package element defines the scalar contract shared by every matrix and
// decomposition in linalg.
//
// ✨ What lives here:
//   - Float: the type set of admissible element types (float32, float64 and
//     any named type built on them).
//   - Pure scalar helpers: Zero, One, Abs, Sqrt, Sign, TimesReal, Sin, Cos, Log.
//   - Tolerance: the significant-digit floor of the concrete element type,
//     used as the default "numerically zero" threshold by decompositions.
//
// All helpers are value-in/value-out with no side effects. The transcendental
// helpers evaluate in float64 and round back into E, so a float32 caller pays
// one widening and one narrowing per call.
//
// ⚙️ Usage:
//
//	x := element.TimesReal(float32(1.5), 2) // 3
//	s := element.Sign(-0.25)               // -1
//	eps := element.Tolerance[float32]()    // 1e-7
package element
