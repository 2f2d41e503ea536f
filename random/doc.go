// SPDX-License-Identifier: MIT

// Package random generates dense matrices with independent random entries.
//
//   - Uniform: samples from the standard uniform distribution on the open
//     interval (0, 1), drawn through gonum's distuv.Uniform.
//   - Normal: standard normal samples built from two uniform matrices with
//     the Box-Muller transform.
//
// By default the samples come from math/rand/v2's global generator. Pass
// WithSeed for a reproducible PCG stream or WithSource for any rand.Source:
//
//	a := random.Uniform[float64](4, 4, random.WithSeed(42))
//	b := random.Uniform[float64](4, 4, random.WithSeed(42)) // a.Equal(b)
//
// A caller-provided rand.Source is not safe for concurrent use; give each
// goroutine its own.
package random
