// SPDX-License-Identifier: MIT

package random

import "math/rand/v2"

const panicNilSource = "random: WithSource: nil source"

// Option configures a generator call.
type Option func(*Options)

// Options holds the resolved configuration. The zero value draws from the
// global math/rand/v2 generator.
type Options struct {
	src rand.Source
}

// WithSeed makes the call reproducible: every call that receives it starts a
// fresh PCG stream seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.src = rand.NewPCG(seed, seed^0x853c49e6748fea9b) }
}

// WithSource draws all samples from src. Panics if src is nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.src = src }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
