// SPDX-License-Identifier: MIT
// Package: lvbfm/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: WithSeed or WithRand, otherwise the session's
//     own source is used.

package builder

import (
	"fmt"
	"math/rand/v2"
)

// Option customizes a Build call by mutating the builderConfig before any
// constructor runs.
type Option func(*builderConfig)

// WithSeed uses a PCG source seeded with seed instead of the session source.
func WithSeed(seed uint64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x6a09e667f3bcc909))
	}
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxAttempts bounds the retries of one vetoed placement. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithMaxAttempts(%d)", n))
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}
