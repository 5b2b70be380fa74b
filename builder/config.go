// SPDX-License-Identifier: MIT
// Package: lvbfm/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil  (resolved to the session source by Build)
//   • maxAttempts = DefaultMaxAttempts

package builder

import (
	"math/rand/v2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Random source for positions and bond vectors; never nil once Build runs.
	rng *rand.Rand
	// Retries per vetoed placement, >= 1.
	maxAttempts int
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
