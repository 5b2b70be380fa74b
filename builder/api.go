// SPDX-License-Identifier: MIT
// Package: lvbfm/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(s, opts, cons...). Resolves cfg, synchronizes the
//     session if needed, runs cons in order.
//   - Determinism: same session seed, options and constructor order give the
//     same configuration.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/feature"
)

// Constructor grows one part of the initial configuration in s using the
// resolved builderConfig. Constructors validate their parameters before
// placing anything.
type Constructor func(s *feature.Session, cfg builderConfig) error

// Build resolves the options, synchronizes s when it is not synchronized
// yet, and applies all constructors in order. Any error is wrapped with
// "Build: %w" and returned immediately; particles already placed stay.
// On success s is synchronized and ready for Sweep.
func Build(s *feature.Session, opts []Option, cons ...Constructor) error {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		cfg.rng = s.Rand()
	}
	if !s.Synchronized() {
		if err := s.Synchronize(); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	before := s.Molecules().Len()
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}
	s.Logger().Debug("builder: configuration built",
		"added", s.Molecules().Len()-before,
		"particles", s.Molecules().Len(),
		"edges", s.Molecules().EdgeCount(),
	)

	return nil
}

// LinearChains grows count chains of length particles each. Consecutive
// particles of a chain are bonded and receive consecutive indices, which is
// the layout the trajectory writer stores as chain lines.
func LinearChains(count, length int) Constructor {
	return func(s *feature.Session, cfg builderConfig) error {
		return buildLinearChains(s, cfg, count, length)
	}
}

// Star grows one star polymer: a centre particle and arms chains of
// armLength particles bonded to it. arms must not exceed the container's
// MaxDegree. The centre comes first, then each arm in order from the
// centre outwards.
func Star(arms, armLength int) Constructor {
	return func(s *feature.Session, cfg builderConfig) error {
		return buildStar(s, cfg, arms, armLength)
	}
}

// Solvent inserts count unbonded particles at random positions and marks
// their index range as compressed, so the trajectory writer stores them in
// solvent blocks.
func Solvent(count int) Constructor {
	return func(s *feature.Session, cfg builderConfig) error {
		return buildSolvent(s, cfg, count)
	}
}
