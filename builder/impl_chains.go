// SPDX-License-Identifier: MIT
// Package: lvbfm/builder
//
// impl_chains.go - implementation of LinearChains(count, length).
//
// Contract:
//   - count ≥ 1 and length ≥ MinChainLength (else ErrTooFewParticles).
//   - Chains of three or more particles need MaxDegree ≥ 2 (else ErrDegree).
//   - Chain k occupies indices [first+k*length, first+(k+1)*length) and is
//     bonded consecutively.
//
// Complexity:
//   - Time: O(count*length*attempts) placements, each O(features).

package builder

import (
	"github.com/katalvlaran/lvbfm/feature"
)

func buildLinearChains(s *feature.Session, cfg builderConfig, count, length int) error {
	if count < 1 {
		return builderErrorf(MethodLinearChains, "count=%d: %w", count, ErrTooFewParticles)
	}
	if length < MinChainLength {
		return builderErrorf(MethodLinearChains, "length=%d < %d: %w", length, MinChainLength, ErrTooFewParticles)
	}
	if need := chainDegree(length); s.Molecules().MaxDegree() < need {
		return builderErrorf(MethodLinearChains, "length=%d needs degree %d, max is %d: %w",
			length, need, s.Molecules().MaxDegree(), ErrDegree)
	}
	alphabet := s.Bonds().Entries()
	if length > 1 {
		var err error
		if alphabet, err = alphabetFor(s, MethodLinearChains); err != nil {
			return err
		}
	}

	for c := 0; c < count; c++ {
		prev, err := placeFree(s, cfg, MethodLinearChains)
		if err != nil {
			return err
		}
		for k := 1; k < length; k++ {
			if prev, err = growFrom(s, cfg, MethodLinearChains, prev, alphabet); err != nil {
				return err
			}
		}
	}

	return nil
}

// chainDegree is the largest degree inside a linear chain of n particles.
func chainDegree(n int) int {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	default:
		return 2
	}
}
