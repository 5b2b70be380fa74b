// SPDX-License-Identifier: MIT
// Package: lvbfm/builder
//
// impl_star.go - implementation of Star(arms, armLength).
//
// Contract:
//   - arms ≥ MinStarArms and armLength ≥ MinArmLength (else ErrTooFewParticles).
//   - arms ≤ MaxDegree, and arms of two or more particles need MaxDegree ≥ 2
//     (else ErrDegree).
//   - The centre is placed first; arm a then occupies the next armLength
//     indices, bonded centre → first → ... → last.
//
// Complexity:
//   - Time: O(arms*armLength*attempts) placements.

package builder

import (
	"github.com/katalvlaran/lvbfm/feature"
)

func buildStar(s *feature.Session, cfg builderConfig, arms, armLength int) error {
	if arms < MinStarArms {
		return builderErrorf(MethodStar, "arms=%d < %d: %w", arms, MinStarArms, ErrTooFewParticles)
	}
	if armLength < MinArmLength {
		return builderErrorf(MethodStar, "armLength=%d < %d: %w", armLength, MinArmLength, ErrTooFewParticles)
	}
	maxDegree := s.Molecules().MaxDegree()
	if arms > maxDegree {
		return builderErrorf(MethodStar, "arms=%d > max degree %d: %w", arms, maxDegree, ErrDegree)
	}
	if need := chainDegree(armLength + 1); maxDegree < need {
		return builderErrorf(MethodStar, "armLength=%d needs degree %d, max is %d: %w", armLength, need, maxDegree, ErrDegree)
	}
	alphabet, err := alphabetFor(s, MethodStar)
	if err != nil {
		return err
	}

	centre, err := placeFree(s, cfg, MethodStar)
	if err != nil {
		return err
	}
	for a := 0; a < arms; a++ {
		prev := centre
		for k := 0; k < armLength; k++ {
			if prev, err = growFrom(s, cfg, MethodStar, prev, alphabet); err != nil {
				return err
			}
		}
	}

	return nil
}
