// SPDX-License-Identifier: MIT
// Package: lvbfm/builder
//
// impl_solvent.go - implementation of Solvent(count).
//
// Contract:
//   - count ≥ 1 (else ErrTooFewParticles).
//   - The particles are unbonded, occupy the next count indices, and that
//     range is marked compressed on the container.

package builder

import (
	"github.com/katalvlaran/lvbfm/feature"
)

func buildSolvent(s *feature.Session, cfg builderConfig, count int) error {
	if count < 1 {
		return builderErrorf(MethodSolvent, "count=%d: %w", count, ErrTooFewParticles)
	}

	first := s.Molecules().Len()
	for i := 0; i < count; i++ {
		if _, err := placeFree(s, cfg, MethodSolvent); err != nil {
			return err
		}
	}
	if err := s.Molecules().MarkCompressed(first, first+count-1); err != nil {
		return builderErrorf(MethodSolvent, "%w", err)
	}

	return nil
}
