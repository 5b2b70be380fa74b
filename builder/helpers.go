// Package builder provides internal helper functions used by the
// constructors to place and bond particles through the session.
//
// Design principles:
//   - Every mutation is a feature move: Check first, Apply only if admitted.
//   - Energetic weights are ignored; only vetoes count during construction.
//   - Retries are bounded by cfg.maxAttempts.
package builder

import (
	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/feature"
)

// randomPosition draws a uniform lattice position inside the box.
func randomPosition(s *feature.Session, cfg builderConfig) core.Vec3 {
	box := s.Box()

	return core.V(cfg.rng.IntN(box.X), cfg.rng.IntN(box.Y), cfg.rng.IntN(box.Z))
}

// tryPlace inserts a particle at pos if every feature admits it.
// It returns the new index and whether the particle was placed.
func tryPlace(s *feature.Session, pos core.Vec3) (int, bool, error) {
	m := feature.NewAddMove(s, pos)
	if !s.Check(m) {
		return 0, false, nil
	}
	if err := s.Apply(m); err != nil {
		return 0, false, err
	}

	return m.Particle(), true, nil
}

// placeFree inserts one particle at a random admitted position.
func placeFree(s *feature.Session, cfg builderConfig, method string) (int, error) {
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		idx, ok, err := tryPlace(s, randomPosition(s, cfg))
		if err != nil {
			return 0, builderErrorf(method, "place particle %d: %w", s.Molecules().Len(), err)
		}
		if ok {
			return idx, nil
		}
	}

	return 0, builderErrorf(method, "no free position for particle %d after %d attempts: %w",
		s.Molecules().Len(), cfg.maxAttempts, ErrConstructFailed)
}

// growFrom inserts one particle at prev plus a random bond vector of
// alphabet and bonds it to prev.
func growFrom(s *feature.Session, cfg builderConfig, method string, prev int, alphabet []bondvec.Entry) (int, error) {
	origin := s.Molecules().At(prev).Pos()
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		v := alphabet[cfg.rng.IntN(len(alphabet))].Vector
		idx, ok, err := tryPlace(s, origin.Add(v))
		if err != nil {
			return 0, builderErrorf(method, "place particle %d: %w", s.Molecules().Len(), err)
		}
		if !ok {
			continue
		}
		if err = connect(s, method, prev, idx); err != nil {
			return 0, err
		}

		return idx, nil
	}

	return 0, builderErrorf(method, "particle %d cannot follow %d after %d attempts: %w",
		s.Molecules().Len(), prev, cfg.maxAttempts, ErrConstructFailed)
}

// connect bonds a and b through the session.
func connect(s *feature.Session, method string, a, b int) error {
	m := feature.NewConnectMove(a, b)
	if !s.Check(m) {
		return builderErrorf(method, "bond %d-%d vetoed: %w", a, b, ErrConstructFailed)
	}
	if err := s.Apply(m); err != nil {
		return builderErrorf(method, "bond %d-%d: %w", a, b, err)
	}

	return nil
}

// alphabetFor returns the session alphabet, failing when a molecule of more
// than one particle is requested from an empty one.
func alphabetFor(s *feature.Session, method string) ([]bondvec.Entry, error) {
	alphabet := s.Bonds().Entries()
	if len(alphabet) == 0 {
		return nil, builderErrorf(method, "%w", ErrEmptyAlphabet)
	}

	return alphabet, nil
}
