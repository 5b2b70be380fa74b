// File: move.go
// Role: Move interfaces and the acceptance-probability accumulator shared by
// every concrete move type.

package feature

import (
	"github.com/katalvlaran/lvbfm/core"
)

// Move is one candidate state transition. It is created per trial and
// discarded after acceptance or rejection.
type Move interface {
	// Probability returns the accumulated acceptance probability.
	Probability() float64
	// MultiplyProbability folds a feature's weight into the probability.
	MultiplyProbability(f float64)
	// ResetProbability sets the probability back to 1 before a check pass.
	ResetProbability()
}

// PositionMove is a move that displaces one particle.
type PositionMove interface {
	Move
	Particle() int
	From() core.Vec3
	To() core.Vec3
	Displacement() core.Vec3
}

// Acceptance is the embeddable acceptance-probability accumulator.
// The zero value is ready for use after ResetProbability.
type Acceptance struct {
	p float64
}

// Probability returns the accumulated acceptance probability.
func (a *Acceptance) Probability() float64 { return a.p }

// MultiplyProbability multiplies the accumulated probability by f.
func (a *Acceptance) MultiplyProbability(f float64) { a.p *= f }

// ResetProbability sets the accumulated probability to 1.
func (a *Acceptance) ResetProbability() { a.p = 1 }

// displacement is the shared body of the single-particle moves.
type displacement struct {
	Acceptance
	index    int
	from, to core.Vec3
}

// Particle returns the index of the moved particle.
func (d *displacement) Particle() int { return d.index }

// From returns the position before the move.
func (d *displacement) From() core.Vec3 { return d.from }

// To returns the position after the move.
func (d *displacement) To() core.Vec3 { return d.to }

// Displacement returns To - From.
func (d *displacement) Displacement() core.Vec3 { return d.to.Sub(d.from) }

func (d *displacement) set(s *Session, i int, dir core.Vec3) error {
	p, err := s.mol.Position(i)
	if err != nil {
		return err
	}
	d.index, d.from, d.to = i, p, p.Add(dir)
	d.ResetProbability()

	return nil
}
