package feature

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

// pair is the shared body of two-body moves.
type pair struct {
	Acceptance
	index, partner int
}

// Particle returns the first endpoint.
func (p *pair) Particle() int { return p.index }

// Partner returns the second endpoint.
func (p *pair) Partner() int { return p.partner }

// ConnectMove proposes a new bond between two particles.
type ConnectMove struct {
	pair
}

// NewConnectMove proposes linking a and b.
func NewConnectMove(a, b int) *ConnectMove {
	m := &ConnectMove{pair{index: a, partner: b}}
	m.ResetProbability()

	return m
}

// Init draws a random particle and a random partner among the particles
// whose position differs from it by a vector of the bond alphabet.
// When no candidate exists the partner equals the particle and the move
// will be rejected by the molecules feature.
func (m *ConnectMove) Init(s *Session) error {
	n := s.mol.Len()
	if n == 0 {
		return ErrNoParticles
	}
	m.index = s.rng.IntN(n)
	m.partner = m.index
	m.ResetProbability()

	// Reservoir sampling over candidate partners.
	origin := s.mol.At(m.index).Pos()
	seen := 0
	for j := 0; j < n; j++ {
		if j == m.index || !s.bonds.IsValid(s.mol.At(j).Pos().Sub(origin)) {
			continue
		}
		seen++
		if s.rng.IntN(seen) == 0 {
			m.partner = j
		}
	}

	return nil
}

// String renders the move for diagnostics.
func (m *ConnectMove) String() string { return fmt.Sprintf("connect(%d,%d)", m.index, m.partner) }

// BreakMove proposes removing an existing bond.
type BreakMove struct {
	pair
}

// NewBreakMove proposes unlinking a and b.
func NewBreakMove(a, b int) *BreakMove {
	m := &BreakMove{pair{index: a, partner: b}}
	m.ResetProbability()

	return m
}

// Init draws a random particle and one of its links. A particle without
// links yields a move that the molecules feature rejects.
func (m *BreakMove) Init(s *Session) error {
	n := s.mol.Len()
	if n == 0 {
		return ErrNoParticles
	}
	m.index = s.rng.IntN(n)
	m.partner = m.index
	m.ResetProbability()
	if mon := s.mol.At(m.index); mon.Degree() > 0 {
		m.partner = mon.Neighbor(s.rng.IntN(mon.Degree()))
	}

	return nil
}

// String renders the move for diagnostics.
func (m *BreakMove) String() string { return fmt.Sprintf("break(%d,%d)", m.index, m.partner) }

// AddMove proposes inserting a new particle at a position. The new particle
// receives index Len() of the container at proposal time.
type AddMove struct {
	Acceptance
	index int
	pos   core.Vec3
}

// NewAddMove proposes inserting a particle at pos.
func NewAddMove(s *Session, pos core.Vec3) *AddMove {
	m := &AddMove{index: s.mol.Len(), pos: pos}
	m.ResetProbability()

	return m
}

// Init draws a uniformly random position inside the box.
func (m *AddMove) Init(s *Session) error {
	m.index = s.mol.Len()
	m.pos = core.V(s.rng.IntN(s.box.X), s.rng.IntN(s.box.Y), s.rng.IntN(s.box.Z))
	m.ResetProbability()

	return nil
}

// Particle returns the index the inserted particle will receive.
func (m *AddMove) Particle() int { return m.index }

// Position returns the insertion position.
func (m *AddMove) Position() core.Vec3 { return m.pos }

// String renders the move for diagnostics.
func (m *AddMove) String() string { return fmt.Sprintf("add(%d %v)", m.index, m.pos) }
