package feature

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

// Built-in feature names.
const (
	NameMolecules      = "molecules"
	NameBox            = "box"
	NameBondset        = "bondset"
	NameExcludedVolume = "excluded_volume"
	NameContact        = "contact"
	NameExternalForce  = "external_force"
)

// MoleculesFeature owns the bonded-graph share of every move: it rejects
// moves that refer to invalid particles, stale positions, impossible links,
// and it performs the graph mutation on apply.
type MoleculesFeature struct {
	Base
}

// NewMoleculesFeature returns the graph bookkeeping feature.
func NewMoleculesFeature() *MoleculesFeature { return &MoleculesFeature{} }

// Name implements Feature.
func (*MoleculesFeature) Name() string { return NameMolecules }

// CheckMove implements Feature.
func (*MoleculesFeature) CheckMove(s *Session, m Move) bool {
	mol := s.mol
	switch mv := m.(type) {
	case PositionMove:
		i := mv.Particle()
		// A proposal built against an older state is stale.
		return i >= 0 && i < mol.Len() && mol.At(i).Pos() == mv.From()
	case *ConnectMove:
		a, b := mv.index, mv.partner
		if a == b || a < 0 || b < 0 || a >= mol.Len() || b >= mol.Len() {
			return false
		}
		if mol.AreConnected(a, b) {
			return false
		}
		return mol.At(a).Degree() < mol.MaxDegree() && mol.At(b).Degree() < mol.MaxDegree()
	case *BreakMove:
		return mol.AreConnected(mv.index, mv.partner)
	case *AddMove:
		return mv.index == mol.Len()
	}

	return true
}

// ApplyMove implements Feature.
func (*MoleculesFeature) ApplyMove(s *Session, m Move) error {
	switch mv := m.(type) {
	case PositionMove:
		return s.mol.SetPosition(mv.Particle(), mv.To())
	case *ConnectMove:
		return s.mol.Connect(mv.index, mv.partner)
	case *BreakMove:
		return s.mol.Disconnect(mv.index, mv.partner)
	case *AddMove:
		s.mol.AddParticle(mv.pos)
	}

	return nil
}

// Synchronize verifies the graph is undirected and simple: every link points
// at a live particle, is mirrored, is not a self link and is not repeated.
func (*MoleculesFeature) Synchronize(s *Session) error {
	mol := s.mol
	n := mol.Len()
	for i := 0; i < n; i++ {
		mon := mol.At(i)
		if mon.Degree() > mol.MaxDegree() {
			return fmt.Errorf("particle %d has %d links > %d: %w", i, mon.Degree(), mol.MaxDegree(), core.ErrCapacity)
		}
		for k := 0; k < mon.Degree(); k++ {
			j := mon.Neighbor(k)
			switch {
			case j < 0 || j >= n:
				return fmt.Errorf("particle %d links to %d of %d: %w", i, j, n, core.ErrConsistency)
			case j == i:
				return fmt.Errorf("particle %d links to itself: %w", i, core.ErrConsistency)
			case !mol.AreConnected(j, i):
				return fmt.Errorf("link %d->%d is not mirrored: %w", i, j, core.ErrConsistency)
			}
			for q := 0; q < k; q++ {
				if mon.Neighbor(q) == j {
					return fmt.Errorf("particle %d links to %d twice: %w", i, j, core.ErrConsistency)
				}
			}
		}
	}

	return nil
}
