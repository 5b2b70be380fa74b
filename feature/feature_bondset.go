package feature

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

// BondsetFeature admits a move only if every bond it creates or stretches is
// a vector of the session's bond alphabet.
type BondsetFeature struct {
	Base
	strong bool
}

// BondsetOption configures a BondsetFeature.
type BondsetOption func(*BondsetFeature)

// WithStrongCheck additionally requires, at synchronize time, every vector of
// the alphabet to pass IsValidStrongCheck (excluded-volume compatible).
func WithStrongCheck() BondsetOption {
	return func(f *BondsetFeature) { f.strong = true }
}

// NewBondsetFeature returns the bond-vector validity feature.
func NewBondsetFeature(opts ...BondsetOption) *BondsetFeature {
	f := &BondsetFeature{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name implements Feature.
func (*BondsetFeature) Name() string { return NameBondset }

// Requires implements Feature.
func (*BondsetFeature) Requires() []string { return []string{NameMolecules} }

// CheckMove implements Feature.
func (*BondsetFeature) CheckMove(s *Session, m Move) bool {
	switch mv := m.(type) {
	case PositionMove:
		mon := s.mol.At(mv.Particle())
		to := mv.To()
		for k := 0; k < mon.Degree(); k++ {
			if !s.bonds.IsValid(s.mol.At(mon.Neighbor(k)).Pos().Sub(to)) {
				return false
			}
		}
	case *ConnectMove:
		return s.bonds.IsValid(s.mol.At(mv.partner).Pos().Sub(s.mol.At(mv.index).Pos()))
	}

	return true
}

// Synchronize rebuilds the alphabet lookup table and verifies every edge.
func (f *BondsetFeature) Synchronize(s *Session) error {
	s.bonds.UpdateLookupTable()
	if f.strong {
		for _, e := range s.bonds.Entries() {
			if !s.bonds.IsValidStrongCheck(e.Vector) {
				return fmt.Errorf("bond vector %v (id %d) is not excluded-volume compatible: %w",
					e.Vector, e.Identifier, core.ErrConsistency)
			}
		}
	}
	for _, e := range s.mol.Edges() {
		v := s.mol.At(e.B).Pos().Sub(s.mol.At(e.A).Pos())
		if !s.bonds.IsValid(v) {
			return fmt.Errorf("bond %d-%d has vector %v outside the alphabet: %w", e.A, e.B, v, core.ErrConsistency)
		}
	}

	return nil
}
