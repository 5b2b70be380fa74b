package feature

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

// DefaultExtent is the edge length of a monomer cube in the bond-fluctuation model.
const DefaultExtent = 2

// BoxFeature keeps every particle, including its extent, inside the box on
// non-periodic axes: 0 <= p <= size-extent.
type BoxFeature struct {
	Base
	extent int
}

// NewBoxFeature returns the boundary feature for particles of the given
// extent. Panics if extent < 1.
func NewBoxFeature(extent int) *BoxFeature {
	if extent < 1 {
		panic(fmt.Sprintf("feature: NewBoxFeature(%d)", extent))
	}
	return &BoxFeature{extent: extent}
}

// Name implements Feature.
func (*BoxFeature) Name() string { return NameBox }

// Requires implements Feature.
func (*BoxFeature) Requires() []string { return []string{NameMolecules} }

// Extent returns the particle extent used for the boundary test.
func (f *BoxFeature) Extent() int { return f.extent }

// CheckMove implements Feature.
func (f *BoxFeature) CheckMove(s *Session, m Move) bool {
	switch mv := m.(type) {
	case PositionMove:
		return f.inside(s.box, mv.To())
	case *AddMove:
		return f.inside(s.box, mv.pos)
	}

	return true
}

// Synchronize reports the first particle outside a non-periodic boundary.
func (f *BoxFeature) Synchronize(s *Session) error {
	for i := 0; i < s.mol.Len(); i++ {
		if p := s.mol.At(i).Pos(); !f.inside(s.box, p) {
			return fmt.Errorf("particle %d at %v outside box %dx%dx%d: %w",
				i, p, s.box.X, s.box.Y, s.box.Z, core.ErrConsistency)
		}
	}

	return nil
}

func (f *BoxFeature) inside(box core.Box, p core.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if box.Periodic(axis) {
			continue
		}
		if c := p.Axis(axis); c < 0 || c > box.Size(axis)-f.extent {
			return false
		}
	}

	return true
}
