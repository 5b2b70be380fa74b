// SPDX-License-Identifier: MIT
//
// File: feature_excluded_volume.go
// Role: Lattice occupancy for 2x2x2 monomer cubes.
// Policy:
//   - Every particle owns the eight cells p + {0,1}^3, stored as index+1.
//   - A move is admitted only if the cells it newly covers are empty.
//   - Apply relocates exactly the cells that leave the old cube.

package feature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbfm/core"
)

// cubeOffsets are the eight cells of a monomer relative to its position.
var cubeOffsets = [8]core.Vec3{
	{}, {X: 1}, {Y: 1}, {X: 1, Y: 1},
	{Z: 1}, {X: 1, Z: 1}, {Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
}

// inCube reports whether v lies in {0,1}^3.
func inCube(v core.Vec3) bool {
	return v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1 && v.Z >= 0 && v.Z <= 1
}

// ExcludedVolumeFeature forbids two monomer cubes from sharing a lattice cell.
type ExcludedVolumeFeature struct {
	Base
	leaving  [8]core.Vec3
	entering [8]core.Vec3
}

// NewExcludedVolumeFeature returns the occupancy feature.
func NewExcludedVolumeFeature() *ExcludedVolumeFeature { return &ExcludedVolumeFeature{} }

// Name implements Feature.
func (*ExcludedVolumeFeature) Name() string { return NameExcludedVolume }

// Requires implements Feature.
func (*ExcludedVolumeFeature) Requires() []string { return []string{NameMolecules} }

// CheckMove implements Feature.
func (*ExcludedVolumeFeature) CheckMove(s *Session, m Move) bool {
	switch mv := m.(type) {
	case PositionMove:
		to, d := mv.To(), mv.Displacement()
		for _, c := range cubeOffsets {
			if inCube(d.Add(c)) {
				continue // still covered by the old cube
			}
			if s.lat.Entry(to.Add(c)) != 0 {
				return false
			}
		}
	case *AddMove:
		if uint64(s.mol.Len()) >= math.MaxUint32 {
			return false
		}
		for _, c := range cubeOffsets {
			if s.lat.Entry(mv.pos.Add(c)) != 0 {
				return false
			}
		}
	}

	return true
}

// ApplyMove implements Feature.
func (f *ExcludedVolumeFeature) ApplyMove(s *Session, m Move) error {
	switch mv := m.(type) {
	case PositionMove:
		from, to, d := mv.From(), mv.To(), mv.Displacement()
		nl, ne := 0, 0
		for _, c := range cubeOffsets {
			if !inCube(c.Sub(d)) {
				f.leaving[nl] = from.Add(c)
				nl++
			}
			if !inCube(d.Add(c)) {
				f.entering[ne] = to.Add(c)
				ne++
			}
		}
		for k := 0; k < nl; k++ {
			s.lat.MoveEntry(f.leaving[k], f.entering[k])
		}
	case *AddMove:
		for _, c := range cubeOffsets {
			s.lat.SetEntry(mv.pos.Add(c), Occupant(mv.index+1))
		}
	}

	return nil
}

// Synchronize sizes the lattice from the box and places every cube.
//
// Errors:
//   - core.ErrRange if an axis is shorter than the cube.
//   - core.ErrCapacity if index+1 does not fit the cell type.
//   - core.ErrConsistency naming both particles on the first overlap.
func (*ExcludedVolumeFeature) Synchronize(s *Session) error {
	box := s.box
	if box.X < 2 || box.Y < 2 || box.Z < 2 {
		return fmt.Errorf("box %dx%dx%d cannot hold a 2x2x2 cube: %w", box.X, box.Y, box.Z, core.ErrRange)
	}
	if uint64(s.mol.Len()) >= math.MaxUint32 {
		return fmt.Errorf("%d particles exceed the lattice cell type: %w", s.mol.Len(), core.ErrCapacity)
	}
	if err := s.lat.Setup(box.X, box.Y, box.Z); err != nil {
		return err
	}
	for i := 0; i < s.mol.Len(); i++ {
		p := s.mol.At(i).Pos()
		for _, c := range cubeOffsets {
			cell := p.Add(c)
			if other := s.lat.Entry(cell); other != 0 {
				return fmt.Errorf("particles %d and %d overlap at %v: %w",
					int(other)-1, i, s.lat.Fold(cell), core.ErrConsistency)
			}
			s.lat.SetEntry(cell, Occupant(i+1))
		}
	}

	return nil
}
