// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Set storage, AddBond, lookups and the lazily rebuilt validity tables.

package bondvec

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

// MaxComponent bounds |x|,|y|,|z| of every bond vector.
const MaxComponent = 4

const (
	span      = 2*MaxComponent + 1 // values per axis
	tableSize = span * span * span
	noID      = -1
)

// Entry pairs a bond vector with its identifier.
type Entry struct {
	Vector     core.Vec3
	Identifier byte
}

// Set is the bond-vector alphabet. The zero value is an empty, usable set.
type Set struct {
	entries []Entry // insertion order
	byID    [256]int16

	// derived, rebuilt by UpdateLookupTable
	dirty  bool
	valid  [tableSize]bool
	strong [tableSize]bool
	ids    [tableSize]int16
	init   bool
}

// New returns an empty set.
func New() *Set {
	s := &Set{}
	s.reset()

	return s
}

func (s *Set) reset() {
	s.entries = s.entries[:0]
	for i := range s.byID {
		s.byID[i] = noID
	}
	s.init = true
	s.dirty = true
}

func (s *Set) lazyInit() {
	if !s.init {
		s.reset()
	}
}

// Len returns the number of bond vectors.
func (s *Set) Len() int { return len(s.entries) }

// Clear removes every bond vector.
func (s *Set) Clear() { s.reset() }

// Entries returns a copy of the entries in insertion order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := New()
	for _, e := range s.entries {
		_ = c.AddBond(e.Vector, e.Identifier)
	}

	return c
}

// AddBond adds vector v with identifier id.
//
// Errors:
//   - core.ErrRange if any |component| > MaxComponent, if v is the zero
//     vector, or if id is '\n' or '\r'.
//   - core.ErrDuplicate if v or id is already in the set.
func (s *Set) AddBond(v core.Vec3, id byte) error {
	s.lazyInit()
	if !inRange(v) || v.IsZero() {
		return fmt.Errorf("bondvec: AddBond%v: component outside [-%d,%d]: %w", v, MaxComponent, MaxComponent, core.ErrRange)
	}
	if id == '\n' || id == '\r' {
		return fmt.Errorf("bondvec: AddBond%v: identifier %d is a line break: %w", v, id, core.ErrRange)
	}
	if k := s.byID[id]; k != noID {
		return fmt.Errorf("bondvec: AddBond%v: identifier %d already names %v: %w", v, id, s.entries[k].Vector, core.ErrDuplicate)
	}
	for _, e := range s.entries {
		if e.Vector == v {
			return fmt.Errorf("bondvec: AddBond%v: vector already has identifier %d: %w", v, e.Identifier, core.ErrDuplicate)
		}
	}
	s.byID[id] = int16(len(s.entries))
	s.entries = append(s.entries, Entry{Vector: v, Identifier: id})
	s.dirty = true

	return nil
}

// BondVector returns the vector registered under id.
func (s *Set) BondVector(id byte) (core.Vec3, error) {
	s.lazyInit()
	k := s.byID[id]
	if k == noID {
		return core.Vec3{}, fmt.Errorf("bondvec: identifier %d: %w", id, core.ErrNotFound)
	}

	return s.entries[k].Vector, nil
}

// BondIdentifier returns the identifier of v. O(1).
func (s *Set) BondIdentifier(v core.Vec3) (byte, error) {
	if s.IsValid(v) {
		return s.entries[s.ids[slot(v)]].Identifier, nil
	}

	return 0, fmt.Errorf("bondvec: vector %v: %w", v, core.ErrNotFound)
}

// IsValid reports whether v is in the set. O(1).
func (s *Set) IsValid(v core.Vec3) bool {
	if !inRange(v) {
		return false
	}
	s.ensureTable()

	return s.valid[slot(v)]
}

// IsValidStrongCheck reports whether v is in the set AND compatible with
// 2×2×2 cube excluded volume: at least one component has magnitude ≥ 2 (the
// two cubes cannot overlap) and v is not a permutation of (±2,±2,0), which
// lets bonds cross each other. O(1).
func (s *Set) IsValidStrongCheck(v core.Vec3) bool {
	if !inRange(v) {
		return false
	}
	s.ensureTable()

	return s.strong[slot(v)]
}

// UpdateLookupTable rebuilds the validity and identifier tables.
// Complexity: O(tableSize + Len).
func (s *Set) UpdateLookupTable() {
	s.lazyInit()
	s.valid = [tableSize]bool{}
	s.strong = [tableSize]bool{}
	for i := range s.ids {
		s.ids[i] = noID
	}
	for k, e := range s.entries {
		i := slot(e.Vector)
		s.valid[i] = true
		s.strong[i] = excludedVolumeCompatible(e.Vector)
		s.ids[i] = int16(k)
	}
	s.dirty = false
}

// Dirty reports whether the lookup tables are stale.
func (s *Set) Dirty() bool { return s.dirty || !s.init }

func (s *Set) ensureTable() {
	if s.Dirty() {
		s.UpdateLookupTable()
	}
}

func inRange(v core.Vec3) bool {
	return v.X >= -MaxComponent && v.X <= MaxComponent &&
		v.Y >= -MaxComponent && v.Y <= MaxComponent &&
		v.Z >= -MaxComponent && v.Z <= MaxComponent
}

func slot(v core.Vec3) int {
	return (v.X+MaxComponent)*span*span + (v.Y+MaxComponent)*span + (v.Z + MaxComponent)
}

func excludedVolumeCompatible(v core.Vec3) bool {
	if v.MaxAbs() < 2 {
		return false
	}
	twos, zeros := 0, 0
	for axis := 0; axis < 3; axis++ {
		switch c := v.Axis(axis); {
		case c == 2 || c == -2:
			twos++
		case c == 0:
			zeros++
		}
	}

	return !(twos == 2 && zeros == 1)
}
