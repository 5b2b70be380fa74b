// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Monomer, Molecules, IndexRange, MoleculesOption and the NewMolecules constructor.

package core

import "fmt"

// MaxDegreeLimit is the inline capacity of every monomer's link array.
// The configured MaxDegree of a container may be lower, never higher.
const MaxDegreeLimit = 8

// DefaultMaxDegree is used when no WithMaxDegree option is given.
const DefaultMaxDegree = 7

// Monomer is one particle: an absolute lattice position plus a bounded list
// of linked monomer indices. The link array is fixed-size and stored inline.
type Monomer struct {
	pos    Vec3
	links  [MaxDegreeLimit]int32 // neighbour indices, valid up to degree
	info   [MaxDegreeLimit]uint8 // per-link attribute byte
	degree uint8
}

// Pos returns the absolute (unfolded) position.
func (m *Monomer) Pos() Vec3 { return m.pos }

// Degree returns the current number of links.
func (m *Monomer) Degree() int { return int(m.degree) }

// Neighbor returns the k-th linked index without bounds checking against the
// degree; it is the hot-path accessor used inside move checks.
func (m *Monomer) Neighbor(k int) int { return int(m.links[k]) }

// IndexRange is an inclusive range [First, Last] of monomer indices.
type IndexRange struct {
	First, Last int
}

// Len returns the number of indices covered by r.
func (r IndexRange) Len() int { return r.Last - r.First + 1 }

// Contains reports whether i lies in r.
func (r IndexRange) Contains(i int) bool { return i >= r.First && i <= r.Last }

// Molecules is the bonded graph container: an insertion-stable sequence of
// monomers, the simulation age (step count) and the index ranges that are
// written in compressed ("solvent") form.
type Molecules struct {
	monomers   []Monomer
	maxDegree  int
	age        uint64
	compressed []IndexRange // sorted, non-overlapping
}

// MoleculesOption configures a Molecules container before creation.
type MoleculesOption func(m *Molecules)

// WithMaxDegree sets the configured maximum number of links per monomer.
// Panics when d is outside [0, MaxDegreeLimit]; this is a programmer error.
func WithMaxDegree(d int) MoleculesOption {
	if d < 0 || d > MaxDegreeLimit {
		panic(fmt.Sprintf("core: WithMaxDegree(%d) outside [0,%d]", d, MaxDegreeLimit))
	}
	return func(m *Molecules) { m.maxDegree = d }
}

// WithCapacity preallocates room for n monomers.
func WithCapacity(n int) MoleculesOption {
	return func(m *Molecules) {
		if n > 0 {
			m.monomers = make([]Monomer, 0, n)
		}
	}
}

// NewMolecules creates an empty container.
// Complexity: O(1) unless WithCapacity is given.
func NewMolecules(opts ...MoleculesOption) *Molecules {
	m := &Molecules{maxDegree: DefaultMaxDegree}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
