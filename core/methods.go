// Package core: particle lifecycle, positions and age.
//
// Checked accessors return ErrRange wrapped with the offending index.
// At() is the unchecked fast path for inner loops and panics like a slice.

package core

import "fmt"

// MaxDegree returns the configured maximum degree.
func (m *Molecules) MaxDegree() int { return m.maxDegree }

// Len returns the number of monomers.
func (m *Molecules) Len() int { return len(m.monomers) }

// Resize grows or shrinks the container to n monomers. New monomers sit at
// the origin without links. Shrinking drops every link that pointed past the
// new end, and clips the compressed ranges.
// Complexity: O(n·MaxDegree) when shrinking, O(n-Len) amortized when growing.
func (m *Molecules) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("Resize(%d): %w", n, ErrRange)
	}
	if n >= len(m.monomers) {
		if n <= cap(m.monomers) {
			old := len(m.monomers)
			m.monomers = m.monomers[:n]
			clear(m.monomers[old:])
			return nil
		}
		grown := make([]Monomer, n)
		copy(grown, m.monomers)
		m.monomers = grown
		return nil
	}

	m.monomers = m.monomers[:n]
	// Remove dangling links into the truncated tail.
	for i := range m.monomers {
		mon := &m.monomers[i]
		k := 0
		for j := 0; j < int(mon.degree); j++ {
			if int(mon.links[j]) < n {
				mon.links[k] = mon.links[j]
				mon.info[k] = mon.info[j]
				k++
			}
		}
		mon.degree = uint8(k)
	}
	kept := m.compressed[:0]
	for _, r := range m.compressed {
		if r.First >= n {
			continue
		}
		if r.Last >= n {
			r.Last = n - 1
		}
		kept = append(kept, r)
	}
	m.compressed = kept

	return nil
}

// Clear removes every monomer and compressed range and resets the age.
// The configured maximum degree is preserved.
func (m *Molecules) Clear() {
	m.monomers = m.monomers[:0]
	m.compressed = nil
	m.age = 0
}

// AddParticle appends a monomer at pos and returns its index.
// Complexity: O(1) amortized.
func (m *Molecules) AddParticle(pos Vec3) int {
	m.monomers = append(m.monomers, Monomer{pos: pos})

	return len(m.monomers) - 1
}

// At returns the i-th monomer for read access. It panics if i is out of range.
func (m *Molecules) At(i int) *Monomer { return &m.monomers[i] }

// Position returns the absolute position of monomer i.
func (m *Molecules) Position(i int) (Vec3, error) {
	if err := m.checkIndex("Position", i); err != nil {
		return Vec3{}, err
	}

	return m.monomers[i].pos, nil
}

// SetPosition moves monomer i to pos. No lattice or bond checks are made;
// the feature protocol is responsible for keeping derived state in sync.
func (m *Molecules) SetPosition(i int, pos Vec3) error {
	if err := m.checkIndex("SetPosition", i); err != nil {
		return err
	}
	m.monomers[i].pos = pos

	return nil
}

// Age returns the simulation step counter.
func (m *Molecules) Age() uint64 { return m.age }

// SetAge sets the simulation step counter.
func (m *Molecules) SetAge(age uint64) { m.age = age }

// checkIndex wraps ErrRange with the method tag and the index.
func (m *Molecules) checkIndex(method string, i int) error {
	if i < 0 || i >= len(m.monomers) {
		return fmt.Errorf("Molecules.%s(%d) of %d: %w", method, i, len(m.monomers), ErrRange)
	}

	return nil
}
