// File: methods_clone.go
// Role: Deep copies and value snapshots of a Molecules container.

package core

// Clone returns a deep copy: monomers, links, age, compressed ranges and the
// configured maximum degree.
// Complexity: O(N).
func (m *Molecules) Clone() *Molecules {
	c := &Molecules{
		monomers:  make([]Monomer, len(m.monomers)),
		maxDegree: m.maxDegree,
		age:       m.age,
	}
	copy(c.monomers, m.monomers)
	if len(m.compressed) > 0 {
		c.compressed = m.CompressedRanges()
	}

	return c
}

// Snapshot is a plain-value view of the observable state, convenient for
// comparisons in tests and for persistence collaborators.
type Snapshot struct {
	Age       uint64
	Positions []Vec3
	Edges     []Edge
}

// Snapshot captures positions, edges and age.
// Complexity: O(N·MaxDegree + E·log E).
func (m *Molecules) Snapshot() Snapshot {
	s := Snapshot{Age: m.age, Positions: make([]Vec3, len(m.monomers)), Edges: m.Edges()}
	for i := range m.monomers {
		s.Positions[i] = m.monomers[i].pos
	}

	return s
}
