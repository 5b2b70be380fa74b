// File: methods_edges.go
// Role: Link lifecycle (Connect/Disconnect) and neighbourhood queries.
// Policy:
//   - Check order in Connect: range -> self link -> existing (no-op) -> capacity.
//   - Links are mirrored on both endpoints; Disconnect keeps the order of the
//     remaining links so iteration stays deterministic.

package core

import (
	"fmt"
	"sort"
)

// Edge is an undirected link between monomers A < B.
type Edge struct {
	A, B int
}

// Connect links a and b with info byte 0. See ConnectWithInfo.
func (m *Molecules) Connect(a, b int) error {
	return m.ConnectWithInfo(a, b, 0)
}

// ConnectWithInfo links a and b and stores info on both link slots.
//
// Errors:
//   - ErrRange if a or b is not a valid index.
//   - ErrLoopNotAllowed if a == b.
//   - ErrCapacity if either endpoint is already at MaxDegree.
//
// Reconnecting an existing edge is a no-op and keeps the original info.
// Complexity: O(MaxDegree).
func (m *Molecules) ConnectWithInfo(a, b int, info uint8) error {
	if err := m.checkIndex("Connect", a); err != nil {
		return err
	}
	if err := m.checkIndex("Connect", b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("Molecules.Connect(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}
	if m.AreConnected(a, b) {
		return nil
	}
	ma, mb := &m.monomers[a], &m.monomers[b]
	if int(ma.degree) >= m.maxDegree {
		return fmt.Errorf("Molecules.Connect(%d,%d): monomer %d has %d links: %w", a, b, a, ma.degree, ErrCapacity)
	}
	if int(mb.degree) >= m.maxDegree {
		return fmt.Errorf("Molecules.Connect(%d,%d): monomer %d has %d links: %w", a, b, b, mb.degree, ErrCapacity)
	}
	ma.links[ma.degree], ma.info[ma.degree] = int32(b), info
	ma.degree++
	mb.links[mb.degree], mb.info[mb.degree] = int32(a), info
	mb.degree++

	return nil
}

// Disconnect removes the edge a-b.
// Returns ErrRange for invalid indices and ErrNotFound if the edge does not exist.
// Complexity: O(MaxDegree).
func (m *Molecules) Disconnect(a, b int) error {
	if err := m.checkIndex("Disconnect", a); err != nil {
		return err
	}
	if err := m.checkIndex("Disconnect", b); err != nil {
		return err
	}
	if !m.AreConnected(a, b) {
		return fmt.Errorf("Molecules.Disconnect(%d,%d): %w", a, b, ErrNotFound)
	}
	unlink(&m.monomers[a], b)
	unlink(&m.monomers[b], a)

	return nil
}

// unlink drops target from mon's link list, shifting later links down.
func unlink(mon *Monomer, target int) {
	for k := 0; k < int(mon.degree); k++ {
		if int(mon.links[k]) != target {
			continue
		}
		copy(mon.links[k:mon.degree], mon.links[k+1:mon.degree])
		copy(mon.info[k:mon.degree], mon.info[k+1:mon.degree])
		mon.degree--
		mon.links[mon.degree], mon.info[mon.degree] = 0, 0
		return
	}
}

// NeighborCount returns the degree of monomer i.
func (m *Molecules) NeighborCount(i int) (int, error) {
	if err := m.checkIndex("NeighborCount", i); err != nil {
		return 0, err
	}

	return int(m.monomers[i].degree), nil
}

// NeighborAt returns the index of the k-th link of monomer i.
// Returns ErrRange if i is invalid or k is not below the current degree.
func (m *Molecules) NeighborAt(i, k int) (int, error) {
	if err := m.checkIndex("NeighborAt", i); err != nil {
		return 0, err
	}
	mon := &m.monomers[i]
	if k < 0 || k >= int(mon.degree) {
		return 0, fmt.Errorf("Molecules.NeighborAt(%d,%d) degree %d: %w", i, k, mon.degree, ErrRange)
	}

	return int(mon.links[k]), nil
}

// AreConnected reports whether a and b share an edge. Invalid indices are
// simply not connected.
func (m *Molecules) AreConnected(a, b int) bool {
	if a < 0 || a >= len(m.monomers) || b < 0 || b >= len(m.monomers) {
		return false
	}
	mon := &m.monomers[a]
	for k := 0; k < int(mon.degree); k++ {
		if int(mon.links[k]) == b {
			return true
		}
	}

	return false
}

// BondInfo returns the info byte stored on edge a-b.
func (m *Molecules) BondInfo(a, b int) (uint8, error) {
	if err := m.checkIndex("BondInfo", a); err != nil {
		return 0, err
	}
	mon := &m.monomers[a]
	for k := 0; k < int(mon.degree); k++ {
		if int(mon.links[k]) == b {
			return mon.info[k], nil
		}
	}

	return 0, fmt.Errorf("Molecules.BondInfo(%d,%d): %w", a, b, ErrNotFound)
}

// Edges returns every edge once as (A<B), sorted by A then B.
// Complexity: O(N·MaxDegree + E·log E).
func (m *Molecules) Edges() []Edge {
	var edges []Edge
	for i := range m.monomers {
		mon := &m.monomers[i]
		for k := 0; k < int(mon.degree); k++ {
			if j := int(mon.links[k]); j > i {
				edges = append(edges, Edge{A: i, B: j})
			}
		}
	}
	sort.Slice(edges, func(x, y int) bool {
		if edges[x].A != edges[y].A {
			return edges[x].A < edges[y].A
		}
		return edges[x].B < edges[y].B
	})

	return edges
}

// EdgeCount returns the number of undirected edges.
func (m *Molecules) EdgeCount() int {
	total := 0
	for i := range m.monomers {
		total += int(m.monomers[i].degree)
	}

	return total / 2
}
