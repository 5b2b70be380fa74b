// Package core provides the primitives shared by every layer of lvbfm:
// integer lattice vectors, the simulation box, the error taxonomy and the
// bonded graph of monomers (Molecules).
//
// Molecules is an ordered, insertion-stable sequence of monomers. Each
// monomer carries an integer position and a bounded-degree neighbour list
// stored inline (no per-monomer allocation):
//
//	Monomer{pos, links[MaxDegreeLimit], info[MaxDegreeLimit], degree}
//
// The graph is undirected and simple:
//
//   - Connect(a,b) mirrors the link on both endpoints.
//   - Reconnecting an existing edge is a silent no-op (idempotent).
//   - Self links are rejected with ErrLoopNotAllowed.
//   - Disconnect on a non-edge returns ErrNotFound.
//   - The degree of every monomer never exceeds MaxDegree().
//
// Error taxonomy (match with errors.Is):
//
//	ErrRange        - index or vector component out of bounds
//	ErrCapacity     - bonded degree or lattice capacity exceeded
//	ErrDuplicate    - re-adding something expected to be unique
//	ErrNotFound     - lookup/disconnect on a missing edge or identifier
//	ErrFormat       - trajectory parse failure
//	ErrConsistency  - invariant violation discovered by synchronize
//	ErrIO           - file could not be opened or created
//
// Concurrency: Molecules is NOT safe for concurrent mutation. A simulation
// session owns it exclusively and applies moves strictly sequentially.
//
// Complexity:
//
//	AddParticle        O(1) amortized
//	Connect/Disconnect O(MaxDegree)
//	AreConnected       O(MaxDegree)
//	Edges              O(N·MaxDegree)
package core
