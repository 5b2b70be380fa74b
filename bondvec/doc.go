// Package bondvec implements the bond-vector alphabet: the closed set of
// legal displacements between linked monomers, each paired with a one-byte
// identifier used by the trajectory codec for chain-delta compression.
//
// The set is a bijection between vectors and identifiers. Components are
// limited to [-4,4] so that validity can be answered by a small lookup table
// addressed by packing the three shifted components:
//
//	slot(v) = (x+4)·81 + (y+4)·9 + (z+4)
//
// Every mutation marks the tables dirty; they are rebuilt lazily on the next
// query or explicitly with UpdateLookupTable.
//
// Errors (wrapping core sentinels):
//
//	core.ErrRange     - component outside [-4,4] or a line-break identifier
//	core.ErrDuplicate - vector or identifier already present
//	core.ErrNotFound  - lookup of an unknown identifier or vector
package bondvec
