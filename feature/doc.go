// Package feature implements the move validation/commit protocol: an ordered
// composition of independent rule modules ("features") that together decide
// whether a proposed Monte-Carlo move is admitted, and that together apply
// the admitted move to the shared simulation state.
//
// One trial is one full cycle:
//
//  1. Propose  - build a Move (random via Init, or explicit constructor).
//  2. Check    - CheckMove on every feature in dependency order; the first
//     false rejects. Features with an energetic bias multiply the move's
//     acceptance probability (starting at 1.0).
//  3. Accept   - Metropolis: accept if probability >= u, u uniform in (0,1].
//  4. Commit   - ApplyMove on every feature in the same order.
//
// Dependency order is declared per feature (Requires) and resolved once by
// Compose with a depth-first topological sort; missing predecessors and
// cycles are configuration errors reported at construction time.
//
// A Session owns the bonded graph, the box, the bond-vector alphabet and the
// occupancy lattice. Features receive the session on every call and never
// keep their own copies of positions or occupancy.
//
// Synchronize rebuilds all derived state (lattice occupancy, alphabet lookup
// tables, per-feature caches) from the bonded graph after bulk edits and
// reports invariant violations as core.ErrConsistency.
//
// Built-in features:
//
//	molecules        graph bookkeeping; always present and first
//	box              non-periodic boundaries
//	bondset          bond vectors must belong to the alphabet
//	excluded_volume  2×2×2 cube occupancy on the lattice
//	contact          nearest-neighbour contact energy (needs excluded_volume)
//	external_force   constant force field
//
// The protocol is single-threaded: trials are strictly sequential and no
// trial observes a partially applied predecessor.
package feature
