// Package lattice provides a dense periodic 3-D occupancy lattice.
//
// A Lattice[T] owns one contiguous buffer of X·Y·Z cells. Every coordinate is
// folded per axis before addressing, so negative or unwrapped positions
// address the correct periodic cell:
//
//	fold(v, n)  = ((v % n) + n) % n
//	index(p)    = x + y·X + z·X·Y
//
// When every dimension is a power of two, Setup switches to mask-and-shift
// addressing. Both modes are functionally identical; the fast path only
// removes divisions from the innermost move-check loop.
//
// Addressing never fails: callers must call Setup before the first access.
// Lattice is not safe for concurrent mutation.
package lattice
