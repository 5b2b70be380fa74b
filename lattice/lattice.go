// SPDX-License-Identifier: MIT
//
// File: lattice.go
// Role: Lattice[T] storage, fold/index addressing and the entry accessors.
// Policy:
//   - Setup validates dimensions and reallocates only when the cell count changes.
//   - Entry/SetEntry/MoveEntry never fail; folding guarantees a valid index.

package lattice

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvbfm/core"
)

// Cell is the set of value types a lattice may hold. The zero value of the
// type is the empty cell.
type Cell interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Lattice is a dense periodic 3-D array of cells.
type Lattice[T Cell] struct {
	data       []T
	nx, ny, nz int
	xyStride   int // nx·ny

	// power-of-two fast path
	pow2           bool
	mx, my, mz     int  // size-1 masks
	shiftY, shiftZ uint // log2(nx), log2(nx·ny)
}

// New returns an unallocated lattice; call Setup before use.
func New[T Cell]() *Lattice[T] {
	return &Lattice[T]{}
}

// NewForBox allocates a lattice matching the dimensions of box.
func NewForBox[T Cell](box core.Box) (*Lattice[T], error) {
	l := New[T]()
	if err := l.Setup(box.X, box.Y, box.Z); err != nil {
		return nil, err
	}

	return l, nil
}

// Setup (re)configures the lattice for an x·y·z box and zero-fills it.
// The buffer is reallocated only if the cell count changes.
// Returns core.ErrRange when a dimension is not positive.
// Complexity: O(x·y·z).
func (l *Lattice[T]) Setup(x, y, z int) error {
	if x <= 0 || y <= 0 || z <= 0 {
		return fmt.Errorf("Lattice.Setup(%d,%d,%d): %w", x, y, z, core.ErrRange)
	}
	n := x * y * z
	if len(l.data) != n {
		l.data = make([]T, n)
	} else {
		clear(l.data)
	}
	l.nx, l.ny, l.nz = x, y, z
	l.xyStride = x * y

	l.pow2 = isPow2(x) && isPow2(y) && isPow2(z)
	if l.pow2 {
		l.mx, l.my, l.mz = x-1, y-1, z-1
		l.shiftY = uint(bits.TrailingZeros(uint(x)))
		l.shiftZ = uint(bits.TrailingZeros(uint(x * y)))
	}

	return nil
}

// Clear resets every cell to the zero value.
func (l *Lattice[T]) Clear() { clear(l.data) }

// Dims returns the configured dimensions.
func (l *Lattice[T]) Dims() (x, y, z int) { return l.nx, l.ny, l.nz }

// Len returns the number of cells.
func (l *Lattice[T]) Len() int { return len(l.data) }

// PowerOfTwo reports whether mask-and-shift addressing is active.
func (l *Lattice[T]) PowerOfTwo() bool { return l.pow2 }

// Fold maps p into [0,X)×[0,Y)×[0,Z).
func (l *Lattice[T]) Fold(p core.Vec3) core.Vec3 {
	if l.pow2 {
		return core.Vec3{X: p.X & l.mx, Y: p.Y & l.my, Z: p.Z & l.mz}
	}

	return core.Vec3{X: core.FoldInt(p.X, l.nx), Y: core.FoldInt(p.Y, l.ny), Z: core.FoldInt(p.Z, l.nz)}
}

// Index returns the linear buffer offset of the folded position p.
func (l *Lattice[T]) Index(p core.Vec3) int {
	if l.pow2 {
		return (p.X & l.mx) | (p.Y&l.my)<<l.shiftY | (p.Z&l.mz)<<l.shiftZ
	}
	f := l.Fold(p)

	return f.X + f.Y*l.nx + f.Z*l.xyStride
}

// Coordinate converts a linear index back to a folded position.
func (l *Lattice[T]) Coordinate(idx int) core.Vec3 {
	return core.Vec3{X: idx % l.nx, Y: (idx / l.nx) % l.ny, Z: idx / l.xyStride}
}

// Entry returns the value stored at p.
func (l *Lattice[T]) Entry(p core.Vec3) T { return l.data[l.Index(p)] }

// SetEntry stores v at p.
func (l *Lattice[T]) SetEntry(p core.Vec3, v T) { l.data[l.Index(p)] = v }

// MoveEntry copies the value at from to to and resets from to the zero value.
// Moving a cell onto itself leaves it unchanged.
func (l *Lattice[T]) MoveEntry(from, to core.Vec3) {
	src, dst := l.Index(from), l.Index(to)
	if src == dst {
		return
	}
	l.data[dst] = l.data[src]
	var zero T
	l.data[src] = zero
}

// CopyFrom makes l an exact copy of src. The buffer of l is reallocated only
// if the cell counts differ.
func (l *Lattice[T]) CopyFrom(src *Lattice[T]) {
	if len(l.data) != len(src.data) {
		l.data = make([]T, len(src.data))
	}
	copy(l.data, src.data)
	l.nx, l.ny, l.nz, l.xyStride = src.nx, src.ny, src.nz, src.xyStride
	l.pow2, l.mx, l.my, l.mz = src.pow2, src.mx, src.my, src.mz
	l.shiftY, l.shiftZ = src.shiftY, src.shiftZ
}

// Clone returns an independent copy of l.
func (l *Lattice[T]) Clone() *Lattice[T] {
	c := New[T]()
	c.CopyFrom(l)

	return c
}

// CountNonZero returns the number of cells holding a non-zero value.
// Complexity: O(X·Y·Z).
func (l *Lattice[T]) CountNonZero() int {
	var zero T
	n := 0
	for _, v := range l.data {
		if v != zero {
			n++
		}
	}

	return n
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }
