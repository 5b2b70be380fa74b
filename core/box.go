package core

import "fmt"

// Box describes the simulation volume: the three edge lengths and, per axis,
// whether the boundary is periodic. Positions on periodic axes may be stored
// unfolded; Fold maps them into [0,size).
type Box struct {
	X, Y, Z                         int
	PeriodicX, PeriodicY, PeriodicZ bool
}

// NewBox returns a fully periodic box of the given size.
func NewBox(x, y, z int) Box {
	return Box{X: x, Y: y, Z: z, PeriodicX: true, PeriodicY: true, PeriodicZ: true}
}

// Validate reports ErrRange when any edge length is not positive.
func (b Box) Validate() error {
	if b.X <= 0 || b.Y <= 0 || b.Z <= 0 {
		return fmt.Errorf("box %dx%dx%d: %w", b.X, b.Y, b.Z, ErrRange)
	}

	return nil
}

// Size returns the edge length along axis 0, 1 or 2.
func (b Box) Size(axis int) int {
	return Vec3{b.X, b.Y, b.Z}.Axis(axis)
}

// Periodic reports whether axis 0, 1 or 2 has periodic boundaries.
func (b Box) Periodic(axis int) bool {
	switch axis {
	case 0:
		return b.PeriodicX
	case 1:
		return b.PeriodicY
	case 2:
		return b.PeriodicZ
	}

	return false
}

// Volume returns X·Y·Z.
func (b Box) Volume() int { return b.X * b.Y * b.Z }

// Fold maps p into the primary cell on every axis, regardless of periodicity.
// The box must be valid.
func (b Box) Fold(p Vec3) Vec3 {
	return Vec3{FoldInt(p.X, b.X), FoldInt(p.Y, b.Y), FoldInt(p.Z, b.Z)}
}

// FoldInt folds v into [0,size) for any integer v, including negatives.
func FoldInt(v, size int) int {
	return ((v % size) + size) % size
}
