package core

import "fmt"

// Vec3 is an integer vector on the simple cubic lattice. It is used both for
// absolute (unfolded) monomer positions and for displacements.
type Vec3 struct {
	X, Y, Z int
}

// V is a short constructor for Vec3.
func V(x, y, z int) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Scale returns k·v.
func (v Vec3) Scale(k int) Vec3 { return Vec3{k * v.X, k * v.Y, k * v.Z} }

// Dot returns the integer dot product v·o.
func (v Vec3) Dot(o Vec3) int { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Axis returns component 0 (X), 1 (Y) or 2 (Z). Any other axis panics.
func (v Vec3) Axis(i int) int {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("core: axis %d", i))
}

// MaxAbs returns the largest absolute component.
func (v Vec3) MaxAbs() int {
	m := abs(v.X)
	if a := abs(v.Y); a > m {
		m = a
	}
	if a := abs(v.Z); a > m {
		m = a
	}

	return m
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool { return v == Vec3{} }

// String renders v as "(x,y,z)".
func (v Vec3) String() string { return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z) }

func abs(a int) int {
	if a < 0 {
		return -a
	}

	return a
}
