package bondvec

import (
	"sort"

	"github.com/katalvlaran/lvbfm/core"
)

// ClassicFirstIdentifier is the identifier of the first classic bond vector.
const ClassicFirstIdentifier = 17

// classicGenerators are the base vectors of the classic BFM bond set. All
// permutations and sign combinations of each generator are legal bonds.
var classicGenerators = []core.Vec3{
	{X: 2, Y: 0, Z: 0},
	{X: 2, Y: 1, Z: 0},
	{X: 2, Y: 1, Z: 1},
	{X: 2, Y: 2, Z: 1},
	{X: 3, Y: 0, Z: 0},
	{X: 3, Y: 1, Z: 0},
}

// Classic returns the classic 108-vector BFM bond set with identifiers
// 17..124. Vectors are grouped by generator, and inside each group ordered
// lexicographically, so identifiers are stable across runs.
func Classic() *Set {
	s := New()
	id := ClassicFirstIdentifier
	for _, g := range classicGenerators {
		for _, v := range expand(g) {
			// Generated vectors are in range, non-zero and unique by construction.
			_ = s.AddBond(v, byte(id))
			id++
		}
	}
	s.UpdateLookupTable()

	return s
}

// ClassicVectors returns the classic bond vectors in identifier order.
func ClassicVectors() []core.Vec3 {
	var out []core.Vec3
	for _, g := range classicGenerators {
		out = append(out, expand(g)...)
	}

	return out
}

// expand returns every distinct permutation/sign variant of g, sorted.
func expand(g core.Vec3) []core.Vec3 {
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	base := [3]int{g.X, g.Y, g.Z}
	seen := make(map[core.Vec3]struct{})
	var out []core.Vec3
	for _, p := range perms {
		for signs := 0; signs < 8; signs++ {
			var c [3]int
			for axis := 0; axis < 3; axis++ {
				c[axis] = base[p[axis]]
				if signs&(1<<axis) != 0 {
					c[axis] = -c[axis]
				}
			}
			v := core.Vec3{X: c[0], Y: c[1], Z: c[2]}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})

	return out
}
