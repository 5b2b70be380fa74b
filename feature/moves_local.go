package feature

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

// unitSteps are the six lattice directions of a local move.
var unitSteps = [6]core.Vec3{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
}

// diagonalSteps are the 26 non-zero steps with components in {-1,0,1}.
var diagonalSteps = func() []core.Vec3 {
	var out []core.Vec3
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if v := core.V(x, y, z); !v.IsZero() {
					out = append(out, v)
				}
			}
		}
	}
	return out
}()

// LocalMove displaces one particle by one of the six unit steps.
type LocalMove struct {
	displacement
}

// NewLocalMove proposes moving particle index by dir, which must be a unit
// step; otherwise core.ErrRange is returned.
func NewLocalMove(s *Session, index int, dir core.Vec3) (*LocalMove, error) {
	if dir.MaxAbs() != 1 || abs(dir.X)+abs(dir.Y)+abs(dir.Z) != 1 {
		return nil, fmt.Errorf("feature: local move step %v: %w", dir, core.ErrRange)
	}
	m := &LocalMove{}
	if err := m.set(s, index, dir); err != nil {
		return nil, err
	}

	return m, nil
}

// Init draws a random particle and a random unit step.
func (m *LocalMove) Init(s *Session) error {
	n := s.mol.Len()
	if n == 0 {
		return ErrNoParticles
	}
	i := s.rng.IntN(n)

	return m.set(s, i, unitSteps[s.rng.IntN(len(unitSteps))])
}

// String renders the move for diagnostics.
func (m *LocalMove) String() string {
	return fmt.Sprintf("local(%d %v->%v)", m.index, m.from, m.to)
}

// DiagonalMove displaces one particle by a step from the 26-neighbourhood.
type DiagonalMove struct {
	displacement
}

// NewDiagonalMove proposes moving particle index by dir, whose components
// must lie in {-1,0,1} and not all be zero.
func NewDiagonalMove(s *Session, index int, dir core.Vec3) (*DiagonalMove, error) {
	if dir.MaxAbs() != 1 {
		return nil, fmt.Errorf("feature: diagonal move step %v: %w", dir, core.ErrRange)
	}
	m := &DiagonalMove{}
	if err := m.set(s, index, dir); err != nil {
		return nil, err
	}

	return m, nil
}

// Init draws a random particle and a random diagonal step.
func (m *DiagonalMove) Init(s *Session) error {
	n := s.mol.Len()
	if n == 0 {
		return ErrNoParticles
	}
	i := s.rng.IntN(n)

	return m.set(s, i, diagonalSteps[s.rng.IntN(len(diagonalSteps))])
}

// String renders the move for diagnostics.
func (m *DiagonalMove) String() string {
	return fmt.Sprintf("diagonal(%d %v->%v)", m.index, m.from, m.to)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
