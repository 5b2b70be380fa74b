package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

// ExampleMolecules builds a three-monomer chain and walks its links.
func ExampleMolecules() {
	m := core.NewMolecules(core.WithMaxDegree(2))
	a := m.AddParticle(core.V(0, 0, 0))
	b := m.AddParticle(core.V(2, 0, 0))
	c := m.AddParticle(core.V(2, 2, 1))
	_ = m.Connect(a, b)
	_ = m.Connect(b, c)

	deg, _ := m.NeighborCount(b)
	fmt.Println("degree of b:", deg)
	fmt.Println("edges:", m.Edges())

	err := m.Disconnect(a, c)
	fmt.Println("a-c missing:", errors.Is(err, core.ErrNotFound))

	// Output:
	// degree of b: 2
	// edges: [{0 1} {1 2}]
	// a-c missing: true
}
