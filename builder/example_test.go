package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/builder"
	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/feature"
)

// ExampleBuild grows two chains and a few solvent particles, then runs a
// short simulation.
func ExampleBuild() {
	sess, err := feature.NewSession(core.NewBox(32, 32, 32),
		feature.WithFeatures(feature.NewBondsetFeature(), feature.NewExcludedVolumeFeature()),
		feature.WithSeed(42),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	err = builder.Build(sess, nil,
		builder.LinearChains(2, 16),
		builder.Solvent(8),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = sess.Sweep(10); err != nil {
		fmt.Println(err)
		return
	}

	mol := sess.Molecules()
	fmt.Println("particles:", mol.Len(), "bonds:", mol.EdgeCount())
	fmt.Println("solvent:", mol.CompressedRanges())
	fmt.Println("age:", mol.Age())

	// Output:
	// particles: 40 bonds: 30
	// solvent: [{32 39}]
	// age: 10
}
