package feature_test

import (
	"testing"

	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/feature"
)

// BenchmarkSweep measures one MCS over 16 chains of 32 monomers in a 64^3 box.
func BenchmarkSweep(b *testing.B) {
	mol := core.NewMolecules()
	for c := 0; c < 16; c++ {
		for k := 0; k < 32; k++ {
			i := mol.AddParticle(core.V(2*k, 4*(c%16), 8*(c/16)))
			if k > 0 {
				_ = mol.Connect(i-1, i)
			}
		}
	}
	sess, err := feature.NewSession(core.NewBox(64, 64, 64),
		feature.WithMolecules(mol),
		feature.WithFeatures(feature.NewBondsetFeature(), feature.NewExcludedVolumeFeature()),
		feature.WithSeed(1),
	)
	if err != nil {
		b.Fatal(err)
	}
	if err = sess.Synchronize(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = sess.Sweep(1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompose measures dependency resolution of the built-in features.
func BenchmarkCompose(b *testing.B) {
	contact, _ := feature.NewContactFeature(0.1)
	for i := 0; i < b.N; i++ {
		_, _ = feature.Compose(
			contact,
			feature.NewExcludedVolumeFeature(),
			feature.NewBondsetFeature(),
			feature.NewBoxFeature(feature.DefaultExtent),
			feature.NewMoleculesFeature(),
		)
	}
}
