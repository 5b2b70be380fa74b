package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvbfm/builder"
	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/feature"
)

func BenchmarkLinearChains(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sess, err := feature.NewSession(core.NewBox(64, 64, 64),
			feature.WithFeatures(feature.NewBondsetFeature(), feature.NewExcludedVolumeFeature()),
			feature.WithSeed(uint64(i)),
		)
		if err != nil {
			b.Fatal(err)
		}
		if err = builder.Build(sess, nil, builder.LinearChains(64, 32)); err != nil {
			b.Fatal(err)
		}
	}
}
