// Package core_test provides benchmarks for core.Molecules operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvbfm/core"
)

// BenchmarkConnectDisconnect measures a link toggle between two monomers.
func BenchmarkConnectDisconnect(b *testing.B) {
	m := core.NewMolecules()
	m.AddParticle(core.V(0, 0, 0))
	m.AddParticle(core.V(2, 0, 0))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Connect(0, 1)
		_ = m.Disconnect(0, 1)
	}
}

// BenchmarkNeighborWalk measures the unchecked hot-path neighbour iteration.
func BenchmarkNeighborWalk(b *testing.B) {
	const n = 1024
	m := core.NewMolecules(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		m.AddParticle(core.V(2*i, 0, 0))
	}
	for i := 1; i < n; i++ {
		_ = m.Connect(i-1, i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		mon := m.At(i % n)
		for k := 0; k < mon.Degree(); k++ {
			sum += mon.Neighbor(k)
		}
	}
	_ = sum
}
