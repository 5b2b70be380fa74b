package lattice_test

import (
	"testing"

	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/lattice"
)

func benchmarkEntry(b *testing.B, x, y, z int) {
	l := lattice.New[uint32]()
	if err := l.Setup(x, y, z); err != nil {
		b.Fatal(err)
	}
	p := core.V(-3, 17, 200)
	b.ReportAllocs()
	b.ResetTimer()
	var sink uint32
	for i := 0; i < b.N; i++ {
		p.X++
		sink += l.Entry(p)
	}
	_ = sink
}

// BenchmarkEntry_PowerOfTwo measures mask-and-shift addressing.
func BenchmarkEntry_PowerOfTwo(b *testing.B) { benchmarkEntry(b, 64, 64, 64) }

// BenchmarkEntry_Generic measures modulo addressing.
func BenchmarkEntry_Generic(b *testing.B) { benchmarkEntry(b, 60, 60, 60) }
