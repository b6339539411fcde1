package astarwater_test

import (
	"testing"

	"github.com/openfrontio/tilepath/astarwater"
	"github.com/openfrontio/tilepath/terrain"
)

// BenchmarkFindPath_OpenSea measures the reused-instance hot path: a
// 100x100 uniform open-sea map, corner to corner, repeated b.N times.
func BenchmarkFindPath_OpenSea(b *testing.B) {
	const n = 100
	buf := make([]byte, n*n)
	for i := range buf {
		buf[i] = terrain.EncodeWater(false, 5)
	}
	g, err := terrain.NewGrid(buf, n, n)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	pf, err := astarwater.New(g)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := pf.FindPath(0, terrain.TileID(n*n-1)); !ok {
			b.Fatal("expected a path")
		}
	}
}
