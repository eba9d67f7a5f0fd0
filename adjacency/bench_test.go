package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-ift/adjacency"
)

// BenchmarkGridNeighbor enumerates the 8-neighborhood of every pixel of a
// 1000×1000 image.
func BenchmarkGridNeighbor(b *testing.B) {
	opts := adjacency.DefaultGridOptions()
	opts.Conn = adjacency.Conn8
	g, err := adjacency.NewGrid(1000, 1000, 1, opts)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < g.Nodes(); idx++ {
			for pos := 0; pos < g.Size(); pos++ {
				_, _ = g.Neighbor(idx, pos)
			}
		}
	}
}
