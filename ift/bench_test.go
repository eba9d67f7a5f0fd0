package ift_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath-ift/adjacency"
	"github.com/katalvlaran/lvlath-ift/ift"
	"github.com/katalvlaran/lvlath-ift/pathfn"
)

// benchGradient builds a side×side grid with a random gradient in [0,256).
func benchGradient(b *testing.B, side int) (*adjacency.Grid, []int) {
	b.Helper()
	grid, err := adjacency.NewGrid(side, side, 1, adjacency.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(1))
	gradient := make([]int, grid.Nodes())
	for i := range gradient {
		gradient[i] = r.Intn(256)
	}
	return grid, gradient
}

func BenchmarkRun_Watershed256(b *testing.B) {
	grid, gradient := benchGradient(b, 256)
	markers := []int{0, grid.Index(255, 0, 0), grid.Index(0, 255, 0), grid.Index(255, 255, 0)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		maps := pathfn.NewMaps[int](grid.Nodes(), math.MaxInt, true, true)
		for _, m := range markers {
			maps.Value[m] = gradient[m]
		}
		if err := ift.Run(maps, grid, pathfn.NewMax(gradient),
			ift.WithSeeds(markers...), ift.WithSequentialLabels()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_Sum256(b *testing.B) {
	grid, gradient := benchGradient(b, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		maps := pathfn.NewMaps[int](grid.Nodes(), math.MaxInt, false, true)
		maps.Value[0] = gradient[0]
		if err := ift.Run(maps, grid, pathfn.NewSum(gradient), ift.WithSeeds(0)); err != nil {
			b.Fatal(err)
		}
	}
}
