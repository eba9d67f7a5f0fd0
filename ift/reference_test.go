package ift_test

import (
	"container/heap"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-ift/adjacency"
	"github.com/katalvlaran/lvlath-ift/ift"
	"github.com/katalvlaran/lvlath-ift/pathfn"
)

type item struct {
	node int
	dist int64
}

type minHeap []item

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(item)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]
	return it
}

// referenceDistances is textbook lazy-deletion Dijkstra with node costs.
func referenceDistances(g *adjacency.Graph, handicap []int64, source int) []int64 {
	dist := make([]int64, g.Nodes())
	for i := range dist {
		dist[i] = math.MaxInt64
	}
	dist[source] = handicap[source]
	h := &minHeap{{node: source, dist: dist[source]}}
	for h.Len() > 0 {
		it := heap.Pop(h).(item)
		if it.dist > dist[it.node] {
			continue
		}
		for pos := 0; pos < g.Degree(it.node); pos++ {
			u, _ := g.Neighbor(it.node, pos)
			if nd := it.dist + handicap[u]; nd < dist[u] {
				dist[u] = nd
				heap.Push(h, item{node: u, dist: nd})
			}
		}
	}
	return dist
}

func TestRun_MatchesReferenceDijkstra(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		r := rand.New(rand.NewSource(seed))
		const n, m = 200, 500
		edges := make([]adjacency.Edge, 0, m)
		for len(edges) < m {
			a, b := r.Intn(n), r.Intn(n)
			if a != b {
				edges = append(edges, adjacency.Edge{From: a, To: b})
			}
		}
		g, err := adjacency.NewGraph(n, edges, false)
		require.NoError(t, err)

		handicap := make([]int64, n)
		for i := range handicap {
			handicap[i] = 1 + r.Int63n(20)
		}
		handicap[0] = 0

		maps := pathfn.NewMaps[int64](n, math.MaxInt64, false, true)
		maps.Value[0] = 0
		require.NoError(t, ift.Run(maps, g, pathfn.NewSum(handicap), ift.WithSeeds(0)))

		want := referenceDistances(g, handicap, 0)
		assert.Equal(t, want, maps.Value, "seed %d", seed)
		for i, p := range maps.Pred {
			if p >= 0 {
				assert.Equal(t, maps.Value[p]+handicap[i], maps.Value[i], "edge %d→%d", p, i)
			}
		}
	}
}
