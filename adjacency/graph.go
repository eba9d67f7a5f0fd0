package adjacency

import "fmt"

// Edge is a connection between two node ids.
type Edge struct {
	From, To int
}

// Graph is an explicit adjacency in compressed sparse row form. Neighbors of
// node i are targets[offsets[i]:offsets[i+1]], in edge insertion order.
type Graph struct {
	offsets []int
	targets []int
	maxDeg  int
}

// NewGraph builds a Graph over n nodes. Undirected graphs store every edge
// in both directions. Returns ErrBadNodeCount or ErrEdgeOutOfRange.
func NewGraph(n int, edges []Edge, directed bool) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}
	degree := make([]int, n+1)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: %d→%d with %d nodes", ErrEdgeOutOfRange, e.From, e.To, n)
		}
		degree[e.From+1]++
		if !directed {
			degree[e.To+1]++
		}
	}

	// Prefix sums turn degrees into row offsets.
	g := &Graph{offsets: degree}
	for i := 1; i <= n; i++ {
		g.maxDeg = max(g.maxDeg, degree[i])
		g.offsets[i] += g.offsets[i-1]
	}
	g.targets = make([]int, g.offsets[n])

	fill := make([]int, n)
	copy(fill, g.offsets[:n])
	for _, e := range edges {
		g.targets[fill[e.From]] = e.To
		fill[e.From]++
		if !directed {
			g.targets[fill[e.To]] = e.From
			fill[e.To]++
		}
	}
	return g, nil
}

// Nodes returns the node count.
func (g *Graph) Nodes() int { return len(g.offsets) - 1 }

// Size returns the largest out-degree; shorter rows report invalid positions.
func (g *Graph) Size() int { return g.maxDeg }

// Degree returns the out-degree of index.
func (g *Graph) Degree(index int) int { return g.offsets[index+1] - g.offsets[index] }

// Neighbor returns the pos-th target of index.
func (g *Graph) Neighbor(index, pos int) (int, bool) {
	if pos < 0 || pos >= g.Degree(index) {
		return -1, false
	}
	return g.targets[g.offsets[index]+pos], true
}

// Complete links every node to every other node. Position p is node p.
type Complete int

// Nodes returns the node count.
func (c Complete) Nodes() int { return int(c) }

// Size returns the node count.
func (c Complete) Size() int { return int(c) }

// Neighbor returns pos unless it is index itself.
func (c Complete) Neighbor(index, pos int) (int, bool) {
	if pos == index || pos < 0 || pos >= int(c) {
		return -1, false
	}
	return pos, true
}

// Path is the chain 0–1–…–(n-1). Position 0 is the previous node,
// position 1 the next.
type Path int

// Nodes returns the node count.
func (p Path) Nodes() int { return int(p) }

// Size is always 2.
func (p Path) Size() int { return 2 }

// Neighbor returns index-1 for pos 0 and index+1 for pos 1.
func (p Path) Neighbor(index, pos int) (int, bool) {
	var n int
	switch pos {
	case 0:
		n = index - 1
	case 1:
		n = index + 1
	default:
		return -1, false
	}
	if n < 0 || n >= int(p) {
		return -1, false
	}
	return n, true
}
