package pathfn

import (
	"fmt"

	"github.com/katalvlaran/lvlath-ift/bucketqueue"
)

// Spatial gives every node a position. adjacency.Grid satisfies it.
type Spatial interface {
	Nodes() int
	Point(index int) []float64
}

// Geodesic measures path length through space: the cost of reaching dst is
// value[src] plus the metric distance between the two positions. Seeds keep
// the value the caller gave them (normally zero).
type Geodesic[D Number] struct {
	Base[D]
	space  Spatial
	metric Metric
}

// NewGeodesic returns a geodesic-distance policy over space.
func NewGeodesic[D Number](space Spatial, metric Metric) *Geodesic[D] {
	return &Geodesic[D]{space: space, metric: metric}
}

// Initialize binds the maps and checks that space covers every node.
func (g *Geodesic[D]) Initialize(m *Maps[D], sequential bool) error {
	if err := g.Base.Initialize(m, sequential); err != nil {
		return err
	}
	if g.space == nil {
		return ErrNilSpace
	}
	if g.space.Nodes() != len(m.Value) {
		return fmt.Errorf("%w: space=%d value=%d", ErrSpaceSize, g.space.Nodes(), len(m.Value))
	}
	return nil
}

// Capable requires an unsettled dst strictly farther than src.
func (g *Geodesic[D]) Capable(src, dst int, dstState bucketqueue.State) bool {
	return dstState != bucketqueue.Removed && g.value[src] < g.value[dst]
}

// Propagate conquers dst when the step from src shortens its path.
func (g *Geodesic[D]) Propagate(src, dst, _ int) bool {
	step := g.metric.Distance(g.space.Point(src), g.space.Point(dst))
	prp := D(float64(g.value[src]) + step)
	if g.value[dst] > prp {
		g.value[dst] = prp
		g.Commit(src, dst)
		return true
	}
	return false
}

// PropagateDifferential behaves as Propagate.
func (g *Geodesic[D]) PropagateDifferential(src, dst, pos int) bool {
	return g.Propagate(src, dst, pos)
}

// Increasing is true: nearest first.
func (g *Geodesic[D]) Increasing() bool { return true }
