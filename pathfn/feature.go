package pathfn

import (
	"fmt"

	"github.com/katalvlaran/lvlath-ift/bucketqueue"
)

// FeatureDistance is the optimum-path-forest clustering policy over a
// complete graph: dst is offered the feature distance to the node that
// conquers it, Prim style, so the forest is a minimum spanning forest in
// feature space.
type FeatureDistance[D Number] struct {
	Base[D]
	features []float64
	dims     int
	metric   Metric
}

// NewFeatureDistance returns a clustering policy over a row-major
// nodes×dims feature matrix.
func NewFeatureDistance[D Number](features []float64, dims int, metric Metric) *FeatureDistance[D] {
	return &FeatureDistance[D]{features: features, dims: dims, metric: metric}
}

// Initialize binds the maps and checks the feature matrix shape.
func (f *FeatureDistance[D]) Initialize(m *Maps[D], sequential bool) error {
	if err := f.Base.Initialize(m, sequential); err != nil {
		return err
	}
	if f.dims <= 0 || len(f.features) != f.dims*len(m.Value) {
		return fmt.Errorf("%w: features=%d dims=%d nodes=%d", ErrFeatureSize, len(f.features), f.dims, len(m.Value))
	}
	return nil
}

// Feature returns the feature vector of index.
func (f *FeatureDistance[D]) Feature(index int) []float64 {
	return f.features[index*f.dims : (index+1)*f.dims]
}

// Capable requires an unsettled dst with a positive value left to lower.
func (f *FeatureDistance[D]) Capable(_, dst int, dstState bucketqueue.State) bool {
	return dstState != bucketqueue.Removed && f.value[dst] > 0
}

// Propagate lowers dst to its distance from src when that is smaller.
func (f *FeatureDistance[D]) Propagate(src, dst, _ int) bool {
	d := f.metric.Distance(f.Feature(src), f.Feature(dst))
	if float64(f.value[dst]) > d {
		f.value[dst] = D(d)
		f.Commit(src, dst)
		return true
	}
	return false
}

// PropagateDifferential behaves as Propagate.
func (f *FeatureDistance[D]) PropagateDifferential(src, dst, pos int) bool {
	return f.Propagate(src, dst, pos)
}

// Increasing is true: nearest first.
func (f *FeatureDistance[D]) Increasing() bool { return true }
