package pathfn

import (
	"fmt"

	"github.com/katalvlaran/lvlath-ift/bucketqueue"
)

// Max is the watershed connectivity function: the cost of a path is the
// highest handicap along it, max(value[src], handicap[dst]). Seeds settle at
// their own handicap.
type Max[D Number] struct {
	Base[D]
	handicap []D
}

// NewMax returns a watershed policy over handicap (typically a gradient).
func NewMax[D Number](handicap []D) *Max[D] {
	f := &Max[D]{handicap: handicap}
	f.SetRoot(func(i int) D { return f.handicap[i] })
	return f
}

// Initialize binds the maps and checks the handicap length.
func (f *Max[D]) Initialize(m *Maps[D], sequential bool) error {
	if err := f.Base.Initialize(m, sequential); err != nil {
		return err
	}
	if len(f.handicap) != len(m.Value) {
		return fmt.Errorf("%w: handicap=%d value=%d", ErrHandicapSize, len(f.handicap), len(m.Value))
	}
	return nil
}

// Capable only excludes settled nodes; the value test happens in Propagate.
func (f *Max[D]) Capable(_, _ int, dstState bucketqueue.State) bool {
	return dstState != bucketqueue.Removed
}

func (f *Max[D]) candidate(src, dst int) D {
	return max(f.value[src], f.handicap[dst])
}

// Propagate conquers dst when strictly cheaper through src, and always
// refreshes a dst that already hangs from src.
func (f *Max[D]) Propagate(src, dst, _ int) bool {
	prp := f.candidate(src, dst)
	if (f.pred != nil && f.pred[dst] == src) || f.value[dst] > prp {
		f.value[dst] = prp
		f.Commit(src, dst)
		return true
	}
	return false
}

// PropagateDifferential conquers dst when strictly cheaper, or when dst hangs
// from src with a label that disagrees, re-conquering the stale subtree.
func (f *Max[D]) PropagateDifferential(src, dst, _ int) bool {
	prp := f.candidate(src, dst)
	if f.value[dst] > prp || f.reconquer(src, dst) {
		f.value[dst] = prp
		f.Commit(src, dst)
		return true
	}
	return false
}

// Increasing is true: lowest altitude floods first.
func (f *Max[D]) Increasing() bool { return true }

// BestValue returns the handicap, below which no path to index can go.
func (f *Max[D]) BestValue(index int) D { return f.handicap[index] }
