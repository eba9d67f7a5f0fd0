package pathfn

import (
	"fmt"

	"github.com/katalvlaran/lvlath-ift/bucketqueue"
)

// Diff is the live-wire policy: a path loses the handicap of every node it
// enters, value[src] - handicap[dst], and the driver settles the highest
// value first. Seeds settle at their own handicap; non-seed values must start
// at the lowest representable value.
type Diff[D Number] struct {
	Base[D]
	handicap []D
}

// NewDiff returns a live-wire policy over handicap (typically an inverted
// edge strength).
func NewDiff[D Number](handicap []D) *Diff[D] {
	f := &Diff[D]{handicap: handicap}
	f.SetRoot(func(i int) D { return f.handicap[i] })
	return f
}

// Initialize binds the maps and checks the handicap length.
func (f *Diff[D]) Initialize(m *Maps[D], sequential bool) error {
	if err := f.Base.Initialize(m, sequential); err != nil {
		return err
	}
	if len(f.handicap) != len(m.Value) {
		return fmt.Errorf("%w: handicap=%d value=%d", ErrHandicapSize, len(f.handicap), len(m.Value))
	}
	return nil
}

// Capable requires an unsettled dst strictly below src.
func (f *Diff[D]) Capable(src, dst int, dstState bucketqueue.State) bool {
	return dstState != bucketqueue.Removed && f.value[src] > f.value[dst]
}

// Propagate conquers dst when the path through src keeps more value.
func (f *Diff[D]) Propagate(src, dst, _ int) bool {
	prp := f.value[src] - f.handicap[dst]
	if f.value[dst] < prp {
		f.value[dst] = prp
		f.Commit(src, dst)
		return true
	}
	return false
}

// PropagateDifferential behaves as Propagate.
func (f *Diff[D]) PropagateDifferential(src, dst, pos int) bool {
	return f.Propagate(src, dst, pos)
}

// Increasing is false: highest value first.
func (f *Diff[D]) Increasing() bool { return false }

// BestValue returns the handicap of index.
func (f *Diff[D]) BestValue(index int) D { return f.handicap[index] }
