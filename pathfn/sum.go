package pathfn

import (
	"fmt"

	"github.com/katalvlaran/lvlath-ift/bucketqueue"
)

// Sum accumulates the handicap of every node along a path: the cost of
// reaching dst from src is value[src] + handicap[dst]. Seeds settle at their
// own handicap. With a unit handicap this is hop distance.
type Sum[D Number] struct {
	Base[D]
	handicap []D
}

// NewSum returns an additive policy over handicap. The slice is read-only
// from here on.
func NewSum[D Number](handicap []D) *Sum[D] {
	s := &Sum[D]{handicap: handicap}
	s.SetRoot(func(i int) D { return s.handicap[i] })
	return s
}

// Initialize binds the maps and checks the handicap length.
func (s *Sum[D]) Initialize(m *Maps[D], sequential bool) error {
	if err := s.Base.Initialize(m, sequential); err != nil {
		return err
	}
	if len(s.handicap) != len(m.Value) {
		return fmt.Errorf("%w: handicap=%d value=%d", ErrHandicapSize, len(s.handicap), len(m.Value))
	}
	return nil
}

// Capable requires src to be strictly cheaper than dst.
func (s *Sum[D]) Capable(src, dst int, _ bucketqueue.State) bool {
	return s.value[src] < s.value[dst]
}

// Propagate conquers dst when the path through src is strictly cheaper.
func (s *Sum[D]) Propagate(src, dst, _ int) bool {
	prp := s.value[src] + s.handicap[dst]
	if s.value[dst] > prp {
		s.value[dst] = prp
		s.Commit(src, dst)
		return true
	}
	return false
}

// PropagateDifferential also overwrites a child of src whose label went stale.
func (s *Sum[D]) PropagateDifferential(src, dst, _ int) bool {
	prp := s.value[src] + s.handicap[dst]
	if s.value[dst] > prp || s.reconquer(src, dst) {
		s.value[dst] = prp
		s.Commit(src, dst)
		return true
	}
	return false
}

// Increasing is true: cheapest first.
func (s *Sum[D]) Increasing() bool { return true }

// BestValue returns the handicap, the cost index has as a root.
func (s *Sum[D]) BestValue(index int) D { return s.handicap[index] }
