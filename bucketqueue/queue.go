package bucketqueue

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-ift/logging"
)

// Queue is a bucket-sort priority queue over dense node ids in [0, capacity).
//
// Each bucket holds an intrusive doubly-linked list threaded through the
// identity arena, so insertion, targeted removal and update are O(1) and the
// extremal scan is amortized O(1) over a run because the scan cursor
// (minimum or maximum) only moves in one direction between insertions.
//
// Finite weights map to the first len(weight)-1 buckets circularly; the last
// bucket is reserved for the infinite sentinel.
//
// A Queue is single-owner and must not be used from several goroutines.
type Queue struct {
	identity []identityNode
	weight   []weightNode

	minimum, maximum int64
	delta            int64

	elements    int
	infElements int

	increasing  bool
	fifo        bool
	hasInfinite bool
	infinite    int64
	warnBuckets int
	maxBuckets  int

	log *logging.Logger
}

// New creates a queue for capacity nodes. All nodes start NotVisited.
//
// Returns ErrBadCapacity, ErrBadBucketSize or ErrBadGrowthLimits on invalid
// configuration.
func New(capacity int, opts ...Option) (*Queue, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NoopLogger()
	}

	identity := make([]identityNode, capacity)
	for i := range identity {
		identity[i] = identityNode{next: nilLink, prev: nilLink, state: NotVisited}
	}

	return &Queue{
		identity:    identity,
		weight:      emptyBuckets(DefaultBuckets),
		delta:       cfg.BucketSize,
		increasing:  cfg.Increasing,
		fifo:        cfg.FIFO,
		hasInfinite: cfg.HasInfinite,
		infinite:    cfg.Infinite,
		warnBuckets: cfg.WarnBuckets,
		maxBuckets:  cfg.MaxBuckets,
		log:         cfg.Logger,
	}, nil
}

// floorDiv divides rounding toward negative infinity; b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// slot maps a bucket number onto a circular range of n finite slots.
func slot(bucket int64, n int) int {
	s := bucket % int64(n)
	if s < 0 {
		s += int64(n)
	}
	return int(s)
}

func (q *Queue) isInfinite(wgt int64) bool {
	return q.hasInfinite && wgt == q.infinite
}

func (q *Queue) finiteSlot(wgt int64) int {
	return slot(floorDiv(wgt, q.delta), len(q.weight)-1)
}

// Index returns the bucket that holds weight wgt.
func (q *Queue) Index(wgt int64) int {
	if q.isInfinite(wgt) {
		return len(q.weight) - 1
	}
	return q.finiteSlot(wgt)
}

func (q *Queue) checkID(id int) error {
	if id < 0 || id >= len(q.identity) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, id, len(q.identity))
	}
	return nil
}

// Insert adds id with weight wgt. The node must not be queued already.
// The bucket array grows when the finite weight range no longer fits.
func (q *Queue) Insert(id int, wgt int64) error {
	if err := q.checkID(id); err != nil {
		return err
	}
	if q.identity[id].state.Queued() {
		return fmt.Errorf("%w: node %d (%s)", ErrAlreadyQueued, id, q.identity[id].state)
	}
	if err := q.reserve(wgt); err != nil {
		return err
	}
	q.link(id, wgt)
	q.identity[id].state = Inserted

	return nil
}

// reserve widens the tracked finite window to include wgt, growing the
// bucket array when needed. The queue is left untouched on error.
func (q *Queue) reserve(wgt int64) error {
	if q.isInfinite(wgt) {
		return nil
	}
	if q.elements-q.infElements == 0 {
		q.minimum = wgt
		q.maximum = wgt
		return nil
	}

	newMin, newMax := min(wgt, q.minimum), max(wgt, q.maximum)
	// Finite buckets spanned by the window plus the infinite slot.
	span := q.span(newMin, newMax)
	if span >= uint64(q.maxBuckets) || span+2 > uint64(q.maxBuckets) {
		return fmt.Errorf("%w: minimum=%d maximum=%d weight=%d buckets=%d",
			ErrQueueTooLarge, newMin, newMax, wgt, span+2)
	}
	needed := int(span) + 2
	if len(q.weight) <= needed {
		from := len(q.weight)
		q.grow(needed + growthPad)
		q.log.LogGrowth(context.Background(), from, len(q.weight), newMin, newMax, needed > q.warnBuckets)
	}
	q.minimum = newMin
	q.maximum = newMax

	return nil
}

// span returns the number of bucket steps between lo and hi (hi >= lo).
// The difference is taken in uint64, where it cannot overflow even when
// the window stretches from MinInt64 to MaxInt64.
func (q *Queue) span(lo, hi int64) uint64 {
	return uint64(floorDiv(hi, q.delta)) - uint64(floorDiv(lo, q.delta))
}

// link splices id into the bucket of wgt and updates the counters.
func (q *Queue) link(id int, wgt int64) {
	idx := q.Index(wgt)
	if q.isInfinite(wgt) {
		q.infElements++
	}
	q.elements++

	node := &q.identity[id]
	bucket := &q.weight[idx]
	if q.fifo {
		if bucket.first == nilLink {
			bucket.first = id
			node.prev = nilLink
		} else {
			q.identity[bucket.last].next = id
			node.prev = bucket.last
		}
		bucket.last = id
		node.next = nilLink
		return
	}
	if bucket.first == nilLink {
		bucket.last = id
		node.next = nilLink
	} else {
		q.identity[bucket.first].prev = id
		node.next = bucket.first
	}
	bucket.first = id
	node.prev = nilLink
}

// unlink splices id out of the bucket of wgt.
func (q *Queue) unlink(id int, wgt int64) error {
	idx := q.Index(wgt)
	node := &q.identity[id]
	bucket := &q.weight[idx]
	prev, next := node.prev, node.next

	// A wrong weight would corrupt a foreign bucket; both ends are checkable in O(1).
	if (prev == nilLink && bucket.first != id) || (next == nilLink && bucket.last != id) {
		return fmt.Errorf("%w: node %d is not in the bucket of weight %d", ErrNotQueued, id, wgt)
	}

	if prev == nilLink {
		bucket.first = next
	} else {
		q.identity[prev].next = next
	}
	if next == nilLink {
		bucket.last = prev
	} else {
		q.identity[next].prev = prev
	}
	node.next, node.prev = nilLink, nilLink

	q.elements--
	if q.isInfinite(wgt) {
		q.infElements--
	}
	return nil
}

// relink puts id back between prev and next in the bucket of wgt, undoing
// an unlink that has not been followed by any other change.
func (q *Queue) relink(id int, wgt int64, prev, next int) {
	bucket := &q.weight[q.Index(wgt)]
	node := &q.identity[id]
	node.prev, node.next = prev, next
	if prev == nilLink {
		bucket.first = id
	} else {
		q.identity[prev].next = id
	}
	if next == nilLink {
		bucket.last = id
	} else {
		q.identity[next].prev = id
	}
	q.elements++
	if q.isInfinite(wgt) {
		q.infElements++
	}
}

// Remove pops the node at the head of the extremal bucket: the minimum weight
// for an increasing queue, the maximum otherwise. Infinite-weight nodes come
// out only after every finite one. The node state is left as it was so the
// caller can tell seeds (Inserted) from conquered nodes (Updated); call
// Finished to settle it.
func (q *Queue) Remove() (int, error) {
	if q.elements == 0 {
		return nilLink, ErrEmptyQueue
	}

	var idx int
	switch {
	case q.elements == q.infElements:
		idx = len(q.weight) - 1
		q.infElements--
	case q.increasing:
		idx = q.finiteSlot(q.minimum)
		for q.weight[idx].first == nilLink {
			q.minimum += q.delta
			idx = q.finiteSlot(q.minimum)
		}
	default:
		idx = q.finiteSlot(q.maximum)
		for q.weight[idx].first == nilLink {
			q.maximum -= q.delta
			idx = q.finiteSlot(q.maximum)
		}
	}
	q.elements--

	bucket := &q.weight[idx]
	id := bucket.first
	next := q.identity[id].next
	bucket.first = next
	if next == nilLink {
		bucket.last = nilLink
	} else {
		q.identity[next].prev = nilLink
	}
	q.identity[id].next = nilLink

	return id, nil
}

// Delete removes id, currently queued with weight wgt, from its bucket and
// marks it Removed.
func (q *Queue) Delete(id int, wgt int64) error {
	if err := q.checkID(id); err != nil {
		return err
	}
	if !q.identity[id].state.Queued() {
		return fmt.Errorf("%w: node %d (%s)", ErrNotQueued, id, q.identity[id].state)
	}
	if err := q.unlink(id, wgt); err != nil {
		return err
	}
	q.identity[id].state = Removed

	return nil
}

// Update moves id from curWgt to newWgt, exactly as Delete then Insert
// would. A node that is not queued is simply inserted with newWgt. Either way
// its state becomes Updated. On error the queue is left untouched.
func (q *Queue) Update(id int, curWgt, newWgt int64) error {
	if err := q.checkID(id); err != nil {
		return err
	}
	if !q.identity[id].state.Queued() {
		if err := q.reserve(newWgt); err != nil {
			return err
		}
		q.link(id, newWgt)
		q.identity[id].state = Updated
		return nil
	}

	// The old entry leaves first so it no longer holds the window open.
	prev, next := q.identity[id].prev, q.identity[id].next
	if err := q.unlink(id, curWgt); err != nil {
		return err
	}
	if err := q.reserve(newWgt); err != nil {
		q.relink(id, curWgt, prev, next)
		return err
	}
	q.link(id, newWgt)
	q.identity[id].state = Updated

	return nil
}

// Empty reports whether no element is queued.
func (q *Queue) Empty() bool { return q.elements == 0 }

// Elements returns the number of queued elements.
func (q *Queue) Elements() int { return q.elements }

// InfiniteElements returns the number of queued elements carrying the infinite sentinel.
func (q *Queue) InfiniteElements() int { return q.infElements }

// Increasing reports whether the queue removes the minimum first.
func (q *Queue) Increasing() bool { return q.increasing }

// FIFO reports whether ties are broken first-in-first-out.
func (q *Queue) FIFO() bool { return q.fifo }

// Capacity returns the number of node ids the queue tracks.
func (q *Queue) Capacity() int { return len(q.identity) }

// Buckets returns the current bucket array length, infinite slot included.
func (q *Queue) Buckets() int { return len(q.weight) }

// Bounds returns the tracked finite window. ok is false when no finite
// element is queued.
func (q *Queue) Bounds() (minimum, maximum int64, ok bool) {
	return q.minimum, q.maximum, q.elements-q.infElements > 0
}

// State returns the lifecycle state of id. id must be in range.
func (q *Queue) State(id int) State { return q.identity[id].state }

// SetState overwrites the lifecycle state of id without touching the lists.
func (q *Queue) SetState(id int, s State) { q.identity[id].state = s }

// Finished settles id as Removed.
func (q *Queue) Finished(id int) { q.identity[id].state = Removed }

// ResetState puts every node back to NotVisited, for reusing an empty queue
// over the same arrays.
func (q *Queue) ResetState() {
	for i := range q.identity {
		q.identity[i].state = NotVisited
	}
}
