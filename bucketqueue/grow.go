package bucketqueue

import (
	"context"
	"fmt"
)

// Grow reallocates the bucket array to newSize slots (infinite slot included).
// Occupied buckets are re-mapped with the same circular rule and keep their
// list order; the infinite bucket is carried over unchanged.
//
// Returns ErrGrowTooSmall when newSize cannot hold the active finite window,
// and ErrQueueTooLarge above the hard limit.
func (q *Queue) Grow(newSize int) error {
	if newSize > q.maxBuckets {
		return fmt.Errorf("%w: requested %d buckets, limit %d", ErrQueueTooLarge, newSize, q.maxBuckets)
	}
	span := uint64(0)
	if q.elements-q.infElements > 0 {
		span = q.span(q.minimum, q.maximum) + 1
	}
	if newSize < 2 || uint64(newSize-1) < span {
		return fmt.Errorf("%w: new size %d, window spans %d buckets", ErrGrowTooSmall, newSize, span)
	}

	from := len(q.weight)
	q.grow(newSize)
	q.log.LogGrowth(context.Background(), from, newSize, q.minimum, q.maximum, newSize > q.warnBuckets)

	return nil
}

// grow rebuilds the bucket array. It must run before the tracked window is
// widened: the old window fits the old array, so walking one full circle of
// old slots from its lowest bucket visits every occupied bucket number once.
func (q *Queue) grow(newSize int) {
	old := q.weight
	oldFinite, newFinite := len(old)-1, newSize-1
	weight := emptyBuckets(newSize)

	if q.elements-q.infElements > 0 {
		first := floorDiv(q.minimum, q.delta)
		for k := int64(0); k < int64(oldFinite); k++ {
			bucket := first + k
			from := slot(bucket, oldFinite)
			if old[from].first == nilLink {
				continue
			}
			weight[slot(bucket, newFinite)] = old[from]
		}
	}
	weight[newFinite] = old[oldFinite]
	q.weight = weight
}
