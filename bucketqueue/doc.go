// Package bucketqueue implements an integer-keyed bucket priority queue over
// dense node ids, the work list of the IFT driver.
//
// What:
//
//   - Every node id in [0, capacity) owns one intrusive list cell; every bucket
//     owns the head and tail of one list. No pointers, no per-operation allocation.
//   - Weights are quantized by the bucket size Δ and mapped circularly onto the
//     finite buckets, so the active weight window can slide without reindexing.
//   - An optional infinite sentinel weight is routed to a dedicated last bucket
//     whose elements are removed only after every finite one.
//   - Ties inside a bucket are broken FIFO (default) or LIFO.
//
// Complexity:
//
//   - Insert, Delete, Update: O(1) amortized (growth copies occupied buckets once).
//   - Remove: O(1) amortized over a monotone run; the scan cursor only moves
//     forward (increasing) or backward (decreasing) between insertions.
//   - Memory: O(capacity + buckets).
//
// Growth:
//
//   - When the finite window would no longer fit, the bucket array is
//     reallocated to the needed size plus a fixed pad, keeping per-bucket order.
//   - Past the soft limit (WithGrowthLimits, default 1e6) growth is logged as a
//     warning; past the hard limit (default 1e7) the insertion fails with
//     ErrQueueTooLarge and the queue is left untouched.
//
// Errors:
//
//   - ErrBadCapacity, ErrBadBucketSize, ErrBadGrowthLimits: returned by New.
//   - ErrOutOfRange, ErrAlreadyQueued, ErrEmptyQueue, ErrNotQueued: invariant
//     violations by the caller.
//   - ErrQueueTooLarge, ErrGrowTooSmall: resource limits.
//
// A Queue is not safe for concurrent use.
package bucketqueue
