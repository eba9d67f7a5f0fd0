// SPDX-License-Identifier: MIT
// Package: lvlath-ift/bucketqueue
//
// types.go — node states, options and sentinel errors for the bucket queue.
//
// Error policy:
//   • Configuration problems (capacity, bucket size, growth limits) are returned
//     by New and never by the mutating operations.
//   • Invariant violations (double insert, remove from empty, unknown node) are
//     returned by Insert/Remove/Delete/Update wrapped with the offending node.
//   • Callers branch with errors.Is; sentinels are never formatted at definition.

package bucketqueue

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-ift/logging"
)

// State is the lifecycle of a node within one run.
type State uint8

const (
	// NotVisited marks a node that never entered the queue.
	NotVisited State = iota
	// Inserted marks a node inserted by Insert (a seed, for the IFT driver).
	Inserted
	// Updated marks a node whose weight was set or changed by Update.
	Updated
	// Removed marks a node popped from the queue or explicitly finished.
	Removed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case NotVisited:
		return "NOT_VISITED"
	case Inserted:
		return "INSERTED"
	case Updated:
		return "UPDATED"
	case Removed:
		return "REMOVED"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Queued reports whether a node in state s is currently linked into a bucket.
func (s State) Queued() bool {
	return s == Inserted || s == Updated
}

// nilLink terminates intrusive lists.
const nilLink = -1

// Sizing constants.
const (
	// DefaultBuckets is the initial bucket array length (last slot included).
	DefaultBuckets = 256
	// DefaultWarnBuckets is the soft limit: growth past it is logged as a warning.
	DefaultWarnBuckets = 1_000_000
	// DefaultMaxBuckets is the hard limit: growth past it fails the insertion.
	DefaultMaxBuckets = 10_000_000
	// growthPad is added to the required size on every reallocation.
	growthPad = 10_000
)

// Sentinel errors.
var (
	// ErrBadCapacity indicates a negative node capacity.
	ErrBadCapacity = errors.New("bucketqueue: capacity must be non-negative")
	// ErrBadBucketSize indicates a bucket size (weight quantum) below 1.
	ErrBadBucketSize = errors.New("bucketqueue: bucket size must be positive")
	// ErrBadGrowthLimits indicates warn/max limits that are not 0 < warn <= max.
	ErrBadGrowthLimits = errors.New("bucketqueue: growth limits must satisfy 0 < warn <= max")
	// ErrOutOfRange indicates a node id outside [0, capacity).
	ErrOutOfRange = errors.New("bucketqueue: node id out of range")
	// ErrAlreadyQueued indicates an insertion of a node that is already queued.
	ErrAlreadyQueued = errors.New("bucketqueue: element already in queue")
	// ErrEmptyQueue indicates a removal from an empty queue.
	ErrEmptyQueue = errors.New("bucketqueue: removing element from empty queue")
	// ErrNotQueued indicates a targeted removal of a node that is not queued.
	ErrNotQueued = errors.New("bucketqueue: element not in queue")
	// ErrQueueTooLarge indicates a weight range beyond the hard bucket limit.
	ErrQueueTooLarge = errors.New("bucketqueue: weight range exceeds maximum bucket count")
	// ErrGrowTooSmall indicates a Grow target that cannot hold the active weight window.
	ErrGrowTooSmall = errors.New("bucketqueue: new size cannot hold current weight range")
)

// Options configures a Queue.
//
// BucketSize – weight quantum mapped to one bucket (Δ ≥ 1).
// Increasing – remove minimum first when true, maximum first otherwise.
// FIFO       – first-in-first-out among equal-bucket elements when true, LIFO otherwise.
// Infinite   – optional sentinel weight routed to the dedicated last bucket.
// WarnBuckets, MaxBuckets – soft and hard limits on the bucket array length.
type Options struct {
	BucketSize  int64
	Increasing  bool
	FIFO        bool
	HasInfinite bool
	Infinite    int64
	WarnBuckets int
	MaxBuckets  int
	Logger      *logging.Logger
}

// Option represents a functional option for configuring a Queue.
type Option func(*Options)

// DefaultOptions returns the defaults: Δ=1, increasing order, FIFO ties,
// no infinite sentinel, 1e6/1e7 growth limits, noop logger.
func DefaultOptions() Options {
	return Options{
		BucketSize:  1,
		Increasing:  true,
		FIFO:        true,
		WarnBuckets: DefaultWarnBuckets,
		MaxBuckets:  DefaultMaxBuckets,
	}
}

// WithBucketSize sets the weight quantum Δ. Values below 1 are rejected by New.
func WithBucketSize(delta int64) Option {
	return func(o *Options) {
		o.BucketSize = delta
	}
}

// WithIncreasing selects minimum-first (true) or maximum-first (false) removal.
func WithIncreasing(increasing bool) Option {
	return func(o *Options) {
		o.Increasing = increasing
	}
}

// WithFIFO selects FIFO (true) or LIFO (false) tie-breaking.
func WithFIFO(fifo bool) Option {
	return func(o *Options) {
		o.FIFO = fifo
	}
}

// WithInfiniteValue declares a sentinel weight. Elements carrying it are
// removed only after every finite-weight element.
func WithInfiniteValue(inf int64) Option {
	return func(o *Options) {
		o.HasInfinite = true
		o.Infinite = inf
	}
}

// WithGrowthLimits overrides the soft (warn) and hard (max) bucket limits.
func WithGrowthLimits(warn, max int) Option {
	return func(o *Options) {
		o.WarnBuckets = warn
		o.MaxBuckets = max
	}
}

// WithLogger sets the logger used for growth warnings.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Validate reports the first configuration problem in o, or nil.
func (o Options) Validate() error {
	if o.BucketSize < 1 {
		return fmt.Errorf("%w: got %d", ErrBadBucketSize, o.BucketSize)
	}
	if o.WarnBuckets <= 0 || o.MaxBuckets < o.WarnBuckets {
		return fmt.Errorf("%w: warn=%d max=%d", ErrBadGrowthLimits, o.WarnBuckets, o.MaxBuckets)
	}
	return nil
}

// identityNode holds the intrusive list links of one element.
type identityNode struct {
	next, prev int
	state      State
}

// weightNode holds the head and tail of one bucket list.
type weightNode struct {
	first, last int
}

func emptyBuckets(n int) []weightNode {
	b := make([]weightNode, n)
	for i := range b {
		b[i] = weightNode{first: nilLink, last: nilLink}
	}
	return b
}
