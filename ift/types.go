// Package ift defines the phases, options and errors of the Image Foresting
// Transform driver.
package ift

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvlath-ift/bucketqueue"
	"github.com/katalvlaran/lvlath-ift/logging"
)

// Sentinel errors returned by New and by a failing run.
var (
	// ErrNilMaps indicates that no value map was supplied.
	ErrNilMaps = errors.New("ift: maps are nil")
	// ErrNilAdjacency indicates a nil adjacency enumerator.
	ErrNilAdjacency = errors.New("ift: adjacency is nil")
	// ErrNilPathFunction indicates a nil path function.
	ErrNilPathFunction = errors.New("ift: path function is nil")
	// ErrDimensionMismatch indicates an adjacency defined over a different
	// node count than the value map.
	ErrDimensionMismatch = errors.New("ift: value map and adjacency dimensions do not match")
	// ErrSeedOutOfRange indicates a seed (or stop node) outside [0, nodes).
	ErrSeedOutOfRange = errors.New("ift: seed out of range")
	// ErrDifferentialMaps indicates differential propagation requested
	// without both label and predecessor maps.
	ErrDifferentialMaps = errors.New("ift: differential propagation requires label and predecessor maps")
	// ErrBadResolution indicates a non-positive value-to-weight quantum.
	ErrBadResolution = errors.New("ift: resolution must be positive")
	// ErrInfiniteType indicates WithInfiniteValue given a type other than the value map's.
	ErrInfiniteType = errors.New("ift: infinite value type does not match value map")
	// ErrWeightOverflow indicates a value that cannot be represented as a queue weight.
	ErrWeightOverflow = errors.New("ift: value not representable as a queue weight")
)

// infWeight is the queue sentinel standing for the configured infinite value.
const infWeight = math.MaxInt64

// Phase is the lifecycle of a Runner.
type Phase int

const (
	// Unseeded: built, no node queued yet.
	Unseeded Phase = iota
	// Running: seeds queued, nodes being settled.
	Running
	// Done: queue drained, stop condition met, or run aborted.
	Done
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Unseeded:
		return "UNSEEDED"
	case Running:
		return "RUNNING"
	case Done:
		return "DONE"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// RunError reports an invariant violation that aborted a run. It is created
// once, where Step returns, and wraps the queue or weight error underneath.
type RunError struct {
	Phase Phase // phase the runner was in
	Node  int   // node being handled, -1 when none
	Err   error
}

// Error implements error.
func (e *RunError) Error() string {
	return fmt.Sprintf("ift: run aborted in %s at node %d: %v", e.Phase, e.Node, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *RunError) Unwrap() error { return e.Err }

// Options configures a Runner.
//
// Seeds        – nodes queued at start; nil means every node.
// BucketSize   – weight quantum per queue bucket (Δ ≥ 1).
// FIFO         – tie-break among equal weights.
// Resolution   – value units per weight unit; weight = floor(value / Resolution).
// Infinite     – value routed to the queue's infinite slot, typed as the value map.
// Sequential   – give every settled seed the next integer label.
// Differential – reuse a previous forest through PropagateDifferential.
// StopAt       – stop once this node is settled (-1 disables).
// StopWhen     – stop when it returns true for the last settled node.
type Options struct {
	Seeds        *roaring.Bitmap
	seedIDs      []int
	BucketSize   int64
	FIFO         bool
	Resolution   float64
	Infinite     any
	Sequential   bool
	Differential bool
	StopAt       int
	StopWhen     func(last int) bool
	WarnBuckets  int
	MaxBuckets   int
	Logger       *logging.Logger
}

// Option represents a functional option for configuring a Runner.
type Option func(*Options)

// DefaultOptions returns the defaults: every node a seed, Δ=1, FIFO ties,
// resolution 1, no infinite value, no labels, no stop condition, queue
// growth limits from bucketqueue, noop logger.
func DefaultOptions() Options {
	return Options{
		BucketSize:  1,
		FIFO:        true,
		Resolution:  1,
		StopAt:      -1,
		WarnBuckets: bucketqueue.DefaultWarnBuckets,
		MaxBuckets:  bucketqueue.DefaultMaxBuckets,
	}
}

// WithSeeds adds explicit seed ids. Out-of-range ids are reported by New.
func WithSeeds(ids ...int) Option {
	return func(o *Options) {
		if o.Seeds == nil {
			o.Seeds = roaring.New()
		}
		o.seedIDs = append(o.seedIDs, ids...)
	}
}

// WithSeedSet adds every id of set to the seeds. The set is copied.
func WithSeedSet(set *roaring.Bitmap) Option {
	return func(o *Options) {
		if o.Seeds == nil {
			o.Seeds = roaring.New()
		}
		if set != nil {
			o.Seeds.Or(set)
		}
	}
}

// WithBucketSize sets the queue bucket quantum Δ.
// Panics if delta < 1.
func WithBucketSize(delta int64) Option {
	return func(o *Options) {
		if delta < 1 {
			panic(bucketqueue.ErrBadBucketSize.Error())
		}
		o.BucketSize = delta
	}
}

// WithFIFO selects FIFO (true) or LIFO (false) ties.
func WithFIFO(fifo bool) Option {
	return func(o *Options) {
		o.FIFO = fifo
	}
}

// WithResolution sets how many value units make one queue weight unit,
// used to bucket fractional costs.
// Panics if res is not a positive finite number.
func WithResolution(res float64) Option {
	return func(o *Options) {
		if !(res > 0) || math.IsInf(res, 1) {
			panic(ErrBadResolution.Error())
		}
		o.Resolution = res
	}
}

// WithInfiniteValue declares the value that marks "not reached yet". Nodes
// queued with it are settled after every other node. v must have the value
// map's element type.
func WithInfiniteValue[D any](v D) Option {
	return func(o *Options) {
		o.Infinite = v
	}
}

// WithSequentialLabels numbers trees 0, 1, 2… in settling order of their roots.
func WithSequentialLabels() Option {
	return func(o *Options) {
		o.Sequential = true
	}
}

// WithDifferential propagates with PropagateDifferential, letting a run
// repair a forest computed earlier on the same maps.
func WithDifferential() Option {
	return func(o *Options) {
		o.Differential = true
	}
}

// WithStopAt ends the run as soon as node is settled (live-wire target).
func WithStopAt(node int) Option {
	return func(o *Options) {
		o.StopAt = node
	}
}

// WithStopWhen ends the run once stop returns true for the last settled node.
func WithStopWhen(stop func(last int) bool) Option {
	return func(o *Options) {
		o.StopWhen = stop
	}
}

// WithGrowthLimits overrides the queue soft and hard bucket limits.
func WithGrowthLimits(warn, max int) Option {
	return func(o *Options) {
		o.WarnBuckets = warn
		o.MaxBuckets = max
	}
}

// WithLogger sets the logger for queue growth and run lifecycle events.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
