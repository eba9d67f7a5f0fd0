package ift

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvlath-ift/adjacency"
	"github.com/katalvlaran/lvlath-ift/bucketqueue"
	"github.com/katalvlaran/lvlath-ift/logging"
	"github.com/katalvlaran/lvlath-ift/pathfn"
)

// Runner holds the mutable state of one forest computation.
// It is single-owner: Step and Run must not be called concurrently.
type Runner[D pathfn.Number] struct {
	maps  *pathfn.Maps[D]
	adj   adjacency.Enumerator
	fn    pathfn.PathFunction[D]
	queue *bucketqueue.Queue
	seeds *roaring.Bitmap

	propagate func(src, dst, pos int) bool

	resolution float64
	isFloat    bool
	hasInf     bool
	inf        D
	stopAt     int
	stopWhen   func(last int) bool

	phase   Phase
	popped  int
	last    int
	stopped bool
	err     error

	log *logging.Logger
}

// Run builds a Runner and drives it to completion. It is the one-call form
// of New followed by (*Runner).Run.
func Run[D pathfn.Number](maps *pathfn.Maps[D], adj adjacency.Enumerator, fn pathfn.PathFunction[D], opts ...Option) error {
	r, err := New(maps, adj, fn, opts...)
	if err != nil {
		return err
	}
	return r.Run()
}

// New validates the configuration, binds fn to maps and builds the queue
// with fn's direction. Every configuration problem found is reported
// together; the run does not start if any exists.
//
// Checked, in order:
//  1. maps non-nil and internally consistent (ErrNilMaps, pathfn.ErrMapSizeMismatch).
//  2. adj non-nil and over the same node count (ErrNilAdjacency, ErrDimensionMismatch).
//  3. fn non-nil (ErrNilPathFunction).
//  4. seeds and StopAt within range (ErrSeedOutOfRange).
//  5. differential mode has label and predecessor maps (ErrDifferentialMaps).
//  6. resolution, infinite value type and queue limits.
//
// fn.Initialize runs last and its error is returned as is.
func New[D pathfn.Number](maps *pathfn.Maps[D], adj adjacency.Enumerator, fn pathfn.PathFunction[D], opts ...Option) (*Runner[D], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var result *multierror.Error
	n := -1
	switch {
	case maps == nil:
		result = multierror.Append(result, ErrNilMaps)
	default:
		if err := maps.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: %w", ErrNilMaps, err))
		} else {
			n = maps.Len()
		}
	}
	if adj == nil {
		result = multierror.Append(result, ErrNilAdjacency)
	} else if n >= 0 && adj.Nodes() != n {
		result = multierror.Append(result, fmt.Errorf("%w: value=%d adjacency=%d", ErrDimensionMismatch, n, adj.Nodes()))
	}
	if fn == nil {
		result = multierror.Append(result, ErrNilPathFunction)
	}

	seeds, err := resolveSeeds(cfg, n)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if n >= 0 && cfg.StopAt >= n {
		result = multierror.Append(result, fmt.Errorf("%w: stop node %d with %d nodes", ErrSeedOutOfRange, cfg.StopAt, n))
	}
	if cfg.Differential && maps != nil && (maps.Label == nil || maps.Pred == nil) {
		result = multierror.Append(result, ErrDifferentialMaps)
	}
	if !(cfg.Resolution > 0) {
		result = multierror.Append(result, fmt.Errorf("%w: got %g", ErrBadResolution, cfg.Resolution))
	}

	var inf D
	hasInf := cfg.Infinite != nil
	if hasInf {
		v, ok := cfg.Infinite.(D)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("%w: got %T, want %T", ErrInfiniteType, cfg.Infinite, inf))
		}
		inf = v
	}

	qopts := []bucketqueue.Option{
		bucketqueue.WithBucketSize(cfg.BucketSize),
		bucketqueue.WithFIFO(cfg.FIFO),
		bucketqueue.WithGrowthLimits(cfg.WarnBuckets, cfg.MaxBuckets),
	}
	qcfg := bucketqueue.DefaultOptions()
	for _, o := range qopts {
		o(&qcfg)
	}
	if err := qcfg.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	if err := fn.Initialize(maps, cfg.Sequential); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NoopLogger()
	}
	qopts = append(qopts,
		bucketqueue.WithIncreasing(fn.Increasing()),
		bucketqueue.WithLogger(log))
	if hasInf {
		qopts = append(qopts, bucketqueue.WithInfiniteValue(infWeight))
	}
	queue, err := bucketqueue.New(n, qopts...)
	if err != nil {
		return nil, err
	}

	r := &Runner[D]{
		maps:       maps,
		adj:        adj,
		fn:         fn,
		queue:      queue,
		seeds:      seeds,
		propagate:  fn.Propagate,
		resolution: cfg.Resolution,
		isFloat:    isFloat[D](),
		hasInf:     hasInf,
		inf:        inf,
		stopAt:     cfg.StopAt,
		stopWhen:   cfg.StopWhen,
		phase:      Unseeded,
		last:       -1,
		log:        log,
	}
	if cfg.Differential {
		r.propagate = fn.PropagateDifferential
	}
	return r, nil
}

// resolveSeeds merges explicit ids and seed sets, defaulting to every node.
func resolveSeeds(cfg Options, n int) (*roaring.Bitmap, error) {
	if cfg.Seeds == nil {
		seeds := roaring.New()
		if n > 0 {
			seeds.AddRange(0, uint64(n))
		}
		return seeds, nil
	}
	seeds := cfg.Seeds.Clone()
	for _, id := range cfg.seedIDs {
		if id < 0 || (n >= 0 && id >= n) || id > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d with %d nodes", ErrSeedOutOfRange, id, n)
		}
		seeds.AddInt(id)
	}
	if n >= 0 && !seeds.IsEmpty() && int(seeds.Maximum()) >= n {
		return nil, fmt.Errorf("%w: %d with %d nodes", ErrSeedOutOfRange, seeds.Maximum(), n)
	}
	return seeds, nil
}

// isFloat reports whether D truncates fractions.
func isFloat[D pathfn.Number]() bool {
	half := 0.5
	return D(half) != 0
}

// weight maps a value onto the queue's integer scale.
func (r *Runner[D]) weight(v D) (int64, error) {
	if r.hasInf && v == r.inf {
		return infWeight, nil
	}
	var w int64
	if !r.isFloat && r.resolution == 1 {
		w = int64(v)
	} else {
		f := math.Floor(float64(v) / r.resolution)
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v", ErrWeightOverflow, v)
		}
		w = int64(f)
	}
	if r.hasInf && w == infWeight {
		return 0, fmt.Errorf("%w: %v collides with the infinite slot", ErrWeightOverflow, v)
	}
	return w, nil
}

// seed queues every seed at its current value, in ascending id order.
func (r *Runner[D]) seed() (int, error) {
	it := r.seeds.Iterator()
	for it.HasNext() {
		id := int(it.Next())
		w, err := r.weight(r.maps.Value[id])
		if err != nil {
			return id, err
		}
		if err := r.queue.Insert(id, w); err != nil {
			return id, err
		}
	}
	return -1, nil
}

// Step performs one unit of work and reports whether the run is done.
// The first call queues the seeds before popping. After DONE, Step keeps
// returning true and the error that ended the run, if any.
func (r *Runner[D]) Step() (bool, error) {
	ctx := context.Background()

	switch r.phase {
	case Done:
		return true, r.err
	case Unseeded:
		if node, err := r.seed(); err != nil {
			return true, r.fail(ctx, node, err)
		}
		r.phase = Running
		r.log.LogRunStart(ctx, r.maps.Len(), int(r.seeds.GetCardinality()), r.fn.Increasing())
		if r.queue.Empty() {
			r.complete(ctx)
			return true, nil
		}
	}

	// 1) Pop the extremal node and settle it.
	v, err := r.queue.Remove()
	if err != nil {
		return true, r.fail(ctx, -1, err)
	}
	capable := r.fn.Remove(v, r.queue.State(v))
	r.queue.Finished(v)
	r.popped++
	r.last = v

	// 2) Offer its cost to every unsettled neighbor.
	if capable {
		size := r.adj.Size()
		for pos := 0; pos < size; pos++ {
			u, ok := r.adj.Neighbor(v, pos)
			if !ok {
				continue
			}
			st := r.queue.State(u)
			if st == bucketqueue.Removed || !r.fn.Capable(v, u, st) {
				continue
			}
			previous := r.maps.Value[u]
			if !r.propagate(v, u, pos) {
				continue
			}
			if err := r.move(u, st, previous); err != nil {
				return true, r.fail(ctx, u, err)
			}
		}
	}

	if r.finished() {
		r.complete(ctx)
		return true, nil
	}
	return false, nil
}

// move requeues u after its value changed from previous.
func (r *Runner[D]) move(u int, st bucketqueue.State, previous D) error {
	next, err := r.weight(r.maps.Value[u])
	if err != nil {
		return err
	}
	var cur int64
	if st.Queued() {
		if cur, err = r.weight(previous); err != nil {
			return err
		}
	}
	return r.queue.Update(u, cur, next)
}

// finished reports whether the queue is drained or a stop condition holds.
// It runs once per settled node, so stopWhen sees every node exactly once.
func (r *Runner[D]) finished() bool {
	if r.stopAt >= 0 && r.queue.State(r.stopAt) == bucketqueue.Removed {
		r.stopped = true
		return true
	}
	if r.stopWhen != nil && r.stopWhen(r.last) {
		r.stopped = true
		return true
	}
	return r.queue.Empty()
}

func (r *Runner[D]) complete(ctx context.Context) {
	r.phase = Done
	r.log.LogRunComplete(ctx, r.popped, r.stopped)
}

func (r *Runner[D]) fail(ctx context.Context, node int, err error) error {
	r.err = &RunError{Phase: r.phase, Node: node, Err: err}
	r.phase = Done
	r.log.LogRunFailed(ctx, node, err)
	return r.err
}

// Run steps until DONE and returns the error that ended the run, if any.
func (r *Runner[D]) Run() error {
	for {
		done, err := r.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Phase returns the current lifecycle phase.
func (r *Runner[D]) Phase() Phase { return r.phase }

// Popped returns how many nodes have been settled.
func (r *Runner[D]) Popped() int { return r.popped }

// Last returns the most recently settled node, or -1.
func (r *Runner[D]) Last() int { return r.last }

// StoppedEarly reports whether a stop condition ended the run before the
// queue drained.
func (r *Runner[D]) StoppedEarly() bool { return r.stopped }

// Seeds returns a copy of the seed set.
func (r *Runner[D]) Seeds() *roaring.Bitmap { return r.seeds.Clone() }

// Queue exposes the underlying queue for inspection (node states, bounds).
// Mutating it from outside corrupts the run.
func (r *Runner[D]) Queue() *bucketqueue.Queue { return r.queue }

// Maps returns the maps the run writes into.
func (r *Runner[D]) Maps() *pathfn.Maps[D] { return r.maps }
