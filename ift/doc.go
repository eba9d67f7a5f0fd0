// Package ift implements the Image Foresting Transform driver: a seeded,
// policy-driven spanning-forest computation over dense node ids.
//
// What:
//
//   - The caller owns the value map (required), label and predecessor maps
//     (optional) and hands them over through pathfn.Maps.
//   - A pathfn.PathFunction decides costs; an adjacency.Enumerator yields
//     neighbors; the driver owns a bucketqueue.Queue ordered by the policy's
//     direction.
//   - Each step pops the extremal node, lets the policy finalize it when it
//     is a seed settling for the first time, marks it settled and offers its
//     cost to every unsettled neighbor the policy accepts.
//
// Lifecycle:
//
//	UNSEEDED ──Step──▶ RUNNING ──(queue empty | stop condition)──▶ DONE
//
// Guarantees:
//
//   - A settled node never changes again.
//   - Nodes settle in monotone order of the policy's cost (weights are
//     floor(value / Resolution), bucketed by Δ).
//   - Runs are deterministic: seeds are queued in ascending id order and
//     neighbors are offered in adjacency position order.
//
// Options:
//
//   - WithSeeds / WithSeedSet: seed nodes (default: every node).
//   - WithInfiniteValue: the "unreached" value, settled after everything else.
//   - WithSequentialLabels, WithDifferential.
//   - WithStopAt / WithStopWhen: early termination between steps.
//   - WithBucketSize, WithFIFO, WithResolution, WithGrowthLimits, WithLogger.
//
// Errors:
//
//   - New aggregates every configuration problem (ErrNilMaps, ErrNilAdjacency,
//     ErrNilPathFunction, ErrDimensionMismatch, ErrSeedOutOfRange,
//     ErrDifferentialMaps, ErrBadResolution, ErrInfiniteType) into one error;
//     test each with errors.Is.
//   - A run aborted by an invariant violation returns a *RunError wrapping the
//     queue sentinel or ErrWeightOverflow.
//
// Example usage:
//
//	maps := pathfn.NewMaps[int64](n, math.MaxInt64, true, true)
//	maps.Value[seed] = 0
//	err := ift.Run(maps, adjacency.Path(n), pathfn.NewSum(handicap),
//	    ift.WithSeeds(seed),
//	    ift.WithSequentialLabels(),
//	)
package ift
