// Package forest reads and stores the optimum-path forests produced by the
// ift driver.
//
// What:
//
//   - Roots, RootOf, Trace and Depths walk a predecessor map (-1 marks a root).
//   - RootLabels and Boundaries are read-only passes split across workers over
//     disjoint node ranges; they join before returning.
//   - Encode and Decode snapshot pathfn.Maps, optionally LZ4 or ZSTD
//     compressed, so a forest can be reloaded for a differential run.
//
// A predecessor map that loops or points outside [0, n) is rejected with
// ErrCycle or ErrBadPredecessor; the walks never spin forever.
package forest
