// Package adjacency supplies the neighbor enumerators consumed by the IFT
// driver.
//
// What:
//
//   - Enumerator is the consumption contract: a node count, a number of
//     adjacency positions, and for (node, position) either a neighbor or
//     "no valid neighbor". The driver calls it afresh for every node it
//     settles; enumerators must be cheap and must not cache per call.
//   - Grid is an image lattice in 2D or 3D with 4/8 or 6/26 connectivity,
//     bounds-checked, with per-axis spacing for spatial policies.
//   - Graph is an explicit compressed sparse row adjacency built from edges.
//   - Complete links every node to every other one (clustering runs).
//   - Path is a 1-D chain.
//   - Components collects connected regions of a predicate over any Enumerator.
//
// Complexity:
//
//   - Neighbor: O(1) for every enumerator.
//   - NewGraph: O(V + E) time and memory.
//   - Components: O(V·Size()) time, O(V) memory.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadSpacing: grid construction.
//   - ErrEdgeOutOfRange, ErrBadNodeCount: graph construction.
package adjacency
