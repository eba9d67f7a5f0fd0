// Package lvlathift is an Image Foresting Transform engine: seed-driven,
// generalized multi-source Dijkstra over any adjacency, with a pluggable
// path-cost function and an integer bucket priority queue underneath.
//
// 🚀 What is lvlath-ift?
//
//	One driver, many image operators:
//		• Watershed segmentation: pathfn.Max over a gradient
//		• Distance transforms: pathfn.Geodesic over a grid
//		• Optimum-path-forest clustering: pathfn.FeatureDistance over a complete graph
//		• Live-wire contours: pathfn.Diff with a stop node
//		• Additive costs and hop distances: pathfn.Sum
//
// ✨ Why an IFT engine?
//
//   - Deterministic – FIFO ties and ascending seed order, same input ⇒ same forest
//   - Differential – recolor a stored forest without recomputing it
//   - Bounded – queue growth is logged, and capped with ErrQueueTooLarge
//
// Under the hood:
//
//	adjacency/   — grids (4/8/6/26-connected), CSR graphs, complete and path graphs
//	bucketqueue/ — circular bucket queue with an infinite slot and FIFO/LIFO ties
//	pathfn/      — the path-function contract, root hooks and the built-in policies
//	ift/         — the driver: seeding, Step/Run, stop conditions, run errors
//	forest/      — roots, traces, parallel passes and compressed snapshots
//	logging/     — slog wrapper shared by the queue and the driver
//
// Quick example (1-D watershed, two markers):
//
//	gradient: 0 1 2 5 2 1 0
//	label:    0 0 0 0 1 1 1
//
//	go get github.com/katalvlaran/lvlath-ift
package lvlathift
