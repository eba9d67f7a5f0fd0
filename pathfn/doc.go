// Package pathfn defines the path-function contract of the Image Foresting
// Transform and a set of reference policies.
//
// A path function decides, for a node just settled by the driver, whether
// and how its cost extends to a neighbor. Every policy implements
// PathFunction; the shared parts (map binding, root finalization hooks,
// sequential labels, label/predecessor propagation) live in Base, which
// concrete policies embed.
//
// Root hooks:
//
//   - RemoveSimple:      value only.
//   - RemovePredecessor: value, predecessor cleared to -1.
//   - RemoveLabel:       value, next sequential label.
//   - RemoveComplete:    value, label and predecessor.
//
// Initialize binds Remove to one of the four hooks from the maps supplied:
// label hooks need sequential labeling and a label map, predecessor hooks a
// predecessor map. Every hook acts only on Inserted nodes (seeds settling for
// the first time) and is a no-op otherwise.
//
// Reference policies:
//
//   - Sum:             additive handicap, minimum first.
//   - Max:             watershed f_max, minimum first; re-conquers own children.
//   - Diff:            live-wire subtraction, maximum first.
//   - Geodesic:        spatial path length over coordinates, minimum first.
//   - FeatureDistance: feature-space distance to the conquering node (OPF/Prim style).
//
// Each policy keeps its own Capable comparison; they are deliberately not
// derived from Increasing.
//
// Distances are computed by an explicit Metric value passed to the
// constructor: Euclidean, SquaredEuclidean, Manhattan or Chebyshev.
package pathfn
