package adjacency

import "errors"

// Enumerator yields the neighbors of a node by adjacency position.
type Enumerator interface {
	// Nodes returns the number of nodes the relation is defined over.
	Nodes() int
	// Size returns the number of adjacency positions to visit per node.
	Size() int
	// Neighbor returns the node at position pos around index, or false
	// when that position falls outside the domain.
	Neighbor(index, pos int) (int, bool)
}

// Sentinel errors for enumerator construction.
var (
	// ErrEmptyGrid indicates a grid with a zero or negative extent.
	ErrEmptyGrid = errors.New("adjacency: grid must have at least one cell along every axis")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("adjacency: all rows must have the same length")
	// ErrBadSpacing indicates a non-positive voxel spacing.
	ErrBadSpacing = errors.New("adjacency: spacing must be positive")
	// ErrBadNodeCount indicates a negative node count.
	ErrBadNodeCount = errors.New("adjacency: node count must be non-negative")
	// ErrEdgeOutOfRange indicates an edge endpoint outside [0, n).
	ErrEdgeOutOfRange = errors.New("adjacency: edge endpoint out of range")
)

// Connectivity selects the neighborhood of a grid cell.
type Connectivity int

const (
	// Conn4 uses the 4 orthogonal in-plane neighbors: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the in-plane diagonals.
	Conn8
	// Conn6 uses the 6 face neighbors of a voxel.
	Conn6
	// Conn26 uses every voxel sharing a face, edge or corner.
	Conn26
)

// GridOptions contains tunable parameters for a Grid.
type GridOptions struct {
	// Conn chooses the neighborhood.
	Conn Connectivity
	// Spacing is the physical size of a cell along x, y, z.
	Spacing [3]float64
}

// DefaultGridOptions returns Conn4 with unit spacing.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:    Conn4,
		Spacing: [3]float64{1, 1, 1},
	}
}
