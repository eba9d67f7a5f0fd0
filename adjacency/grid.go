package adjacency

import "fmt"

// Grid is a row-major image lattice: index = z*Width*Height + y*Width + x.
// It is immutable once built.
type Grid struct {
	Width, Height, Depth int
	Conn                 Connectivity
	spacing              [3]float64
	offsets              [][3]int
}

// NewGrid builds a lattice of width×height×depth cells. Use depth 1 for 2D
// images. Returns ErrEmptyGrid for a zero extent and ErrBadSpacing for a
// non-positive spacing.
func NewGrid(width, height, depth int, opts GridOptions) (*Grid, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrEmptyGrid, width, height, depth)
	}
	for axis, s := range opts.Spacing {
		if s <= 0 {
			return nil, fmt.Errorf("%w: axis %d spacing %g", ErrBadSpacing, axis, s)
		}
	}
	return &Grid{
		Width:   width,
		Height:  height,
		Depth:   depth,
		Conn:    opts.Conn,
		spacing: opts.Spacing,
		offsets: neighborOffsets(opts.Conn),
	}, nil
}

// FromRows flattens a rectangular 2D slice into a row-major slice and the
// matching Grid. The input is copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows[T any](rows [][]T, opts GridOptions) ([]T, *Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	flat := make([]T, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}
	g, err := NewGrid(w, h, 1, opts)
	if err != nil {
		return nil, nil, err
	}
	return flat, g, nil
}

// neighborOffsets lists displacements in a fixed clockwise-then-depth order
// so that runs are reproducible.
func neighborOffsets(conn Connectivity) [][3]int {
	switch conn {
	case Conn8:
		return [][3]int{{0, -1, 0}, {1, -1, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0}}
	case Conn6:
		return [][3]int{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, 0, -1}, {0, 0, 1}}
	case Conn26:
		offsets := make([][3]int, 0, 26)
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx != 0 || dy != 0 || dz != 0 {
						offsets = append(offsets, [3]int{dx, dy, dz})
					}
				}
			}
		}
		return offsets
	default:
		return [][3]int{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0}}
	}
}

// Nodes returns Width*Height*Depth.
func (g *Grid) Nodes() int { return g.Width * g.Height * g.Depth }

// Size returns the number of neighbor displacements.
func (g *Grid) Size() int { return len(g.offsets) }

// InBounds reports whether (x,y,z) lies within the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && z >= 0 && z < g.Depth
}

// Index maps (x,y,z) to its row-major index.
func (g *Grid) Index(x, y, z int) int {
	return (z*g.Height+y)*g.Width + x
}

// Coordinate converts a row-major index back to (x,y,z).
func (g *Grid) Coordinate(idx int) (x, y, z int) {
	plane := g.Width * g.Height
	z = idx / plane
	rem := idx % plane
	return rem % g.Width, rem / g.Width, z
}

// Neighbor applies displacement pos to index, rejecting moves that leave
// the lattice.
func (g *Grid) Neighbor(index, pos int) (int, bool) {
	if pos < 0 || pos >= len(g.offsets) {
		return -1, false
	}
	x, y, z := g.Coordinate(index)
	d := g.offsets[pos]
	nx, ny, nz := x+d[0], y+d[1], z+d[2]
	if !g.InBounds(nx, ny, nz) {
		return -1, false
	}
	return g.Index(nx, ny, nz), true
}

// Point returns the physical position of index, scaled by the spacing.
// 2D grids still report a zero z coordinate.
func (g *Grid) Point(index int) []float64 {
	x, y, z := g.Coordinate(index)
	return []float64{
		float64(x) * g.spacing[0],
		float64(y) * g.spacing[1],
		float64(z) * g.spacing[2],
	}
}
