package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-ift/adjacency"
)

// neighbors collects every valid neighbor of index in position order.
func neighbors(e adjacency.Enumerator, index int) []int {
	var out []int
	for pos := 0; pos < e.Size(); pos++ {
		if n, ok := e.Neighbor(index, pos); ok {
			out = append(out, n)
		}
	}
	return out
}

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h, d int
		opts    adjacency.GridOptions
		err     error
	}{
		{"ZeroWidth", 0, 2, 1, adjacency.DefaultGridOptions(), adjacency.ErrEmptyGrid},
		{"ZeroDepth", 2, 2, 0, adjacency.DefaultGridOptions(), adjacency.ErrEmptyGrid},
		{"BadSpacing", 2, 2, 1, adjacency.GridOptions{Spacing: [3]float64{1, 0, 1}}, adjacency.ErrBadSpacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := adjacency.NewGrid(tc.w, tc.h, tc.d, tc.opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromRows(t *testing.T) {
	_, _, err := adjacency.FromRows([][]int{}, adjacency.DefaultGridOptions())
	assert.ErrorIs(t, err, adjacency.ErrEmptyGrid)
	_, _, err = adjacency.FromRows([][]int{{1, 2}, {3}}, adjacency.DefaultGridOptions())
	assert.ErrorIs(t, err, adjacency.ErrNonRectangular)

	rows := [][]int{{1, 2, 3}, {4, 5, 6}}
	flat, g, err := adjacency.FromRows(rows, adjacency.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, flat)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 1, g.Depth)

	rows[0][0] = 100
	assert.Equal(t, 1, flat[0], "input is copied")
}

func TestGrid_Conn4Corners(t *testing.T) {
	g, err := adjacency.NewGrid(3, 2, 1, adjacency.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 6, g.Nodes())
	assert.Equal(t, 4, g.Size())

	// (0,0): E, S only.
	assert.Equal(t, []int{1, 3}, neighbors(g, 0))
	// (1,1): N, E, W.
	assert.Equal(t, []int{1, 5, 3}, neighbors(g, 4))

	_, ok := g.Neighbor(0, 99)
	assert.False(t, ok)
}

func TestGrid_Conn8(t *testing.T) {
	opts := adjacency.DefaultGridOptions()
	opts.Conn = adjacency.Conn8
	g, err := adjacency.NewGrid(3, 3, 1, opts)
	require.NoError(t, err)
	assert.Len(t, neighbors(g, 4), 8)
	assert.Len(t, neighbors(g, 0), 3)
}

func TestGrid_3D(t *testing.T) {
	opts := adjacency.GridOptions{Conn: adjacency.Conn26, Spacing: [3]float64{1, 2, 3}}
	g, err := adjacency.NewGrid(3, 3, 3, opts)
	require.NoError(t, err)
	assert.Equal(t, 26, g.Size())

	center := g.Index(1, 1, 1)
	assert.Equal(t, 13, center)
	assert.Len(t, neighbors(g, center), 26)
	assert.Len(t, neighbors(g, 0), 7)

	x, y, z := g.Coordinate(g.Index(2, 0, 1))
	assert.Equal(t, [3]int{2, 0, 1}, [3]int{x, y, z})
	assert.Equal(t, []float64{2, 0, 3}, g.Point(g.Index(2, 0, 1)))

	opts.Conn = adjacency.Conn6
	g6, err := adjacency.NewGrid(3, 3, 3, opts)
	require.NoError(t, err)
	assert.Len(t, neighbors(g6, center), 6)
	assert.ElementsMatch(t, []int{1, 3, 9}, neighbors(g6, 0))
}
