package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-ift/adjacency"
)

func TestNewGraph(t *testing.T) {
	_, err := adjacency.NewGraph(-1, nil, false)
	assert.ErrorIs(t, err, adjacency.ErrBadNodeCount)
	_, err = adjacency.NewGraph(2, []adjacency.Edge{{0, 2}}, false)
	assert.ErrorIs(t, err, adjacency.ErrEdgeOutOfRange)

	edges := []adjacency.Edge{{0, 1}, {0, 2}, {2, 3}}
	und, err := adjacency.NewGraph(4, edges, false)
	require.NoError(t, err)
	assert.Equal(t, 4, und.Nodes())
	assert.Equal(t, 2, und.Size())
	assert.Equal(t, []int{1, 2}, neighbors(und, 0))
	assert.Equal(t, []int{0}, neighbors(und, 1))
	assert.Equal(t, []int{0, 3}, neighbors(und, 2))
	assert.Equal(t, []int{2}, neighbors(und, 3))

	dir, err := adjacency.NewGraph(4, edges, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, neighbors(dir, 0))
	assert.Empty(t, neighbors(dir, 1))
	assert.Equal(t, 0, dir.Degree(3))

	empty, err := adjacency.NewGraph(0, nil, true)
	require.NoError(t, err)
	assert.Zero(t, empty.Nodes())
	assert.Zero(t, empty.Size())
}

func TestComplete(t *testing.T) {
	c := adjacency.Complete(4)
	assert.Equal(t, 4, c.Nodes())
	assert.Equal(t, []int{0, 1, 3}, neighbors(c, 2))
}

func TestPath(t *testing.T) {
	p := adjacency.Path(3)
	assert.Equal(t, []int{1}, neighbors(p, 0))
	assert.Equal(t, []int{0, 2}, neighbors(p, 1))
	assert.Equal(t, []int{1}, neighbors(p, 2))
	_, ok := p.Neighbor(1, 2)
	assert.False(t, ok)
}

func TestComponents(t *testing.T) {
	rows := [][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{1, 0, 0, 0},
	}
	flat, g, err := adjacency.FromRows(rows, adjacency.DefaultGridOptions())
	require.NoError(t, err)
	land := func(i int) bool { return flat[i] >= 1 }

	comps := adjacency.Components(g, land)
	assert.Equal(t, [][]int{{0, 1, 5}, {3, 7}, {8}}, comps)

	label := make([]int, len(flat))
	assert.Equal(t, 3, adjacency.LabelComponents(g, land, label))
	assert.Equal(t, []int{1, 1, 0, 2, 0, 1, 0, 2, 3, 0, 0, 0}, label)

	opts := adjacency.DefaultGridOptions()
	opts.Conn = adjacency.Conn8
	_, g8, err := adjacency.FromRows(rows, opts)
	require.NoError(t, err)
	assert.Len(t, adjacency.Components(g8, land), 2)
}
