package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-ift/adjacency"
)

// ExampleGrid walks the 8-neighborhood of a corner pixel.
func ExampleGrid() {
	opts := adjacency.DefaultGridOptions()
	opts.Conn = adjacency.Conn8
	g, err := adjacency.NewGrid(3, 3, 1, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for pos := 0; pos < g.Size(); pos++ {
		if n, ok := g.Neighbor(0, pos); ok {
			x, y, _ := g.Coordinate(n)
			fmt.Printf("(%d,%d) ", x, y)
		}
	}
	fmt.Println()
	// Output: (1,0) (1,1) (0,1)
}
