package forest_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-ift/forest"
)

func ExampleTrace() {
	pred := []int{-1, 0, 1, 1, -1, 4}
	path, err := forest.Trace(pred, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", path)
	fmt.Println("roots:", forest.Roots(pred).ToArray())
	// Output:
	// path: [0 1 3]
	// roots: [0 4]
}
