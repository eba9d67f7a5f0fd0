package ift_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-ift/adjacency"
	"github.com/katalvlaran/lvlath-ift/ift"
	"github.com/katalvlaran/lvlath-ift/pathfn"
)

// ExampleRun floods a 1-D gradient from two markers. The ridge at node 3
// goes to the marker that reaches it first.
func ExampleRun() {
	gradient := []int{0, 1, 2, 5, 2, 1, 0}
	maps := pathfn.NewMaps[int](len(gradient), math.MaxInt, true, true)
	maps.Value[0], maps.Value[6] = 0, 0

	err := ift.Run(maps, adjacency.Path(len(gradient)), pathfn.NewMax(gradient),
		ift.WithSeeds(0, 6), ift.WithSequentialLabels())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("label:", maps.Label)
	fmt.Println("value:", maps.Value)
	// Output:
	// label: [0 0 0 0 1 1 1]
	// value: [0 1 2 5 2 1 0]
}

// ExampleRunner_Step drives a live-wire search by hand and stops at the target.
func ExampleRunner_Step() {
	const n = 6
	handicap := []int64{50, 1, 1, 1, 1, 1}
	maps := pathfn.NewMaps[int64](n, math.MinInt64, false, true)
	maps.Value[0] = 50

	r, err := ift.New(maps, adjacency.Path(n), pathfn.NewDiff(handicap),
		ift.WithSeeds(0), ift.WithStopAt(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		done, err := r.Step()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("settled", r.Last(), "phase", r.Phase())
		if done {
			break
		}
	}
	fmt.Println("value at target:", maps.Value[3])
	// Output:
	// settled 0 phase RUNNING
	// settled 1 phase RUNNING
	// settled 2 phase RUNNING
	// settled 3 phase DONE
	// value at target: 47
}
