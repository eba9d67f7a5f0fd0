package bucketqueue_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-ift/bucketqueue"
)

// ExampleQueue shows minimum-first removal with FIFO ties.
func ExampleQueue() {
	q, err := bucketqueue.New(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = q.Insert(0, 30)
	_ = q.Insert(1, 10)
	_ = q.Insert(2, 10)
	_ = q.Insert(3, 20)

	for !q.Empty() {
		id, _ := q.Remove()
		q.Finished(id)
		fmt.Print(id, " ")
	}
	fmt.Println()
	// Output: 1 2 3 0
}

// ExampleQueue_Update shows a decreasing queue where one element is raised
// and an infinite-weight element waits for everything else.
func ExampleQueue_Update() {
	q, _ := bucketqueue.New(3,
		bucketqueue.WithIncreasing(false),
		bucketqueue.WithInfiniteValue(math.MinInt64))
	_ = q.Insert(0, 5)
	_ = q.Insert(1, math.MinInt64)
	_ = q.Insert(2, 7)
	_ = q.Update(0, 5, 9)

	for !q.Empty() {
		id, _ := q.Remove()
		fmt.Printf("%d:%s ", id, q.State(id))
		q.Finished(id)
	}
	fmt.Println()
	// Output: 0:UPDATED 2:INSERTED 1:INSERTED
}
