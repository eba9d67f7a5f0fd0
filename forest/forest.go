package forest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvlath-ift/adjacency"
	"github.com/katalvlaran/lvlath-ift/internal/parallel"
)

var (
	// ErrBadPredecessor indicates a predecessor outside [-1, n).
	ErrBadPredecessor = errors.New("forest: predecessor out of range")
	// ErrCycle indicates a predecessor chain that never reaches a root.
	ErrCycle = errors.New("forest: predecessor map has a cycle")
	// ErrNodeOutOfRange indicates a query for a node outside [0, n).
	ErrNodeOutOfRange = errors.New("forest: node out of range")
	// ErrLabelSize indicates a label map that does not match the adjacency.
	ErrLabelSize = errors.New("forest: label map and adjacency sizes differ")
)

// Roots returns the nodes without a predecessor.
func Roots(pred []int) *roaring.Bitmap {
	roots := roaring.New()
	for i, p := range pred {
		if p < 0 {
			roots.AddInt(i)
		}
	}
	return roots
}

// RootOf follows pred from i to the root of its tree.
func RootOf(pred []int, i int) (int, error) {
	if i < 0 || i >= len(pred) {
		return -1, fmt.Errorf("%w: %d", ErrNodeOutOfRange, i)
	}
	for steps := 0; ; steps++ {
		p := pred[i]
		if p < 0 {
			return i, nil
		}
		if p >= len(pred) {
			return -1, fmt.Errorf("%w: pred[%d]=%d", ErrBadPredecessor, i, p)
		}
		if steps >= len(pred) {
			return -1, fmt.Errorf("%w: through node %d", ErrCycle, i)
		}
		i = p
	}
}

// Trace returns the optimum path ending at i, root first. This is the
// live-wire contour once the run stopped at i.
func Trace(pred []int, i int) ([]int, error) {
	if _, err := RootOf(pred, i); err != nil {
		return nil, err
	}
	var path []int
	for ; i >= 0; i = pred[i] {
		path = append(path, i)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, nil
}

// Depths returns every node's distance in edges from its root.
func Depths(pred []int) ([]int, error) {
	const unknown = -1
	depth := make([]int, len(pred))
	for i := range depth {
		depth[i] = unknown
	}
	var stack []int
	for i := range pred {
		// Walk up to a node of known depth, then unwind.
		j := i
		for depth[j] == unknown {
			p := pred[j]
			if p < 0 {
				depth[j] = 0
				break
			}
			if p >= len(pred) {
				return nil, fmt.Errorf("%w: pred[%d]=%d", ErrBadPredecessor, j, p)
			}
			if len(stack) > len(pred) {
				return nil, fmt.Errorf("%w: through node %d", ErrCycle, i)
			}
			stack = append(stack, j)
			j = p
		}
		for k := len(stack) - 1; k >= 0; k-- {
			depth[stack[k]] = depth[pred[stack[k]]] + 1
		}
		stack = stack[:0]
	}
	return depth, nil
}

// RootLabels labels every node with the id of its root, using up to workers
// goroutines (<= 0 means GOMAXPROCS).
func RootLabels(ctx context.Context, pred []int, workers int) ([]int, error) {
	label := make([]int, len(pred))
	err := parallel.For(ctx, len(pred), workers, func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			root, err := RootOf(pred, i)
			if err != nil {
				return err
			}
			label[i] = root
		}
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}
	return label, nil
}

// Boundaries returns the nodes with at least one adjacent node of a
// different label: the region contours of a segmentation.
func Boundaries(ctx context.Context, label []int, adj adjacency.Enumerator, workers int) (*roaring.Bitmap, error) {
	if adj.Nodes() != len(label) {
		return nil, fmt.Errorf("%w: label=%d adjacency=%d", ErrLabelSize, len(label), adj.Nodes())
	}

	var mu sync.Mutex
	result := roaring.New()
	size := adj.Size()
	err := parallel.For(ctx, len(label), workers, func(ctx context.Context, lo, hi int) error {
		local := roaring.New()
		for i := lo; i < hi; i++ {
			for pos := 0; pos < size; pos++ {
				j, ok := adj.Neighbor(i, pos)
				if ok && label[j] != label[i] {
					local.AddInt(i)
					break
				}
			}
		}
		mu.Lock()
		result.Or(local)
		mu.Unlock()
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
