package parallel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_CoversRangeOnce(t *testing.T) {
	for _, tc := range []struct{ n, workers int }{
		{0, 4}, {1, 4}, {7, 3}, {100, 1}, {100, 0}, {5, 50},
	} {
		hits := make([]int32, tc.n)
		err := For(context.Background(), tc.n, tc.workers, func(_ context.Context, lo, hi int) error {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
			return nil
		})
		require.NoError(t, err)
		for i, h := range hits {
			assert.EqualValues(t, 1, h, "n=%d workers=%d index=%d", tc.n, tc.workers, i)
		}
	}
}

func TestFor_SlicesAreContiguousAndDisjoint(t *testing.T) {
	var mu sync.Mutex
	var slices [][2]int
	require.NoError(t, For(context.Background(), 10, 3, func(_ context.Context, lo, hi int) error {
		mu.Lock()
		slices = append(slices, [2]int{lo, hi})
		mu.Unlock()
		return nil
	}))
	assert.ElementsMatch(t, [][2]int{{0, 4}, {4, 8}, {8, 10}}, slices)
}

func TestFor_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := For(context.Background(), 8, 4, func(_ context.Context, lo, _ int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestFor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := For(ctx, 4, 2, func(context.Context, int, int) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
