package pathfn

import (
	"fmt"
	"math"
)

// Metric selects how the distance between two points or feature vectors is
// measured. It is a plain value handed to the policy constructor.
type Metric int

const (
	// Euclidean is the L2 norm of the difference.
	Euclidean Metric = iota
	// SquaredEuclidean is the squared L2 norm, cheaper and order-preserving.
	SquaredEuclidean
	// Manhattan is the L1 norm.
	Manhattan
	// Chebyshev is the L∞ norm.
	Chebyshev
)

// String implements fmt.Stringer.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case SquaredEuclidean:
		return "squared-euclidean"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Distance measures a against b over their common length.
func (m Metric) Distance(a, b []float64) float64 {
	n := min(len(a), len(b))
	var acc float64
	switch m {
	case Manhattan:
		for i := 0; i < n; i++ {
			acc += math.Abs(a[i] - b[i])
		}
		return acc
	case Chebyshev:
		for i := 0; i < n; i++ {
			acc = math.Max(acc, math.Abs(a[i]-b[i]))
		}
		return acc
	}
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		acc += d * d
	}
	if m == SquaredEuclidean {
		return acc
	}
	return math.Sqrt(acc)
}
