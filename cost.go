// Package ils - tour cost evaluation.
//
// Design:
//   - Pure accumulation over consecutive permutation pairs with an implicit
//     wrap from the last city back to the first (closed tour).
//   - Strict sentinels from types.go on any shape violation; solvers
//     validate upfront, but the evaluator still guards against misuse.
//   - Stable summation: results are rounded to 1e-9 to avoid
//     cross-platform FP noise when a non-integral Metric is plugged in.
//
// Complexity:
//   - O(n) time for n cities, O(1) extra space.
package ils

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourCost sums metric costs around the closed tour encoded by perm over
// points: edges perm[i] -> perm[i+1] for i < n-1, plus perm[n-1] -> perm[0].
// A nil metric selects RoundedEuclidean.
//
// Contract:
//   - len(perm) == len(points) >= 2; every index within [0..n).
//   - Violations return ErrDimensionMismatch (a programming defect upstream).
//
// Deterministic and pure; the result is always >= 0 for a valid Metric.
//
// Complexity: O(n).
func TourCost(points []Point, perm []int, metric Metric) (float64, error) {
	var n int
	n = len(points)
	if n < 2 || len(perm) != n {
		return 0, ErrDimensionMismatch
	}

	var m Metric
	m = metric
	if m == nil {
		m = RoundedEuclidean
	}

	var (
		sum float64 // running total around the cycle
		i   int     // edge index
		u   int     // tail city of the current edge
		v   int     // head city of the current edge
	)
	for i = 0; i < n; i++ {
		u = perm[i]
		v = perm[(i+1)%n] // wrap: the tour is closed

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}

		sum += m(points[u], points[v])
	}

	return round1e9(sum), nil
}
