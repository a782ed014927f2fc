// Package ils - patience-bounded local search.
//
// LocalSearch hill-climbs from a seed solution to a 2-opt local optimum
// under a patience budget: it draws one stochastic neighbor at a time,
// keeps it only when strictly better, and stops after maxNoImprove
// consecutive non-improving draws.
//
// Design:
//   - Greedy, accept-only-if-strictly-better; ties are rejected (the
//     single-level HillClimb variant in solve.go is the one that allows
//     lateral moves).
//   - The seed is never mutated; the returned Solution is either the seed
//     pair itself or a strictly cheaper fresh pair.
//
// Complexity: O((improvements + maxNoImprove) * n) time.
package ils

import "math/rand"

// LocalSearch runs bounded-patience stochastic 2-opt descent from seed.
// A nil metric selects RoundedEuclidean; if rng==nil, the default
// deterministic stream (seed==0 policy) is used.
//
// Contract:
//   - maxNoImprove >= 1, else ErrInvalidBudget.
//   - len(seed.Perm) == len(points) >= 4, else ErrTooFewPoints /
//     ErrDimensionMismatch.
//   - seed.Cost must be the evaluated cost of seed.Perm; the loop relies
//     on it as the incumbent threshold.
//
// The returned Solution never costs more than the seed.
func LocalSearch(points []Point, metric Metric, seed Solution, maxNoImprove int, rng *rand.Rand) (Solution, error) {
	if maxNoImprove < 1 {
		return Solution{}, ErrInvalidBudget
	}
	if len(points) < minPointsTwoOpt {
		return Solution{}, ErrTooFewPoints
	}
	if len(seed.Perm) != len(points) {
		return Solution{}, ErrDimensionMismatch
	}

	// Incumbent owns its permutation: no aliasing with the caller's seed.
	var best Solution
	best = Solution{Perm: clonePerm(seed.Perm), Cost: seed.Cost}

	var (
		count    int     // consecutive non-improving draws
		neighbor []int   // candidate permutation from the 2-opt draw
		cost     float64 // candidate cost
		err      error
	)
	for count = 0; count < maxNoImprove; {
		neighbor, err = StochasticTwoOpt(best.Perm, rng)
		if err != nil {
			return Solution{}, err
		}
		cost, err = TourCost(points, neighbor, metric)
		if err != nil {
			return Solution{}, err
		}

		// Strict improvement resets the patience counter; anything else
		// burns one unit of patience.
		if cost < best.Cost {
			best = Solution{Perm: neighbor, Cost: cost}
			count = 0
		} else {
			count++
		}
	}

	return best, nil
}
