// Package ils - unified dispatcher for the search variants.
//
// Solve is the single entry operation: validate the configuration, build
// the run's RNG stream, and route to the requested algorithm. The three
// variants share the same primitives (RandomPermutation, StochasticTwoOpt,
// DoubleBridge, LocalSearch, TourCost), so HillClimb and RandomSearch are
// genuinely degenerate cases of the ILS engine rather than separate code
// paths.
//
// Design principles:
//   - Deterministic: one sequential RNG stream per run, seeded from
//     Options.Seed; no time-based randomness.
//   - Strict sentinels: only errors from types.go.
//   - Observability without interference: the optional observer receives
//     (iteration, best cost) after each outer iteration and cannot alter
//     any search decision; see progress.go.
package ils

import "math/rand"

// observer receives the 0-based outer iteration index and the global-best
// cost after that iteration. Returning false abandons the remaining
// iterations (consumer-driven laziness); it never feeds back into the
// search decisions themselves.
type observer func(iteration int, bestCost float64) bool

// Solve validates points/opts and runs the configured algorithm to
// completion, returning the best Solution found.
//
// Errors: ErrInvalidBudget, ErrTooFewPoints, ErrUnsupportedAlgorithm.
// A run either fully completes or does not start; there is no partial
// failure and no retry semantics.
//
// Complexity: IteratedLocalSearch is
// O(MaxIterations * (improvements + MaxNoImprove) * n) time typical.
func Solve(points []Point, opts Options) (Solution, error) {
	return solveObserved(points, opts, nil)
}

// solveObserved is the shared engine behind Solve and Iterations.
// observe may be nil.
func solveObserved(points []Point, opts Options, observe observer) (Solution, error) {
	var (
		n      int
		metric Metric
		err    error
	)
	n, metric, err = validateAll(points, opts)
	if err != nil {
		return Solution{}, err
	}

	// One sequential stream per run keeps results reproducible and makes
	// best cost monotone in MaxIterations for a fixed seed.
	var rng *rand.Rand
	rng = rngFromSeed(opts.Seed)

	switch opts.Algo {
	case IteratedLocalSearch:
		return iteratedLocalSearch(points, n, metric, opts, rng, observe)
	case HillClimb:
		return hillClimb(points, n, metric, opts, rng, observe)
	case RandomSearch:
		return randomSearch(points, n, metric, opts, rng, observe)
	default:
		// validateOptions already filtered unknown values; kept for safety.
		return Solution{}, ErrUnsupportedAlgorithm
	}
}

// iteratedLocalSearch runs the two-level engine.
//
// State machine:
//   - INITIALIZING (once): random permutation -> evaluate -> LocalSearch
//     gives the initial global best.
//   - ITERATING (MaxIterations times): double-bridge the best, evaluate,
//     LocalSearch from the candidate, replace the best only on strict
//     improvement. No history beyond the single best is retained.
//
// Terminal: after the budget is exhausted, the global best is returned.
// No intrinsic early exit: a known-optimum cutoff belongs to callers.
func iteratedLocalSearch(points []Point, n int, metric Metric, opts Options, rng *rand.Rand, observe observer) (Solution, error) {
	// INITIALIZING: locally optimized random seed becomes the global best.
	var (
		perm []int
		cost float64
		best Solution
		err  error
	)
	perm, err = RandomPermutation(n, rng)
	if err != nil {
		return Solution{}, err
	}
	cost, err = TourCost(points, perm, metric)
	if err != nil {
		return Solution{}, err
	}
	best, err = LocalSearch(points, metric, Solution{Perm: perm, Cost: cost}, opts.MaxNoImprove, rng)
	if err != nil {
		return Solution{}, err
	}

	// ITERATING: perturb -> descend -> accept if strictly better.
	var (
		iter      int      // outer iteration counter
		perturbed []int    // double-bridge candidate permutation
		candidate Solution // locally optimized candidate
	)
	for iter = 0; iter < opts.MaxIterations; iter++ {
		perturbed, err = DoubleBridge(best.Perm, rng)
		if err != nil {
			return Solution{}, err
		}
		cost, err = TourCost(points, perturbed, metric)
		if err != nil {
			return Solution{}, err
		}
		candidate, err = LocalSearch(points, metric, Solution{Perm: perturbed, Cost: cost}, opts.MaxNoImprove, rng)
		if err != nil {
			return Solution{}, err
		}

		if candidate.Cost < best.Cost {
			best = candidate
		}

		if observe != nil && !observe(iter, best.Cost) {
			break
		}
	}

	return best, nil
}

// hillClimb runs single-level stochastic hill climbing over 2-opt
// neighbors for MaxIterations candidate draws. Lateral moves (equal cost)
// are accepted, and a positive TargetCost stops the climb early once
// reached - the documented divergences from the ILS inner loop.
func hillClimb(points []Point, n int, metric Metric, opts Options, rng *rand.Rand, observe observer) (Solution, error) {
	var (
		perm []int
		cost float64
		err  error
	)
	perm, err = RandomPermutation(n, rng)
	if err != nil {
		return Solution{}, err
	}
	cost, err = TourCost(points, perm, metric)
	if err != nil {
		return Solution{}, err
	}

	var best Solution
	best = Solution{Perm: perm, Cost: cost}

	var (
		iter     int
		neighbor []int
	)
	for iter = 0; iter < opts.MaxIterations; iter++ {
		neighbor, err = StochasticTwoOpt(best.Perm, rng)
		if err != nil {
			return Solution{}, err
		}
		cost, err = TourCost(points, neighbor, metric)
		if err != nil {
			return Solution{}, err
		}

		// Ties are accepted: lateral moves let the climb drift across
		// plateaus that strict descent would get stuck on.
		if cost <= best.Cost {
			best = Solution{Perm: neighbor, Cost: cost}
		}

		if observe != nil && !observe(iter, best.Cost) {
			break
		}
		if opts.TargetCost > 0 && best.Cost <= opts.TargetCost {
			break
		}
	}

	return best, nil
}

// randomSearch draws MaxIterations independent random permutations and
// keeps the strictly cheapest one. It is the baseline the local-search
// variants are measured against.
func randomSearch(points []Point, n int, metric Metric, opts Options, rng *rand.Rand, observe observer) (Solution, error) {
	var (
		perm []int
		cost float64
		err  error
	)
	perm, err = RandomPermutation(n, rng)
	if err != nil {
		return Solution{}, err
	}
	cost, err = TourCost(points, perm, metric)
	if err != nil {
		return Solution{}, err
	}

	var best Solution
	best = Solution{Perm: perm, Cost: cost}

	var iter int
	for iter = 0; iter < opts.MaxIterations; iter++ {
		perm, err = RandomPermutation(n, rng)
		if err != nil {
			return Solution{}, err
		}
		cost, err = TourCost(points, perm, metric)
		if err != nil {
			return Solution{}, err
		}

		if cost < best.Cost {
			best = Solution{Perm: perm, Cost: cost}
		}

		if observe != nil && !observe(iter, best.Cost) {
			break
		}
	}

	return best, nil
}
