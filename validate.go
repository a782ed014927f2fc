// Package ils - validation utilities shared by all solvers.
//
// Design principles:
//   - Fail fast: every check runs before any search state is created.
//   - Never clamp silently: out-of-range knobs are rejected, not repaired.
//   - Deterministic, side-effect free; only sentinel errors from types.go.
package ils

// validateAll verifies Options and the instance together. It returns the
// instance size n and the resolved metric on success.
//
// Contract:
//   - Budgets are positive integers.
//   - The instance holds at least 4 points (2-opt engines) or 8 points
//     when the double bridge is in play (IteratedLocalSearch).
//
// Complexity: O(1).
func validateAll(points []Point, opts Options) (int, Metric, error) {
	var err error

	// Stage 1: Options-only sanity.
	if err = validateOptions(opts); err != nil {
		return 0, nil, err
	}

	// Stage 2: instance size against the operators the algorithm uses.
	var n int
	n = len(points)
	if n < minPointsFor(opts.Algo) {
		return 0, nil, ErrTooFewPoints
	}

	// Stage 3: resolve the metric default.
	var m Metric
	m = opts.Metric
	if m == nil {
		m = RoundedEuclidean
	}

	return n, m, nil
}

// validateOptions checks internal consistency of Options without touching
// the instance.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Budgets drive loop termination; non-positive values are rejected
	// rather than clamped.
	if opts.MaxIterations < 1 {
		return ErrInvalidBudget
	}
	if opts.MaxNoImprove < 1 {
		return ErrInvalidBudget
	}
	// A negative target cost can never be reached (costs are >= 0).
	if opts.TargetCost < 0 {
		return ErrInvalidBudget
	}

	switch opts.Algo {
	case IteratedLocalSearch, HillClimb, RandomSearch:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// minPointsFor reports the smallest instance the chosen algorithm's
// operators support: the double bridge raises the bar to 8.
//
// Complexity: O(1).
func minPointsFor(algo Algorithm) int {
	if algo == IteratedLocalSearch {
		return minPointsDoubleBridge
	}

	return minPointsTwoOpt
}
