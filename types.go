// Package ils - shared types and strict sentinel errors.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors declared here.
//   - Configuration is a plain Options struct; DefaultOptions returns the
//     canonical knobs used across docs and tests.
//   - Solution pairs a permutation with the cost evaluated on that exact
//     permutation; solvers never mutate a published Solution.
package ils

import "errors"

var (
	// ErrTooFewPoints is returned when the instance is smaller than the
	// configured operators require (4 for 2-opt, 8 for double-bridge).
	ErrTooFewPoints = errors.New("ils: too few points for the configured operators")

	// ErrInvalidBudget is returned when an iteration or patience budget is
	// non-positive, or another numeric knob is out of range.
	ErrInvalidBudget = errors.New("ils: budgets must be positive")

	// ErrUnsupportedAlgorithm is returned for an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("ils: unsupported algorithm")

	// ErrDimensionMismatch signals an input shape violation: permutation and
	// point list of different lengths, out-of-range indices, or a broken
	// bijection. It marks a programming defect, not a recoverable state.
	ErrDimensionMismatch = errors.New("ils: dimension mismatch")
)

// Point is an immutable 2D coordinate pair. Points are identified by their
// index in the instance slice and are never mutated after load.
type Point struct {
	X float64
	Y float64
}

// Solution pairs a tour permutation with its evaluated cost.
//
// Invariants:
//   - Perm is a bijection over [0..n): every index appears exactly once.
//   - Cost is TourCost of Perm at pairing time; a Solution is never updated
//     in place - improvement produces a fresh Solution.
type Solution struct {
	// Perm is the open tour: Perm[len-1] implicitly connects back to Perm[0].
	Perm []int

	// Cost is the total closed-tour distance, always >= 0.
	Cost float64
}

// Algorithm selects the search variant run by Solve.
type Algorithm int

const (
	// IteratedLocalSearch is the full two-level engine:
	// random seed -> local search -> (double-bridge -> local search)* loop.
	IteratedLocalSearch Algorithm = iota

	// HillClimb is single-level stochastic hill climbing over 2-opt
	// neighbors. Unlike the ILS inner loop it accepts equal-cost neighbors
	// (lateral moves) and honors Options.TargetCost for early exit.
	HillClimb

	// RandomSearch draws independent random permutations and keeps the best.
	RandomSearch
)

// Options carries the configuration for all solvers.
// Zero value is not valid; start from DefaultOptions.
type Options struct {
	// Algo selects the search variant (default IteratedLocalSearch).
	Algo Algorithm

	// MaxIterations is the outer iteration budget. Must be >= 1.
	// For HillClimb and RandomSearch it is the total candidate budget.
	MaxIterations int

	// MaxNoImprove is the inner patience budget: the number of consecutive
	// non-improving 2-opt draws tolerated before a local search stops.
	// Must be >= 1.
	MaxNoImprove int

	// Seed drives the single sequential RNG stream of a run.
	// Policy: 0 selects a fixed internal default; same seed => identical run.
	Seed int64

	// Metric is the pairwise distance function. nil selects RoundedEuclidean.
	Metric Metric

	// Restarts is the number of independent runs executed by SolveParallel.
	// Values < 1 are treated as 1. Ignored by Solve.
	Restarts int

	// TargetCost, when > 0, lets HillClimb stop early once the best cost
	// reaches the target (useful when the instance optimum is known).
	// Ignored by the other algorithms: early exit is not intrinsic to ILS.
	TargetCost float64
}

// DefaultOptions returns the canonical configuration: the full ILS engine
// with the benchmark budgets used throughout the documentation.
func DefaultOptions() Options {
	return Options{
		Algo:          IteratedLocalSearch,
		MaxIterations: 100,
		MaxNoImprove:  50,
		Seed:          0,
		Metric:        nil, // RoundedEuclidean
		Restarts:      1,
		TargetCost:    0,
	}
}
