// Package ils - pairwise distance metrics.
//
// A Metric is a pure function of two points; it carries no state and has
// no error conditions (inputs are always well-formed coordinates).
package ils

import "math"

// Metric computes the cost of travelling between two points.
// Implementations must be deterministic, side-effect free, and >= 0.
type Metric func(a, b Point) float64

// RoundedEuclidean is the TSPLIB EUC_2D metric: the Euclidean distance
// rounded to the nearest integer. The rounding is deliberate - it is what
// makes documented benchmark optima (Berlin52: 7542) reproducible; an
// unrounded metric yields different totals.
//
// Complexity: O(1).
func RoundedEuclidean(a, b Point) float64 {
	return math.Round(math.Hypot(a.X-b.X, a.Y-b.Y))
}

// Euclidean is the plain (unrounded) Euclidean distance, for callers that
// want exact geometry instead of benchmark-compatible totals.
//
// Complexity: O(1).
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
