// Package ils - per-iteration progress as a lazy sequence.
//
// Iterations exposes the outer loop's (iteration, best cost) pairs as a
// standard Go iterator. Producing the sequence cannot alter search
// outcomes: the iterator and Solve share one engine, and the observer
// hook is write-only from the search's point of view.
package ils

import "iter"

// Iterations returns a lazy, restartable, finite sequence of
// (iteration index, current global-best cost) pairs for the configured
// run. Indices are 0-based and the sequence holds at most
// opts.MaxIterations pairs.
//
// Properties:
//   - Restartable: each range re-runs the search from scratch; with a
//     fixed Options.Seed every pass yields identical pairs, and the final
//     pair's cost equals Solve's result on the same inputs.
//   - Lazy: breaking out of the range abandons the remaining iterations;
//     nothing is precomputed.
//   - Invalid configuration yields an empty sequence; use Solve to obtain
//     the sentinel error.
//
// Complexity: one full range costs the same as Solve.
func Iterations(points []Point, opts Options) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		// Outcome and error are deliberately dropped: this surface is
		// observability only. Solve reports both on the same inputs.
		_, _ = solveObserved(points, opts, yield)
	}
}
