// Package ils - embarrassingly parallel multi-start extension.
//
// SolveParallel runs Options.Restarts independent searches with
// decorrelated RNG substreams and keeps the cheapest result. The runs
// share nothing: the only ordering dependency is the final min-reduction,
// which breaks cost ties by the lowest restart index to stay
// deterministic for a fixed base seed.
package ils

import "golang.org/x/sync/errgroup"

// SolveParallel executes independent restarts of the configured algorithm
// concurrently and returns the best Solution across all of them.
//
// Determinism: restart seeds are derived upfront from Options.Seed via
// SplitMix64 mixing, so the set of runs - and therefore the reduced
// result - is identical across invocations regardless of scheduling.
//
// Restarts < 1 is treated as a single run. Validation errors surface
// before any goroutine starts.
func SolveParallel(points []Point, opts Options) (Solution, error) {
	// Fail fast once; workers re-validate but can no longer fail on shape.
	var err error
	if _, _, err = validateAll(points, opts); err != nil {
		return Solution{}, err
	}

	var restarts int
	restarts = opts.Restarts
	if restarts < 1 {
		restarts = 1
	}

	// Derive all substream seeds sequentially before launching so the
	// base stream is consumed in a fixed order.
	var (
		base  = rngFromSeed(opts.Seed)
		seeds = make([]int64, restarts)
		i     int
	)
	for i = 0; i < restarts; i++ {
		seeds[i] = deriveSeed(base.Int63(), uint64(i))
	}

	// Fan out one goroutine per restart; results land in fixed slots.
	var (
		g       errgroup.Group
		results = make([]Solution, restarts)
	)
	for i = 0; i < restarts; i++ {
		idx := i
		g.Go(func() error {
			var o Options
			o = opts
			o.Seed = seeds[idx]

			var (
				s    Solution
				serr error
			)
			s, serr = Solve(points, o)
			if serr != nil {
				return serr
			}
			results[idx] = s

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Solution{}, err
	}

	// Min-reduction; strict < keeps the lowest index on ties.
	var best Solution
	best = results[0]
	for i = 1; i < restarts; i++ {
		if results[i].Cost < best.Cost {
			best = results[i]
		}
	}

	return best, nil
}
