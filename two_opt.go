// Package ils - stochastic 2-opt neighborhood operator.
//
// StochasticTwoOpt draws a single randomized neighbor of a tour by
// reversing one contiguous segment. The engine samples neighbors on
// demand instead of enumerating all O(n^2) 2-opt moves, trading
// completeness of the neighborhood scan for per-step speed.
//
// Contracts:
//   - Input permutation is a bijection over [0..n); n >= 4.
//   - Output is a fresh permutation over the same indices; the input is
//     never mutated.
//   - The reversed span always covers at least two elements, so the
//     output is structurally distinct from the input.
//
// Complexity: O(n) time (copy + reversal), O(n) space for the result.
package ils

import "math/rand"

// minPointsTwoOpt is the smallest instance the 2-opt cut exclusion logic
// supports without degenerating.
const minPointsTwoOpt = 4

// StochasticTwoOpt returns a new permutation with one randomly chosen
// contiguous segment reversed.
//
// Algorithm:
//  1. Draw a uniform cut c1 in [0..n).
//  2. Exclude c1 and its cyclic neighbors as the second cut: those choices
//     would reverse an empty or single-element span, recreating the input.
//  3. Rejection-sample c2 uniformly from [0..n) until it leaves the
//     exclusion set.
//  4. Order the cuts and reverse the half-open span [c1..c2).
//
// If rng==nil, the default deterministic stream (seed==0 policy) is used.
// For n < 4, returns ErrTooFewPoints.
func StochasticTwoOpt(perm []int, rng *rand.Rand) ([]int, error) {
	var n int
	n = len(perm)
	if n < minPointsTwoOpt {
		return nil, ErrTooFewPoints
	}

	var r *rand.Rand
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	out := clonePerm(perm)

	// First cut and its cyclic neighborhood.
	var (
		c1   int // first cut position
		c2   int // second cut position (rejection-sampled)
		prev int // cyclic predecessor of c1
		next int // cyclic successor of c1
	)
	c1 = r.Intn(n)
	prev = c1 - 1
	if c1 == 0 {
		prev = n - 1
	}
	next = c1 + 1
	if c1 == n-1 {
		next = 0
	}

	// Rejection sampling keeps the cut distribution uniform over the
	// admissible positions while consuming a single sequential stream.
	for {
		c2 = r.Intn(n)
		if c2 != c1 && c2 != prev && c2 != next {
			break
		}
	}

	// Lower cut first; with the exclusion set the ordered gap is >= 2,
	// so the reversed span holds at least two elements.
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	reverseSegmentInPlace(out, c1, c2)

	return out, nil
}
