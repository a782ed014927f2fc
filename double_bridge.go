// Package ils - double-bridge perturbation operator.
//
// The double bridge cuts a tour into four segments and reconnects them in
// a different order. The resulting tour is structurally distant from the
// input: no single 2-opt reversal can undo the move, which is what makes
// it an effective escape from 2-opt local optima.
//
// Contracts:
//   - Input permutation is a bijection over [0..n); n >= 8 so the three
//     interior cuts stay strictly increasing with non-empty segments.
//   - Output is a fresh permutation over the same indices; the input is
//     never mutated.
//
// Complexity: O(n) time, O(n) space for the result.
package ils

import "math/rand"

// minPointsDoubleBridge is the smallest instance for which the three-way
// quarter-window split produces strictly increasing in-bounds cuts.
const minPointsDoubleBridge = 8

// DoubleBridge returns a new permutation recombined from four segments of
// the input.
//
// Algorithm: draw three cuts pos1 < pos2 < pos3, each offset by a uniform
// value within a quarter-length window; split into segments
// s1=[0..pos1) s2=[pos1..pos2) s3=[pos2..pos3) s4=[pos3..n); reassemble as
// s1 + s4 + s3 + s2.
//
// If rng==nil, the default deterministic stream (seed==0 policy) is used.
// For n < 8, returns ErrTooFewPoints.
func DoubleBridge(perm []int, rng *rand.Rand) ([]int, error) {
	var n int
	n = len(perm)
	if n < minPointsDoubleBridge {
		return nil, ErrTooFewPoints
	}

	var r *rand.Rand
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	// Quarter-window cuts: pos3 <= 3n/4 < n, so every segment is non-empty.
	var (
		q    int // quarter window length
		pos1 int // first cut
		pos2 int // second cut
		pos3 int // third cut
	)
	q = n / 4
	pos1 = 1 + r.Intn(q)
	pos2 = pos1 + 1 + r.Intn(q)
	pos3 = pos2 + 1 + r.Intn(q)

	// Reassemble s1 + s4 + s3 + s2 into a fresh slice.
	out := make([]int, 0, n)
	out = append(out, perm[:pos1]...)
	out = append(out, perm[pos3:]...)
	out = append(out, perm[pos2:pos3]...)
	out = append(out, perm[pos1:pos2]...)

	return out, nil
}
