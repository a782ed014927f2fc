// Package ils - permutation utilities shared by operators and solvers.
//
// Tours are open permutations of [0..n): the closing edge back to the
// first city is implicit. All transformation operators return fresh
// slices; nothing in this file mutates caller-owned memory except the
// explicitly in-place reversal primitive used by 2-opt.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n) helpers, allocation only where the contract requires a copy.
package ils

// ValidatePermutation checks that perm is a bijection over {0..n-1} of
// length n. Operators preserve this invariant by construction; the check
// exists for tests and for debug assertions at API boundaries.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		c int // city index under inspection
	)
	for i = 0; i < n; i++ {
		c = perm[i]
		// Out-of-range or repeated index breaks the bijection contract.
		if c < 0 || c >= n {
			return ErrDimensionMismatch
		}
		if seen[c] {
			return ErrDimensionMismatch
		}
		seen[c] = true
	}

	return nil
}

// clonePerm returns an independent copy of perm. Every operator starts
// from a clone so candidate, current, and best tours never alias.
//
// Complexity: O(n) time, O(n) space.
func clonePerm(perm []int) []int {
	out := make([]int, len(perm))
	copy(out, perm)

	return out
}

// reverseSegmentInPlace reverses perm[lo..hi-1] (half-open span) in place.
// This is the 2-opt primitive; callers guarantee 0 <= lo < hi <= len(perm).
//
// Complexity: O(hi-lo) time, O(1) space.
func reverseSegmentInPlace(perm []int, lo, hi int) {
	var i, k int
	for i, k = lo, hi-1; i < k; i, k = i+1, k-1 {
		perm[i], perm[k] = perm[k], perm[i]
	}
}
