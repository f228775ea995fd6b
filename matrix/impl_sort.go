// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/numeric"
)

// SortPermutation reorders perm so that keys[perm[0]] ≤ keys[perm[1]] ≤ ...
// The keys slice is only read: callers keep addressing their data by the
// original indices while perm carries the sorted order.
//
// Implementation:
//   - Recursive quicksort on perm with a median-of-three pivot value drawn
//     from the first, middle and last positions of the current range.
//   - Hoare partition; the median-of-three step guarantees the inner scans
//     stay inside the range.
//
// Behavior highlights:
//   - Not stable: equal keys may come out in either relative order.
//   - Zero- and one-element ranges are the base case.
//
// Errors:
//   - ErrOutOfRange when some perm[i] is not a valid index into keys.
//
// Complexity:
//   - Time O(n log n) expected, O(n²) worst; Space O(log n) expected stack.
func SortPermutation[T numeric.Value[T]](perm []int, keys []T) error {
	for i, p := range perm {
		if !inRange(p, len(keys)) {
			return matrixErrorf(opSort, fmt.Errorf("perm[%d]=%d: %w", i, p, ErrOutOfRange))
		}
	}
	quickPerm(perm, keys, 0, len(perm)-1)

	return nil
}

// quickPerm sorts perm[lo..hi] (inclusive) by keys.
func quickPerm[T numeric.Value[T]](perm []int, keys []T, lo, hi int) {
	if hi-lo < 1 {
		return
	}
	less := func(a, b int) bool { return keys[perm[a]].Cmp(keys[perm[b]]) < 0 }
	mid := lo + (hi-lo)/2

	// Median of three: afterwards keys at lo ≤ mid ≤ hi.
	if less(mid, lo) {
		perm[mid], perm[lo] = perm[lo], perm[mid]
	}
	if less(hi, lo) {
		perm[hi], perm[lo] = perm[lo], perm[hi]
	}
	if less(hi, mid) {
		perm[hi], perm[mid] = perm[mid], perm[hi]
	}
	pivot := keys[perm[mid]]

	i, j := lo, hi
	for i <= j {
		for keys[perm[i]].Cmp(pivot) < 0 {
			i++
		}
		for pivot.Cmp(keys[perm[j]]) < 0 {
			j--
		}
		if i <= j {
			perm[i], perm[j] = perm[j], perm[i]
			i++
			j--
		}
	}

	if lo < j {
		quickPerm(perm, keys, lo, j)
	}
	if i < hi {
		quickPerm(perm, keys, i, hi)
	}
}
