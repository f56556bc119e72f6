// Package maxsubarray provides an implementation of the exhaustive maximum-subarray search.
// It examines every contiguous range of the input and keeps the one with the largest sum.
package maxsubarray

import (
	"github.com/rtnguyen95/335-Project-2-from-Windows/span"
)

// Exhaustive computes a maximum subarray of input by brute force.
// Every candidate range [i, j) with i < j is summed from scratch through span.Over,
// so no running total is ever reused between candidates.
//
// Panics when input is empty: a non-empty sequence is a precondition, not a
// recoverable condition (see the package documentation).
//
// Steps:
//  1. Validate: len(input) > 0, otherwise panic.
//  2. Seed the best span with the leftmost single-element range [0, 1).
//  3. For each start i in [0, n) and each end j in (i, n], build span.Over(input, i, j)
//     and replace the best span only on a strictly greater sum. Strict comparison keeps
//     the earliest candidate in ascending (i, j) order when several ranges tie.
//  4. Return the surviving best span.
//
// Complexity: O(n^3) time (O(n^2) ranges, O(n) per summation). Memory: O(1).
func Exhaustive(input []int) span.Span {
	// 1. Validate that there is at least one element to form a range over.
	if len(input) == 0 {
		panic("maxsubarray: Exhaustive requires a non-empty input")
	}

	// 2. Seed with [0,1); every non-empty input has this range, so the loop below
	//    never needs a sentinel sum.
	best := span.Over(input, 0, 1)

	// 3. Enumerate all candidate ranges in ascending (i, j) order.
	n := len(input)
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			// Each candidate is summed fresh; nothing is carried between iterations.
			cand := span.Over(input, i, j)
			// Strictly greater only: ties keep the earlier candidate.
			if cand.Sum() > best.Sum() {
				best = cand
			}
		}
	}

	// 4. The survivor is a maximum subarray.
	return best
}
