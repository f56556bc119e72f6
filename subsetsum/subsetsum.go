// Package subsetsum provides an implementation of the exhaustive subset-sum search.
// Subsets are indexed by bitmasks, one uint64 bit per input element.
package subsetsum

import "fmt"

// MaxLen is the largest input length Exhaustive accepts. One mask bit is
// spent per element, and the loop bound 1<<len must not overflow a uint64.
const MaxLen = 63

// Exhaustive searches for a non-empty subset of input whose elements sum to
// target. It returns the first matching subset in ascending bitmask order
// together with true, or (nil, false) when no subset matches. Elements of the
// returned subset keep their input order.
//
// Panics when input is empty or longer than MaxLen: both are programmer
// errors, not data conditions (see the package documentation).
//
// Steps:
//  1. Validate: 0 < len(input) <= MaxLen, otherwise panic.
//  2. Enumerate masks 1..(1<<n)-1 in ascending order; mask 0 is the empty
//     subset and is skipped, so a zero target still needs cancelling elements.
//  3. For each mask, collect the selected elements in input order into a
//     scratch slice and total them in one pass.
//  4. Return the candidate on the first exact hit; the scratch slice is not
//     reused afterwards, so it is handed to the caller as is.
//  5. Report (nil, false) once every mask has missed.
//
// Complexity: O(n·2^n) time (2^n-1 masks, O(n) scan per mask). Memory: O(n).
func Exhaustive(input []int, target int) ([]int, bool) {
	// 1. Validate the enumerable range.
	if len(input) == 0 {
		panic("subsetsum: Exhaustive requires a non-empty input")
	}
	if len(input) > MaxLen {
		panic(fmt.Sprintf("subsetsum: Exhaustive supports at most %d elements, got %d", MaxLen, len(input)))
	}

	// Scratch candidate, reused across masks until a hit detaches it.
	scratch := make([]int, 0, len(input))

	// 2. Ascending mask order makes the first hit deterministic.
	limit := uint64(1) << uint(len(input))
	for mask := uint64(1); mask < limit; mask++ {
		// 3. Materialize this subset and its total in a single pass.
		scratch = scratch[:0]
		sum := 0
		for j, v := range input {
			if mask&(uint64(1)<<uint(j)) == 0 {
				continue // element j not in this subset
			}
			scratch = append(scratch, v)
			sum += v
		}

		// 4. First exact hit wins.
		if sum == target {
			return scratch, true
		}
	}

	// 5. Exhausted all non-empty subsets without a hit.
	return nil, false
}
