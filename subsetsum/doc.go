// Package subsetsum provides an exhaustive solver for the Subset Sum Problem
// on an integer sequence: find a non-empty subset (not necessarily contiguous)
// whose elements total exactly a requested target.
//
// What & Why
//
//   - What is subset sum?
//     Given a sequence a[0..n) and a target t, decide whether some non-empty
//     subset of the elements sums to t, and report one such subset. The empty
//     subset never counts, so a target of 0 still requires real elements that
//     cancel out.
//
//   - Why exhaustive?
//     Subset sum is NP-complete, and for teaching-scale inputs the bitmask
//     enumeration is the clearest possible oracle: every subset corresponds to
//     one mask, nothing is pruned, nothing is approximated. The
//     pseudo-polynomial dynamic-programming variant is a different algorithm
//     with different reach and is intentionally not part of this package.
//
// Determinism
//
//	Subsets are enumerated as uint64 bitmasks in ascending numeric order,
//	bit j representing input[j]. The first subset that hits the target wins,
//	so for a fixed input and target the reported subset never changes between
//	runs. Elements inside the reported subset keep their input order.
//
// Contract
//
//	Exhaustive panics on an empty input and on inputs longer than MaxLen (63):
//	one mask bit is spent per element, so longer inputs cannot be enumerated
//	with a uint64 mask, and at 2^63 subsets the search would outlive the
//	hardware anyway. Absence of a matching subset is not an error; it is
//	reported through the boolean half of the comma-ok return.
//
// GoDoc Summary
//
//   - Exhaustive(input []int, target int) ([]int, bool)
//     Try all 2^n - 1 non-empty subsets in ascending mask order; first exact
//     hit wins. Complexity: O(n·2^n) time, O(n) memory.
//
// For examples of usage, see the example_test.go file in this package.
package subsetsum
