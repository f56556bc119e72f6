// Package maxsubarray provides two classic algorithms for the Maximum Subarray Problem
// on an integer sequence: exhaustive search and divide-and-conquer.
//
// What & Why
//
//   - What is a maximum subarray?
//     Given a sequence of integers a[0..n), a maximum subarray is a contiguous, non-empty
//     range [b, e) whose element total is at least as large as the total of every other
//     contiguous range. The answer is reported as a span.Span carrying the range bounds
//     and the winning sum.
//
//   - Why it matters:
//
//   - Canonical teaching problem: the same task solved at O(n^3) and O(n log n) makes the
//     cost of asymptotic complexity tangible on real inputs.
//
//   - Signal analysis: the maximum-sum window of a gain/loss series is the most profitable
//     trading window, the hottest stretch of a load series, the densest burst in a log.
//
//   - Building block: crossing-range scans reappear in segment trees and in other
//     divide-and-conquer range computations.
//
// Algorithms Provided
//
//   - Exhaustive(input []int) span.Span
//
//   - Strategy: Enumerate every candidate range [i, j) with i < j and sum each one from
//     scratch, keeping the first candidate whose sum strictly beats the best so far.
//     Candidates are visited in ascending (i, j) order, so ties resolve to the
//     leftmost-then-shortest winner.
//
//   - Complexity:
//
//   - Time: O(n^3) because there are O(n^2) ranges and each fresh summation costs O(n).
//
//   - Space: O(1) beyond the input; only the current best span is retained.
//
//   - DivideAndConquer(input []int) span.Span
//
//   - Strategy: Split the sequence at the midpoint, solve both halves recursively, and
//     compute the best range that straddles the cut by growing one arm leftward from the
//     midpoint and one arm rightward from the element after it. The best of the three
//     candidates wins.
//
//   - Complexity:
//
//   - Time: O(n log n) from the recurrence T(n) = 2T(n/2) + O(n).
//
//   - Space: O(log n) recursion stack; no auxiliary arrays.
//
// When to Choose Which Algorithm
//
//   - Exhaustive (O(n^3))
//
//   - Preferred as a correctness oracle: the triple loop is short enough to audit by eye,
//     which makes it the reference the faster algorithm is tested against.
//
//   - Acceptable for small n (hundreds of elements) where clarity beats speed.
//
//   - DivideAndConquer (O(n log n))
//
//   - Preferred for real workloads; the asymptotic gap dominates already at a few
//     thousand elements.
//
//   - Note that the two algorithms may legitimately disagree when ranges tie on sum:
//     the reported ranges can differ, and when the crossing and left candidates of a
//     combine step tie while both beat the right, the kept right half carries a sum
//     below the exhaustive maximum (see Determinism below).
//
// Contract & Error Conditions
//
//	Both algorithms treat an empty input as a programmer error and panic, mirroring the
//	out-of-range panics of package span: there is no non-empty range to report, and a
//	recoverable error would force every caller to thread an impossible case.
//
//	The optional Compute dispatcher returns a sentinel error instead of panicking when the
//	configured method name is unknown, because the method often arrives from configuration
//	rather than from code:
//
//	- ErrUnknownMethod
//	    - opts.Method is neither MethodExhaustive nor MethodDivideAndConquer.
//
// Determinism
//
//	Both algorithms are fully deterministic. Exhaustive keeps the first best candidate in
//	ascending (i, j) order. DivideAndConquer resolves ties between its three candidates in
//	a fixed order: the crossing range wins only when strictly greater than both halves,
//	then the left half wins only when strictly greater than the other two, otherwise the
//	right half is kept. The strictness cuts both ways: when the crossing and left
//	candidates tie and both beat the right, neither wins and the right half is kept even
//	though its sum is smaller. On {2, -1, 1, -5} the crossing [0,3) and the left [0,1)
//	both sum to 2, so DivideAndConquer reports [2,3) with sum 1 while Exhaustive reports
//	the maximum 2. Inputs whose range sums are pairwise distinct are immune.
//
// GoDoc Summary
//
//   - Exhaustive(input []int) span.Span
//     Scan all O(n^2) ranges with fresh O(n) summations; first strict improvement wins.
//
//   - DivideAndConquer(input []int) span.Span
//     Recursive halving with a linear crossing scan at each level.
//
//   - Compute(input []int, opts ...Option) (span.Span, error)
//     Run the algorithm selected by WithMethod; defaults to divide-and-conquer.
//
// For examples of usage, see the example_test.go file in this package.
package maxsubarray
