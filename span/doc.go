// Package span provides the summed span: an immutable view of a non-empty,
// contiguous half-open range inside a caller-owned integer sequence, carrying
// the precomputed sum of the elements it covers.
//
// Overview:
//
//   - A Span identifies the elements data[begin:end) of some []int sequence
//     by position only. Like slicing in Go and ranges in the standard library,
//     the range is half-open: begin is included, end is not, and begin < end
//     always holds (a span is never empty).
//   - The sum over the range is computed once, at construction, and cached.
//     Algorithms that already know the sum (for example a merge step adding
//     two half-sums) construct in O(1) via New; everyone else uses Over,
//     which sums the range in O(end-begin).
//   - A Span does not own or retain the sequence it was built over. It stores
//     positions, not data, so it stays cheap to copy and compare. The cached
//     sum is only meaningful while the sequence is unchanged; callers must
//     not mutate the sequence while spans over it are in use.
//
// Equality:
//
//	Two spans are equal exactly when their begin and end positions are equal.
//	The sum is never compared: over a fixed sequence it is fully determined
//	by the positions. Use Equal, not ==, so that intent stays explicit.
//
// Contract:
//
//   - begin < end is a hard precondition of both constructors. Violating it
//     is a programmer error and panics; it is not a recoverable condition.
//   - Over additionally requires 0 ≤ begin and end ≤ len(data).
//   - The zero value Span{} describes the empty range [0,0) and is therefore
//     not a valid span; always construct through New or Over.
//
// Performance:
//
//   - New:   O(1)
//   - Over:  O(end-begin)
//   - Size, Sum, Begin, End, Equal: O(1)
//
// See example_test.go for usage.
package span
