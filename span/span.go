package span

import "fmt"

// Span is a non-empty half-open range [begin, end) over a caller-owned
// integer sequence, together with the cached sum of the covered elements.
//
// Span is a small immutable value: copy it freely, compare it with Equal.
// It never references the underlying sequence, so keeping a Span alive does
// not keep the sequence alive, and mutating the sequence silently
// invalidates the cached sum of every span built over it.
type Span struct {
	begin int // first position of the range, inclusive
	end   int // one past the last position of the range
	sum   int // total of the covered elements at construction time
}

// New constructs a Span from its begin and end positions and an
// already-known sum. The caller asserts that sum is the true total of the
// covered elements; nothing is recomputed or verified.
//
// Panics unless begin < end (a span must cover at least one element).
//
// Complexity: O(1).
func New(begin, end, sum int) Span {
	if begin >= end {
		panic(fmt.Sprintf("span: New requires begin < end, got [%d,%d)", begin, end))
	}

	return Span{begin: begin, end: end, sum: sum}
}

// Over constructs a Span covering data[begin:end), computing the sum by
// adding the elements left to right starting from zero.
//
// Panics unless begin < end and the range lies within data.
//
// Complexity: O(end-begin).
func Over(data []int, begin, end int) Span {
	if begin >= end {
		panic(fmt.Sprintf("span: Over requires begin < end, got [%d,%d)", begin, end))
	}
	if begin < 0 || end > len(data) {
		panic(fmt.Sprintf("span: Over range [%d,%d) out of bounds for %d elements", begin, end, len(data)))
	}

	// Sum left to right so the construction order is deterministic.
	sum := 0
	for i := begin; i < end; i++ {
		sum += data[i]
	}

	return Span{begin: begin, end: end, sum: sum}
}

// Begin returns the first position of the range, inclusive.
func (s Span) Begin() int { return s.begin }

// End returns the position one past the last element of the range.
func (s Span) End() int { return s.end }

// Sum returns the cached total of the covered elements.
func (s Span) Sum() int { return s.sum }

// Size returns the number of elements in the range.
// Complexity: O(1).
func (s Span) Size() int { return s.end - s.begin }

// Equal reports whether s and other describe the same range. Only the
// positions are compared; over a fixed sequence the sum is implied by them.
func (s Span) Equal(other Span) bool {
	return s.begin == other.begin && s.end == other.end
}

// String implements fmt.Stringer, printing the range and its cached sum.
func (s Span) String() string {
	return fmt.Sprintf("span[%d,%d) sum=%d", s.begin, s.end, s.sum)
}
