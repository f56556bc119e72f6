package subsetsum_test

import (
	"testing"

	"github.com/rtnguyen95/335-Project-2-from-Windows/subsetsum"
)

// worstCaseInput returns n distinct positive values whose subsets can never
// reach the impossible target below, forcing a full 2^n-1 mask sweep.
func worstCaseInput(n int) []int {
	input := make([]int, n)
	for i := range input {
		input[i] = i + 1
	}

	return input
}

// BenchmarkExhaustive_Miss measures the full enumeration: 20 elements, a
// target no subset can reach, so all 2^20-1 masks are scanned.
func BenchmarkExhaustive_Miss(b *testing.B) {
	input := worstCaseInput(20) // pre-build input once
	b.ResetTimer()              // exclude input construction
	for i := 0; i < b.N; i++ {
		_, _ = subsetsum.Exhaustive(input, -1)
	}
}

// BenchmarkExhaustive_EarlyHit measures the best case on the same input: the
// target equals input[0], so mask 1 hits immediately.
func BenchmarkExhaustive_EarlyHit(b *testing.B) {
	input := worstCaseInput(20) // pre-build input once
	b.ResetTimer()              // exclude input construction
	for i := 0; i < b.N; i++ {
		_, _ = subsetsum.Exhaustive(input, 1)
	}
}
