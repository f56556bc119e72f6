package maxsubarray_test

import (
	"math/rand"
	"testing"

	"github.com/rtnguyen95/335-Project-2-from-Windows/maxsubarray"
)

// BenchmarkExhaustive measures the cubic search on a 256-element random sequence.
// Kept deliberately small: the fresh per-range summation dominates quickly.
func BenchmarkExhaustive(b *testing.B) {
	seq := randomSequence(rand.New(rand.NewSource(42)), 256) // pre-build input once
	b.ResetTimer()                                           // exclude input construction
	for i := 0; i < b.N; i++ {
		_ = maxsubarray.Exhaustive(seq)
	}
}

// BenchmarkDivideAndConquer measures the recursive search on the same
// 256-element sequence, making the asymptotic gap visible side by side.
func BenchmarkDivideAndConquer(b *testing.B) {
	seq := randomSequence(rand.New(rand.NewSource(42)), 256) // pre-build input once
	b.ResetTimer()                                           // exclude input construction
	for i := 0; i < b.N; i++ {
		_ = maxsubarray.DivideAndConquer(seq)
	}
}

// BenchmarkDivideAndConquer_Large measures the recursive search alone on a
// sequence far beyond what the cubic search can handle in a benchmark run.
func BenchmarkDivideAndConquer_Large(b *testing.B) {
	seq := randomSequence(rand.New(rand.NewSource(42)), 1<<16) // pre-build input once
	b.ResetTimer()                                             // exclude input construction
	for i := 0; i < b.N; i++ {
		_ = maxsubarray.DivideAndConquer(seq)
	}
}
