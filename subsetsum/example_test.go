package subsetsum_test

import (
	"fmt"

	"github.com/rtnguyen95/335-Project-2-from-Windows/subsetsum"
)

// ExampleExhaustive demonstrates a hit: two subsets of the input reach 9,
// and the one with the smaller bitmask is reported, in input order.
func ExampleExhaustive() {
	subset, ok := subsetsum.Exhaustive([]int{3, 34, 4, 12, 5, 2}, 9)

	fmt.Println(subset, ok)
	// Output: [4 5] true
}

// ExampleExhaustive_miss demonstrates absence: no subset reaches the target,
// which is reported through the comma-ok boolean rather than an error.
func ExampleExhaustive_miss() {
	subset, ok := subsetsum.Exhaustive([]int{3, 34, 4, 12, 5, 2}, 100)

	fmt.Println(subset, ok)
	// Output: [] false
}

// ExampleExhaustive_cancellingElements shows that a zero target is only
// satisfied by real elements summing to zero, never by the empty subset.
func ExampleExhaustive_cancellingElements() {
	subset, ok := subsetsum.Exhaustive([]int{-3, 1, 2}, 0)

	fmt.Println(subset, ok)
	// Output: [-3 1 2] true
}
