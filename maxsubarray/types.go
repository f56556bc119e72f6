// Package maxsubarray defines configuration options and sentinel errors for
// maximum-subarray search. It supports selecting between the exhaustive and
// divide-and-conquer algorithms via Options.
package maxsubarray

import (
	"errors"
	"fmt"

	"github.com/rtnguyen95/335-Project-2-from-Windows/span"
)

// ErrUnknownMethod indicates that Compute was configured with a method name
// it does not recognize. Returned wrapped with the offending name attached.
var ErrUnknownMethod = errors.New("maxsubarray: unknown search method")

// MethodExhaustive selects the O(n^3) exhaustive search (sum every range from scratch).
const MethodExhaustive = "exhaustive"

// MethodDivideAndConquer selects the O(n log n) recursive search (halve, recurse, cross).
const MethodDivideAndConquer = "divide-and-conquer"

// Options configures which maximum-subarray algorithm Compute runs.
// Use DefaultOptions() to get a default setup (divide-and-conquer).
//
// Fields:
//
//	Method string - one of MethodExhaustive or MethodDivideAndConquer.
//
// See: maxsubarray.Exhaustive, maxsubarray.DivideAndConquer
// Complexity: O(n^3) for exhaustive, O(n log n) for divide-and-conquer.
type Options struct {
	// Method to use: MethodExhaustive or MethodDivideAndConquer.
	Method string
}

// Option represents a functional option for configuring Compute.
// All Option functions modify the pointed Options in place.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodExhaustive, MethodDivideAndConquer.
// Unknown names are not rejected here; Compute reports them as ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns Options initialized for divide-and-conquer by default:
//
//	- Method = MethodDivideAndConquer (the faster of the two algorithms).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method: MethodDivideAndConquer,
	}
}

// Compute selects and runs a maximum-subarray algorithm based on the applied options.
//
//	- If Method == MethodExhaustive:       calls Exhaustive(input).
//	- If Method == MethodDivideAndConquer: calls DivideAndConquer(input).
//	- Otherwise:                           returns ErrUnknownMethod (wrapped with the name).
//
// Returns:
//
//	span.Span - the winning range with its sum (zero value when the method is unknown).
//	error     - non-nil only for an unknown method name.
//
// The empty-input panic of the underlying algorithms applies unchanged; Compute adds no
// recovery. This is optional scaffolding; Exhaustive and DivideAndConquer can still be
// called directly.
func Compute(input []int, opts ...Option) (span.Span, error) {
	// Start from defaults, then apply caller overrides in order.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Dispatch by method name.
	switch o.Method {
	case MethodExhaustive:
		return Exhaustive(input), nil
	case MethodDivideAndConquer:
		return DivideAndConquer(input), nil
	default:
		// Unknown method name; attach it for the caller's log line.
		return span.Span{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
