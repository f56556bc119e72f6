// Package subarray is an in-memory playground for range-search classics:
// the Maximum Subarray Problem solved two instructive ways, plus an
// exhaustive Subset Sum solver, all built on one summed-span primitive.
//
// 🚀 What is inside?
//
//	A small, deterministic, read-only-input library that brings together:
//		• Summed spans: half-open [begin,end) ranges that carry their element total
//		• Exhaustive search: every range summed from scratch, O(n^3), the audit-friendly oracle
//		• Divide-and-conquer: halve, recurse, stitch with a crossing scan, O(n log n)
//		• Subset sum: every non-empty subset tried as an ascending uint64 bitmask, O(n·2^n)
//
// ✨ Why choose it?
//
//   - Beginner-friendly - minimal API, clear, intuitive naming
//   - Deterministic - fixed tie-breaking rules, the same answer on every run
//   - Pure functions - inputs are never mutated, so concurrent callers need no locks
//   - Honest costs - every operation documents its time and memory complexity
//
// Under the hood, everything is organized under three subpackages:
//
//	span/        — the summed half-open range value type shared by the solvers
//	maxsubarray/ — Exhaustive & DivideAndConquer searches + the Compute dispatcher
//	subsetsum/   — exhaustive bitmask subset-sum search
//
// Quick ASCII example:
//
//	index:  0   1   2   3   4   5   6   7   8
//	value: -2   1  -3   4  -1   2   1  -5   4
//	                   └────────────┘
//	        maximum subarray span[3,7) sum=6
//
// Dive into the per-package documentation for complexity walkthroughs,
// tie-breaking rules, and runnable examples.
//
//	go get github.com/rtnguyen95/335-Project-2-from-Windows
package subarray
