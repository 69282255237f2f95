// Package radixsort implements an LSD base-16 stable sort of a slice of
// values keyed by an externally supplied unsigned-integer mapping
// (spec.md §4.4). It is used by lexm to re-rank unnumbered vertices by
// label in amortized linear time per call; it is also exported on its
// own because spec.md §6 lists radix_sort as part of the core's
// external surface.
//
// The key type is constrained to unsigned integers via
// golang.org/x/exp/constraints, matching the original implementation's
// static_assert(!is_signed) contract (original_source/src/radix_sort.h)
// as a compile-time generic bound instead of a runtime assertion.
package radixsort
