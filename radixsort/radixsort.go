// SPDX-License-Identifier: MIT
//
// File: radixsort.go
// Role: the only exported operation of this package.
package radixsort

import "golang.org/x/exp/constraints"

// numBuckets is the radix: base-16 digits, one nibble per pass.
const numBuckets = 0x10

// nibbleMask selects the low 4 bits of a shifted key.
const nibbleMask = 0xf

// Sort stably sorts seq ascending by keyOf(v), in place, using LSD
// base-16 radix sort.
//
// Contract (spec.md §4.4):
//   - Stable: elements with equal keys keep their relative input order.
//   - In-place: seq is rewritten; the return value is seq itself.
//   - Time O((len(seq)+16)·passes), passes = ceil(log16(max(key)+1)).
//   - Space O(len(seq)).
//
// The number of passes is adaptive: it depends on the largest key
// actually present in seq, not on the bit width of K, so sorting a
// []uint64 whose keys all fit in a byte costs two passes, not sixteen.
//
// Complexity: as above; degenerates to O(len(seq)) when len(seq) == 0
// or every key is 0.
func Sort[T any, K constraints.Unsigned](seq []T, keyOf func(T) K) []T {
	if len(seq) <= 1 {
		return seq
	}

	var maxKey K
	for _, v := range seq {
		if k := keyOf(v); k > maxKey {
			maxKey = k
		}
	}

	var buckets [numBuckets][]T
	for shift := uint(0); maxKey>>shift != 0; shift += 4 {
		for _, v := range seq {
			digit := (keyOf(v) >> shift) & nibbleMask
			buckets[digit] = append(buckets[digit], v)
		}

		off := 0
		for i := 0; i < numBuckets; i++ {
			off += copy(seq[off:], buckets[i])
			buckets[i] = buckets[i][:0]
		}
	}

	return seq
}
