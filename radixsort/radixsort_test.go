// SPDX-License-Identifier: MIT
package radixsort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/chordal/radixsort"
)

func TestSortAscending(t *testing.T) {
	in := []uint32{5, 1, 4, 1, 2, 8}
	got := radixsort.Sort(in, func(v uint32) uint32 { return v })

	want := []uint32{1, 1, 2, 4, 5, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

type labeled struct {
	key uint8
	seq int // original position, to verify stability
}

func TestSortIsStable(t *testing.T) {
	in := []labeled{
		{key: 2, seq: 0},
		{key: 1, seq: 1},
		{key: 2, seq: 2},
		{key: 1, seq: 3},
		{key: 0, seq: 4},
	}

	got := radixsort.Sort(in, func(v labeled) uint8 { return v.key })

	var prevKey uint8
	var prevSeq = -1
	for i, v := range got {
		if i > 0 && v.key == prevKey && v.seq < prevSeq {
			t.Fatalf("stability violated at index %d: %+v after %+v", i, v, got[i-1])
		}
		prevKey, prevSeq = v.key, v.seq
	}
}

func TestSortRandomMatchesSortSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(200)
		values := make([]uint64, n)
		for i := range values {
			values[i] = rng.Uint64() >> (8 * (7 - rng.Intn(8)))
		}

		want := append([]uint64(nil), values...)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

		got := radixsort.Sort(values, func(v uint64) uint64 { return v })

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("trial %d: unexpected order (-want +got):\n%s", trial, diff)
		}
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	empty := radixsort.Sort([]int{}, func(v int) uint8 { return uint8(v) })
	if len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}

	single := radixsort.Sort([]int{7}, func(v int) uint8 { return uint8(v) })
	if len(single) != 1 || single[0] != 7 {
		t.Fatalf("expected single-element slice unchanged, got %v", single)
	}
}
