// SPDX-License-Identifier: MIT
//
// File: edgeset.go
// Role: canonicalized undirected edge set (spec.md §3: "Representation
// must canonicalize each pair so the set semantics are by unordered
// equality").
package order

// Pair is a canonicalized undirected edge: U is always the
// lexicographically smaller vertex ID. Construct with NewPair, never
// with a literal, so the invariant holds everywhere.
type Pair struct {
	U, V string
}

// NewPair returns the canonical Pair for the unordered edge {a, b}:
// the smaller ID first. Complexity: O(len(a)+len(b)) for the compare.
func NewPair(a, b string) Pair {
	if a <= b {
		return Pair{U: a, V: b}
	}

	return Pair{U: b, V: a}
}

// EdgeSet is a set of canonicalized edges, keyed by Pair so membership
// and insertion are O(1) regardless of which endpoint order the caller
// used.
type EdgeSet map[Pair]struct{}

// NewEdgeSet returns an empty EdgeSet.
func NewEdgeSet() EdgeSet {
	return make(EdgeSet)
}

// Add inserts the unordered edge {a, b}. Complexity: O(1).
func (s EdgeSet) Add(a, b string) {
	s[NewPair(a, b)] = struct{}{}
}

// Has reports whether the unordered edge {a, b} is present.
// Complexity: O(1).
func (s EdgeSet) Has(a, b string) bool {
	_, ok := s[NewPair(a, b)]

	return ok
}

// Len returns the number of distinct edges in s.
func (s EdgeSet) Len() int {
	return len(s)
}

// Slice returns the edges of s as a slice of Pair, in no particular
// order. Useful for golden-file comparisons once sorted by the caller.
func (s EdgeSet) Slice() []Pair {
	out := make([]Pair, 0, len(s))
	for p := range s {
		out = append(out, p)
	}

	return out
}
