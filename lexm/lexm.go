// SPDX-License-Identifier: MIT
//
// File: lexm.go
// Role: the LexM entry point and its supporting per-call state.
package lexm

import (
	"sort"

	"github.com/katalvlaran/chordal/graph"
	"github.com/katalvlaran/chordal/order"
	"github.com/katalvlaran/chordal/radixsort"
)

// label is the unsigned integer used to rank unnumbered vertices
// (spec.md §3, "Label (LEX M)").
type label = uint32

// state holds the per-call mutable data LexM needs: which vertices are
// still unnumbered, their current labels, and the reach buckets used by
// the leveled BFS phase of one iteration. It is allocated at the start
// of LexM and discarded at return (spec.md §5: auxiliary data never
// survives across calls).
type state struct {
	g          *graph.Graph
	unnumbered map[string]bool
	label      map[string]label
	reach      map[label][]string // FIFO per bucket (spec.md §9, representation (b))
	reached    map[string]bool
}

// LexM computes a minimal elimination ordering of g (spec.md §4.2). g
// must be simple, connected, and undirected; violating that is a
// caller bug (spec.md §7) and produces an unspecified-but-safe order.
//
// Complexity: see spec.md §4.2 — amortized linear relabeling per
// iteration thanks to radixsort.Sort, for an overall near-linear cost
// in sparse graphs.
func LexM(g *graph.Graph) order.Order {
	vertices := g.Vertices() // sorted; used only to seed a deterministic start
	n := len(vertices)
	ord := make(order.Order, n)

	if n == 0 {
		return ord
	}

	st := &state{
		g:          g,
		unnumbered: make(map[string]bool, n),
		label:      make(map[string]label, n),
		reach:      make(map[label][]string),
		reached:    make(map[string]bool, n),
	}
	for _, v := range vertices {
		st.unnumbered[v] = true
	}

	cur := vertices[0] // iteration 0: every label is 0, so cur is arbitrary.
	nUniqueLabels := label(1)

	for index := n - 1; index >= 0; index-- {
		maxLabel := 2 * (nUniqueLabels - 1)

		delete(st.unnumbered, cur)
		ord[index] = cur

		st.reachPhase(cur)
		st.bfsPhase(maxLabel)

		if len(st.unnumbered) == 0 {
			break
		}

		cur, nUniqueLabels = st.relabel()
	}

	return ord
}

// reachPhase resets the reach buckets and marks every unnumbered
// neighbor of cur as reached, bucketing each by its current label and
// then incrementing that label (spec.md §4.2 step 3).
func (st *state) reachPhase(cur string) {
	st.reach = make(map[label][]string)
	st.reached = make(map[string]bool)

	nbrs, err := st.g.Neighbors(cur)
	if err != nil {
		return // precondition violation (cur not in g): caller bug.
	}

	for _, v := range nbrs {
		if !st.unnumbered[v] {
			continue
		}

		st.reached[v] = true
		l := st.label[v]
		st.reach[l] = append(st.reach[l], v)
		st.label[v]++
	}
}

// bfsPhase drains the reach buckets for l = 0, 2, ..., maxLabel in
// ascending order, each bucket fully before advancing (spec.md §4.2
// step 4). Draining bucket l can push new vertices into bucket l
// itself (when label[w] <= l), so each bucket is processed to
// exhaustion, not just once.
func (st *state) bfsPhase(maxLabel label) {
	for l := label(0); l <= maxLabel; l += 2 {
		for len(st.reach[l]) > 0 {
			v := st.reach[l][0]
			st.reach[l] = st.reach[l][1:]

			nbrs, err := st.g.Neighbors(v)
			if err != nil {
				continue
			}

			for _, w := range nbrs {
				if !st.unnumbered[w] || st.reached[w] {
					continue
				}

				st.reached[w] = true
				if st.label[w] > l {
					st.reach[st.label[w]] = append(st.reach[st.label[w]], w)
					st.label[w]++
				} else {
					st.reach[l] = append(st.reach[l], w)
				}
			}
		}
	}
}

// relabel sorts the still-unnumbered vertices by current label (radix
// sort, stable) and rewrites their labels as the dense sequence
// 0, 2, 4, ..., 2(k-1), where k is the number of distinct label values
// (spec.md §4.2 step 5, with the off-by-one correction from spec.md
// §9: rank starts at 1 and each group's label is 2*(rank-1)). It
// returns the new cur (the highest-ranked vertex) and the new k.
func (st *state) relabel() (string, label) {
	toRelabel := make([]string, 0, len(st.unnumbered))
	for v := range st.unnumbered {
		toRelabel = append(toRelabel, v)
	}
	// Break ties on vertex ID before the stable radix sort so that, for
	// a fixed graph and fixed label values, the resulting order (and
	// hence the chosen cur) is deterministic despite Go's randomized
	// map iteration.
	sort.Strings(toRelabel)

	sorted := radixsort.Sort(toRelabel, func(v string) label { return st.label[v] })

	rank := label(1)
	prevLabel := st.label[sorted[0]]
	for _, v := range sorted {
		if st.label[v] != prevLabel {
			rank++
			prevLabel = st.label[v]
		}
		st.label[v] = 2 * (rank - 1)
	}

	return sorted[len(sorted)-1], rank
}
