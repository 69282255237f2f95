// SPDX-License-Identifier: MIT
//
// File: fill.go
// Role: the shared successor-set walk and its three public faces.
package fill

import (
	"github.com/katalvlaran/chordal/graph"
	"github.com/katalvlaran/chordal/order"
)

// successors builds succ[v] = { w in N(v) : index[v] < index[w] } for
// every vertex, per spec.md §3's successor-set invariant. Complexity:
// O(V + E).
func successors(g *graph.Graph, idx order.Index) map[string]map[string]struct{} {
	succ := make(map[string]map[string]struct{}, len(idx))
	for v := range idx {
		succ[v] = make(map[string]struct{})
	}

	for v, vi := range idx {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			// Precondition violation (v not in g): caller bug, spec.md §7.
			// Leave succ[v] empty rather than raise at runtime.
			continue
		}
		for _, w := range nbrs {
			if vi < idx[w] {
				succ[v][w] = struct{}{}
			}
		}
	}

	return succ
}

// closestSuccessor returns the member of succ[v] with minimum index.
// succ[v] must be non-empty.
func closestSuccessor(succv map[string]struct{}, idx order.Index) string {
	var m string
	minIdx := -1
	for w := range succv {
		if wi := idx[w]; minIdx == -1 || wi < minIdx {
			minIdx = wi
			m = w
		}
	}

	return m
}

// run walks ord per spec.md §4.1 step 2, invoking onEdge(m, w) for every
// discovered fill-in edge and stopping immediately if onEdge returns
// true. It always maintains the succ[m] invariant (succ only grows)
// before calling onEdge, since Fill/FillIn depend on that growth to
// avoid re-emitting the same edge; IsPerfectEliminationOrder stops on
// the first call, so the extra insert is harmless there.
//
// Complexity: O(n·e*) where e* is the final (post fill-in) edge count
// (spec.md §4.1, "Why the closest successor").
func run(g *graph.Graph, ord order.Order, onEdge func(m, w string) (stop bool)) {
	idx := order.NewIndex(ord)
	succ := successors(g, idx)

	for i := 0; i < len(ord)-1; i++ {
		v := ord[i]
		succv := succ[v]
		if len(succv) == 0 {
			continue
		}

		m := closestSuccessor(succv, idx)
		succm := succ[m]

		for w := range succv {
			if w == m {
				continue
			}
			if _, ok := succm[w]; ok {
				continue
			}

			succm[w] = struct{}{}
			if onEdge(m, w) {
				return
			}
		}
	}
}

// Fill mutates g, adding every fill-in edge needed to make ord a
// perfect elimination order of the result (the chordal completion of g
// under ord). g must be simple, connected, undirected; ord must be a
// permutation of V(g) (spec.md §4.1 preconditions — violations are
// caller bugs per spec.md §7 and produce unspecified-but-safe output).
//
// Complexity: O(n·e*).
func Fill(g *graph.Graph, ord order.Order) {
	run(g, ord, func(m, w string) bool {
		// succ already grew in run(); AddEdge can only fail here if an
		// invariant was broken (m, w not both existing distinct
		// vertices), which run() guarantees cannot happen.
		if err := g.AddEdge(m, w); err != nil {
			panic("fill: invariant violated, AddEdge(" + m + "," + w + "): " + err.Error())
		}

		return false
	})
}

// FillIn returns the fill-in edge set of g under ord, without mutating
// g. Complexity: O(n·e*).
func FillIn(g *graph.Graph, ord order.Order) order.EdgeSet {
	edges := order.NewEdgeSet()
	run(g, ord, func(m, w string) bool {
		edges.Add(m, w)

		return false
	})

	return edges
}

// IsPerfectEliminationOrder reports whether ord is a perfect
// elimination order for g, i.e. whether its fill-in is empty. It
// short-circuits on the first fill-in edge it would need to add.
// Complexity: O(n·e*) worst case, typically much less on a "no" answer.
func IsPerfectEliminationOrder(g *graph.Graph, ord order.Order) bool {
	perfect := true
	run(g, ord, func(m, w string) bool {
		perfect = false

		return true
	})

	return perfect
}
