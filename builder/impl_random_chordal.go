// SPDX-License-Identifier: MIT
// Package: chordal/builder
//
// impl_random_chordal.go — implementation of the RandomChordal(n, maxEdges)
// constructor, grounded on original_source/src/random_graph.h's
// gen_random_chordal_graph (Markenzon-Vernet-Araujo clique-tree method).
//
// Simplification (documented in DESIGN.md): the original grows a forest of
// candidate clique branches and then merges sibling branches back together
// while doing so stays under max_edges, using a union-find over clique
// indices. This package keeps the branch-growing half of that algorithm
// (each new vertex either extends the clique it was drawn against, or
// forks a new one sharing a random subset of it) and drops the merge
// half: merging sibling branches is an edge-budget optimization, not a
// requirement for the result to be chordal. No union-find is used here:
// connectivity follows from the clique-tree construction itself, since
// every new vertex gets at least one edge to an earlier vertex.
//
// Contract:
//   • n >= MinRandomNodes (else ErrTooFewVertices).
//   • maxEdges >= n-1 (else ErrConstructFailed: can't even span n vertices).
//   • a non-nil *rand.Rand must be configured (else ErrNeedRandSource).
//   • the returned graph is chordal, connected, and has at most maxEdges edges.
//
// Complexity: O(n^2) worst case (each new vertex may copy up to n elements
// of its parent clique); O(n) space for the clique list.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/chordal/graph"
)

// Stats reports bookkeeping from RandomChordal's clique-tree construction,
// mirroring the local variables `l` (clique count) and `m` (edge count)
// original_source/src/random_graph.h tracks. MergeCount is always 0 in
// this implementation, which does not perform the original's sibling-clique
// merge pass (see the package-level simplification note above).
type Stats struct {
	CliqueCount int
	MergeCount  int
	EdgeCount   int
}

// RandomChordal builds a connected chordal graph on n vertices with at
// most maxEdges edges, by growing a tree of overlapping cliques: each new
// vertex after the first attaches to a random subset of a random existing
// clique, which by construction cannot introduce a chordless cycle.
func RandomChordal(n, maxEdges int, opts ...BuilderOption) (*graph.Graph, Stats, error) {
	if err := validateMin(MethodRandomChordal, n, MinRandomNodes); err != nil {
		return nil, Stats{}, err
	}
	if maxEdges < n-1 {
		return nil, Stats{}, fmt.Errorf("%s: maxEdges=%d < n-1=%d: %w",
			MethodRandomChordal, maxEdges, n-1, ErrConstructFailed)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", MethodRandomChordal, ErrNeedRandSource)
	}

	g := graph.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, Stats{}, fmt.Errorf("%s: AddVertex(%s): %w", MethodRandomChordal, ids[i], err)
		}
	}

	cliques := [][]string{{ids[0]}}
	edgeCount := 0

	for idx := 1; idx < n; idx++ {
		v := ids[idx]

		ci := cfg.rng.Intn(len(cliques))
		parent := cliques[ci]

		// Reserve one edge per still-unplaced vertex so the remaining
		// budget can always finish spanning the graph.
		remainingVertices := n - 1 - idx
		budget := maxEdges - edgeCount - remainingVertices
		if budget < 1 {
			return nil, Stats{}, fmt.Errorf("%s: exhausted edge budget at vertex %d: %w",
				MethodRandomChordal, idx, ErrConstructFailed)
		}

		t := cfg.rng.Intn(len(parent)) + 1
		if t > budget {
			t = budget
		}

		subset := randomSubset(cfg.rng, parent, t)
		for _, u := range subset {
			if err := g.AddEdge(u, v); err != nil {
				return nil, Stats{}, fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodRandomChordal, u, v, err)
			}
		}
		edgeCount += t

		if t == len(parent) {
			// Full reuse: v joins the parent clique outright.
			cliques[ci] = append(parent, v)
		} else {
			// Partial reuse: v forks a new, smaller maximal clique.
			newClique := make([]string, 0, t+1)
			newClique = append(newClique, subset...)
			newClique = append(newClique, v)
			cliques = append(cliques, newClique)
		}
	}

	return g, Stats{CliqueCount: len(cliques), MergeCount: 0, EdgeCount: edgeCount}, nil
}

// randomSubset returns t distinct elements of items chosen uniformly at
// random, via a partial Fisher-Yates shuffle of a copy of items.
// Complexity: O(len(items)) time and space.
func randomSubset(rng *rand.Rand, items []string, t int) []string {
	pool := append([]string(nil), items...)
	for i := 0; i < t; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:t]
}
