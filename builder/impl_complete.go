// SPDX-License-Identifier: MIT
// Package: chordal/builder
//
// impl_complete.go — implementation of the Complete(n) constructor.
//
// Contract:
//   • n >= MinCompleteNodes (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n^2) edges.
//   • Space: O(n) extra for the precomputed ID slice.
//
// Determinism:
//   • Deterministic IDs via cfg.idFn.
//   • Deterministic pair order: lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chordal/graph"
)

// Complete builds the complete simple graph K_n.
func Complete(n int, opts ...BuilderOption) (*graph.Graph, error) {
	if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	g := graph.New()

	ids := make([]string, n) // O(n) space for stable reuse below
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", MethodComplete, ids[i], err)
		}
	}

	for i := 0; i < n; i++ {
		u := ids[i]
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(u, ids[j]); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodComplete, u, ids[j], err)
			}
		}
	}

	return g, nil
}
