// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle (AddEdge, HasEdge) per spec.md §3/§4.1.
package graph

// AddEdge adds an undirected edge between two distinct, existing
// vertices. Adding an edge that already exists is a no-op (idempotent),
// matching the FILL family's invariant that it never issues a redundant
// call but callers (tests, examples) may still do so safely.
//
// Implementation:
//   - Stage 1: reject from == to (ErrSelfLoop) — this graph type is simple.
//   - Stage 2: reject a missing endpoint (ErrVertexNotFound).
//   - Stage 3: mirror the edge into both adjacency sets.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) error {
	if from == to {
		return ErrSelfLoop
	}

	fromSet, ok := g.adj[from]
	if !ok {
		return ErrVertexNotFound
	}
	toSet, ok := g.adj[to]
	if !ok {
		return ErrVertexNotFound
	}

	fromSet[to] = struct{}{}
	toSet[from] = struct{}{}

	return nil
}

// HasEdge reports whether an edge between from and to currently exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	nbrs, ok := g.adj[from]
	if !ok {
		return false
	}
	_, ok = nbrs[to]

	return ok
}
