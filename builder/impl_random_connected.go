// SPDX-License-Identifier: MIT
// Package: chordal/builder
//
// impl_random_connected.go — implementation of the RandomConnected(n, p)
// constructor, mirroring original_source/src/random_graph.h's
// gen_random_connected_graph: sample an Erdos-Renyi graph over unordered
// pairs, then fix up connectivity by joining components with a single
// bridge edge each instead of resampling.
//
// Contract:
//   • n >= MinRandomNodes (else ErrTooFewVertices).
//   • p in [0,1] (else ErrInvalidProbability).
//   • a non-nil *rand.Rand must be configured (else ErrNeedRandSource).
//   • the returned graph is always connected.
//
// Complexity:
//   • Time: O(n^2) to sample candidate pairs, plus O(n * alpha(n)) for the
//     union-find connectivity fix-up.
//   • Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chordal/graph"
)

// RandomConnected builds a connected undirected graph on n vertices by
// sampling each unordered pair independently with probability p, then
// bridging any leftover components with one edge per extra component.
func RandomConnected(n int, p float64, opts ...BuilderOption) (*graph.Graph, error) {
	if err := validateMin(MethodRandomConnected, n, MinRandomNodes); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandomConnected, p); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
	}

	g := graph.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", MethodRandomConnected, ids[i], err)
		}
	}

	uf := newUnionFind(ids)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if cfg.rng.Float64() < p {
				if err := g.AddEdge(ids[j], ids[i]); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodRandomConnected, ids[j], ids[i], err)
				}
				uf.union(ids[j], ids[i])
			}
		}
	}

	// Bridge any remaining components: walk the vertex list and connect
	// each vertex not yet joined to its predecessor's component.
	for i := 1; i < n; i++ {
		if uf.union(ids[i-1], ids[i]) {
			if !g.HasEdge(ids[i-1], ids[i]) {
				if err := g.AddEdge(ids[i-1], ids[i]); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodRandomConnected, ids[i-1], ids[i], err)
				}
			}
		}
	}

	return g, nil
}
