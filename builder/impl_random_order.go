// SPDX-License-Identifier: MIT
// Package: chordal/builder
//
// impl_random_order.go — implementation of the RandomOrder(g) constructor,
// mirroring original_source/src/random_graph.h's gen_random_order: a
// Fisher-Yates shuffle of the graph's vertex set.
//
// Contract:
//   • a non-nil *rand.Rand must be configured (else ErrNeedRandSource).
//   • the returned order.Order is a permutation of g.Vertices().
//
// Complexity: O(|V|) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chordal/graph"
	"github.com/katalvlaran/chordal/order"
)

// RandomOrder returns a uniformly random permutation of g's vertices.
func RandomOrder(g *graph.Graph, opts ...BuilderOption) (order.Order, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomOrder, ErrNeedRandSource)
	}

	vs := g.Vertices()
	ord := make(order.Order, len(vs))
	copy(ord, vs)

	cfg.rng.Shuffle(len(ord), func(i, j int) {
		ord[i], ord[j] = ord[j], ord[i]
	})

	return ord, nil
}
