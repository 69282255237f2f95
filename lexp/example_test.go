// SPDX-License-Identifier: MIT
package lexp_test

import (
	"fmt"

	"github.com/katalvlaran/chordal/fill"
	"github.com/katalvlaran/chordal/graph"
	"github.com/katalvlaran/chordal/lexp"
)

// ExampleLexP computes a perfect elimination order for a chordal graph
// built from two triangles sharing a vertex plus a pendant, and checks
// that the resulting fill-in is empty as spec.md §8 property 6 requires.
func ExampleLexP() {
	g := graph.New()
	for _, v := range []string{"0", "1", "2", "3", "4", "5"} {
		_ = g.AddVertex(v)
	}
	edges := [][2]string{
		{"0", "1"}, {"0", "2"}, {"1", "2"},
		{"2", "3"}, {"2", "4"}, {"3", "4"},
		{"4", "5"},
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}

	ord := lexp.LexP(g)
	fmt.Println("fill-in size:", fill.FillIn(g, ord).Len())

	// Output:
	// fill-in size: 0
}
