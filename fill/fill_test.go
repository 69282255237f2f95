// SPDX-License-Identifier: MIT
package fill_test

import (
	"testing"

	"github.com/katalvlaran/chordal/fill"
	"github.com/katalvlaran/chordal/graph"
	"github.com/katalvlaran/chordal/order"
)

// buildKnownGraph constructs the spec.md §8 "Known-graph fill" scenario:
// vertices {0..5}, edges {(0,1),(0,2),(1,3),(2,3),(0,4),(3,4),(0,5),
// (1,5),(2,5),(3,5)}.
func buildKnownGraph(t *testing.T) *graph.Graph {
	t.Helper()

	g := graph.New()
	for _, v := range []string{"0", "1", "2", "3", "4", "5"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%s): %v", v, err)
		}
	}

	edges := [][2]string{
		{"0", "1"}, {"0", "2"}, {"1", "3"}, {"2", "3"}, {"0", "4"},
		{"3", "4"}, {"0", "5"}, {"1", "5"}, {"2", "5"}, {"3", "5"},
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e[0], e[1], err)
		}
	}

	return g
}

func TestKnownGraphFill(t *testing.T) {
	g := buildKnownGraph(t)
	ord := order.Order{"4", "3", "2", "1", "0", "5"}

	if fill.IsPerfectEliminationOrder(g, ord) {
		t.Fatalf("expected order not to be a perfect elimination order before fill")
	}

	fillIn := fill.FillIn(g, ord)
	want := order.NewEdgeSet()
	want.Add("0", "3")
	want.Add("1", "2")

	if fillIn.Len() != want.Len() {
		t.Fatalf("expected %d fill-in edges, got %d: %v", want.Len(), fillIn.Len(), fillIn.Slice())
	}
	for p := range want {
		if !fillIn.Has(p.U, p.V) {
			t.Fatalf("expected fill-in to contain %v, got %v", p, fillIn.Slice())
		}
	}

	fill.Fill(g, ord)
	if !fill.IsPerfectEliminationOrder(g, ord) {
		t.Fatalf("expected order to be perfect after fill")
	}
	if fill.FillIn(g, ord).Len() != 0 {
		t.Fatalf("expected empty fill-in after fill (idempotence)")
	}
}

func TestMutationEquivalence(t *testing.T) {
	g := buildKnownGraph(t)
	ord := order.Order{"4", "3", "2", "1", "0", "5"}

	clone := g.Clone()
	fillIn := fill.FillIn(g, ord)
	fill.Fill(clone, ord)

	for _, v := range g.Vertices() {
		nbrs, _ := g.Neighbors(v)
		for _, w := range nbrs {
			if !clone.HasEdge(v, w) {
				t.Fatalf("clone missing original edge %s-%s", v, w)
			}
		}
	}
	for p := range fillIn {
		if !clone.HasEdge(p.U, p.V) {
			t.Fatalf("clone missing fill-in edge %v", p)
		}
	}
	if clone.EdgeCount() != g.EdgeCount()+fillIn.Len() {
		t.Fatalf("expected clone edge count %d+%d, got %d",
			g.EdgeCount(), fillIn.Len(), clone.EdgeCount())
	}
}

func completeGraph(t *testing.T, n int) (*graph.Graph, []string) {
	t.Helper()

	g := graph.New()
	vs := make([]string, n)
	for i := 0; i < n; i++ {
		vs[i] = string(rune('a' + i))
		if err := g.AddVertex(vs[i]); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(vs[i], vs[j]); err != nil {
				t.Fatalf("AddEdge: %v", err)
			}
		}
	}

	return g, vs
}

// permute calls fn once per permutation of vs (in place), Heap's algorithm.
func permute(vs []string, fn func([]string)) {
	n := len(vs)
	c := make([]int, n)
	fn(append([]string(nil), vs...))
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				vs[0], vs[i] = vs[i], vs[0]
			} else {
				vs[c[i]], vs[i] = vs[i], vs[c[i]]
			}
			fn(append([]string(nil), vs...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

func TestCompleteGraphEveryOrderEmptyFillIn(t *testing.T) {
	g, vs := completeGraph(t, 6)

	count := 0
	permute(vs, func(p []string) {
		count++
		if fi := fill.FillIn(g, order.Order(p)); fi.Len() != 0 {
			t.Fatalf("expected empty fill-in on K_n for order %v, got %v", p, fi.Slice())
		}
		if !fill.IsPerfectEliminationOrder(g, order.Order(p)) {
			t.Fatalf("expected perfect elimination order on K_n for order %v", p)
		}
	})

	if want := 720; count != want { // 6!
		t.Fatalf("expected to visit %d permutations, visited %d", want, count)
	}
}
