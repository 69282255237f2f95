// SPDX-License-Identifier: MIT
package lexp_test

import (
	"testing"

	"github.com/katalvlaran/chordal/graph"
	"github.com/katalvlaran/chordal/lexp"
)

// BenchmarkLexP measures LexP over K_64, the same shape BenchmarkFillIn
// uses, so the two can be compared directly (original_source/test/bench/
// bench_time.cc benchmarks both against the same generated graphs).
func BenchmarkLexP(b *testing.B) {
	const n = 64

	g := graph.New()
	vs := make([]string, n)
	for i := 0; i < n; i++ {
		vs[i] = string(rune('a' + i))
		_ = g.AddVertex(vs[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(vs[i], vs[j])
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lexp.LexP(g)
	}
}
