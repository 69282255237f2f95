// Package lexm implements the Rose–Tarjan LEX M algorithm (spec.md
// §4.2): a minimal elimination ordering computed via labeled
// breadth-first reachability.
//
// LexM numbers vertices from n-1 down to 0. Each iteration picks the
// highest-labeled unnumbered vertex, numbers it, then does a leveled
// BFS over the unnumbered subgraph to raise the labels of every vertex
// reachable through a chain whose intermediate labels stay below the
// reach level being explored — this is what makes the resulting
// fill-in minimal rather than merely chordal-compatible (see the
// "Why BFS by ascending l" note in spec.md §4.2).
//
// Relabeling at the end of each iteration uses radixsort.Sort to
// re-rank the unnumbered vertices by label in amortized linear time;
// this is the only reason LEX M achieves its stated linear amortized
// relabeling cost across all n iterations (spec.md §4.4).
package lexm
