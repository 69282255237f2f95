// Package fill implements the Rose–Tarjan FILL algorithm (spec.md §4.1):
// chordal completion of a simple, connected, undirected graph under a
// given elimination order.
//
// FILL is one algorithm exposed through three operations that share a
// single successor-set walk (original_source/src/fill.h structures the
// three C++ templates identically for the same reason):
//
//   - Fill mutates the graph, adding the fill-in edges directly.
//   - FillIn leaves the graph untouched and returns the fill-in edge set.
//   - IsPerfectEliminationOrder short-circuits on the first fill-in edge
//     it would need to add, returning false without ever building the
//     full successor structure past that point.
//
// All three share the run helper in fill.go; they differ only in what
// they do when a fill-in edge (m, w) is discovered.
package fill
