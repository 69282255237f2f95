// Package order defines the small data model shared by the elimination
// algorithms: a vertex order (a permutation of V), its index map (the
// bijection from vertex to 0..n-1 position), and a canonicalized edge
// set (spec.md §3).
//
// Callers construct an Order (or get one from lexm/lexp) and pass it to
// fill; the Index that fill builds from it is internal to one call, and
// FillIn hands its EdgeSet back to the caller. order exists so fill,
// lexm and lexp share one definition instead of three.
package order
