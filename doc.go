// Package chordal computes chordal completions and elimination orders
// for simple, connected, undirected graphs, implementing the
// Rose-Tarjan vertex-elimination algorithms.
//
// What is chordal?
//
//	A small library covering the classic vertex-elimination toolkit:
//		• FILL:  chordal completion, fill-in, and perfect-order testing
//		• LEX M: minimal elimination ordering via labeled BFS reachability
//		• LEX P: perfect elimination ordering for already-chordal graphs
//
// Everything is organized under six subpackages plus a test-support
// generator:
//
//	graph/     — the undirected Graph type the algorithms operate on
//	order/     — Order (vertex permutation) and EdgeSet types shared by fill/lexm/lexp
//	fill/      — Fill, FillIn, IsPerfectEliminationOrder
//	lexm/      — LexM, the minimal elimination ordering algorithm
//	lexp/      — LexP, the perfect elimination ordering algorithm
//	radixsort/ — the generic LSD radix sort LexM uses to relabel in amortized linear time
//	builder/   — Complete, RandomConnected, RandomChordal and RandomOrder generators for tests and examples
//
// The core algorithms operate on a closed, precondition-enforced world:
// g must be simple, connected, and undirected, and an Order passed to
// fill must already be a permutation of g's vertices. Violating a
// precondition is a caller bug, not a reported error; only graph and
// builder, which receive untrusted input, return errors.
//
//	go get github.com/katalvlaran/chordal
package chordal
