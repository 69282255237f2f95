// Package graph provides the minimal graph view required by the
// vertex-elimination algorithms in this module: a simple, connected,
// undirected graph over string-identified vertices.
//
// Graph is deliberately thin. It supports exactly the operations the
// elimination algorithms need: enumerate vertices, enumerate neighbors
// of a vertex, report |V| and |E|, and add an edge between two existing
// vertices (used only by fill.Fill). It does not support weights,
// directedness, self-loops, or parallel edges — those are out of scope
// for the elimination algorithms this module implements.
//
// Unlike a concurrent service-style graph, Graph carries no internal
// locking. The algorithms that consume it are single-threaded and
// synchronous by contract (see the fill, lexm, lexp packages); a caller
// that wants to share one Graph across goroutines must synchronize
// externally.
package graph
