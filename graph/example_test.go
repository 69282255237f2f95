// SPDX-License-Identifier: MIT
package graph_test

import (
	"fmt"

	"github.com/katalvlaran/chordal/graph"
)

// ExampleGraph demonstrates basic construction, mutation, and queries.
func ExampleGraph() {
	g := graph.New()
	for _, v := range []string{"A", "B", "C"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edge A-B:", g.HasEdge("A", "B"))
	fmt.Println("edge A-C:", g.HasEdge("A", "C"))
	fmt.Println("vertex count:", g.VertexCount(), "edge count:", g.EdgeCount())

	// Output:
	// vertices: [A B C]
	// edge A-B: true
	// edge A-C: false
	// vertex count: 3 edge count: 2
}

// ExampleGraph_Clone shows that mutating a clone never affects the original.
func ExampleGraph_Clone() {
	g := graph.New()
	for _, v := range []string{"A", "B"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B")

	clone := g.Clone()
	_ = clone.AddVertex("C")
	_ = clone.AddEdge("B", "C")

	fmt.Println("original edge count:", g.EdgeCount())
	fmt.Println("clone edge count:", clone.EdgeCount())

	// Output:
	// original edge count: 1
	// clone edge count: 2
}

// ExampleGraph_IsConnected demonstrates the debug-time connectivity check.
func ExampleGraph_IsConnected() {
	g := graph.New()
	for _, v := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("C", "D")

	fmt.Println("connected before bridge:", g.IsConnected())

	_ = g.AddEdge("B", "C")
	fmt.Println("connected after bridge:", g.IsConnected())

	// Output:
	// connected before bridge: false
	// connected after bridge: true
}
