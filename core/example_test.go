// Package core_test provides runnable examples for building and querying a
// Graph.
package core_test

import (
	"fmt"

	"github.com/dkoval/graphway/core"
)

// ExampleGraph_Neighbors builds a tiny directed graph and walks the
// outgoing edges of one vertex in deterministic order.
func ExampleGraph_Neighbors() {
	// Register all vertices first: edges never create vertices implicitly.
	g := core.NewGraph(core.WithVertices("A", "B", "C"))

	// A→B costs 1, A→C costs 4.
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 4)

	seq, err := g.Neighbors("A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for id, w := range seq {
		fmt.Printf("A→%s weight=%d\n", id, w)
	}
	// Output:
	// A→B weight=1
	// A→C weight=4
}

// ExampleGraph_AddUndirectedEdge shows undirected semantics: one call
// inserts both directions.
func ExampleGraph_AddUndirectedEdge() {
	g := core.NewGraph(core.WithVertices("A", "B"))
	_ = g.AddUndirectedEdge("A", "B", 7)

	fmt.Println(g.HasEdge("A", "B"), g.HasEdge("B", "A"))
	// Output: true true
}
