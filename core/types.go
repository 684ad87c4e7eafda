// Package core: central Graph and Edge types, sentinel errors, and the
// NewGraph constructor with its functional options.
//
// The concurrency model and the full method catalogue are documented in
// doc.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex that was
	// never registered with AddVertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was rejected at
	// insertion time. Shortest-path correctness requires weights ≥ 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is a directed, weighted connection between two registered vertices.
//
// Weight is always ≥ 0; zero-weight edges are valid and traversable.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative cost of traversing the edge.
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVertices pre-registers the given vertex IDs. Empty IDs are ignored
// here; use AddVertex when the error matters.
func WithVertices(ids ...string) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if id != "" {
				g.ensureVertex(id)
			}
		}
	}
}

// WithCapacityHint pre-sizes the vertex table for n vertices. Purely an
// allocation hint; n ≤ 0 is ignored.
func WithCapacityHint(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		adj := make(map[string]map[string]int64, n)
		for id, row := range g.adj {
			adj[id] = row
		}
		g.adj = adj
	}
}

// Graph is the in-memory weighted adjacency structure.
//
// adj maps a registered vertex ID to its outgoing edges (target → weight).
// Every registered vertex has an adj entry, possibly empty, so adjacency
// membership doubles as the vertex set. mu guards adj and edgeCount.
type Graph struct {
	mu sync.RWMutex

	adj       map[string]map[string]int64 // from → (to → weight)
	edgeCount int
}

// NewGraph creates an empty Graph and applies the given options in order.
// Complexity: O(len(opts) work).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ensureVertex registers id if absent. Callers must hold g.mu for writing,
// except inside NewGraph where the Graph has not escaped yet.
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.adj[id]; !exists {
		g.adj[id] = make(map[string]int64)
	}
}
