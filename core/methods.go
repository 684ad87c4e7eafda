// Package core: Graph method implementations.
//
// All operations are O(1) map work plus, for snapshot queries, an O(n log n)
// sort for deterministic ordering. A single RWMutex keeps concurrent readers
// cheap; writers are expected to be done before any algorithm runs.
package core

import (
	"iter"
	"sort"
)

// AddVertex registers a vertex with the given ID.
// Re-adding an existing ID is a no-op: vertex registration is idempotent,
// so builders may re-submit IDs freely without tracking what they already
// added. Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID is registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adj[id]

	return exists
}

// AddEdge inserts the directed edge from→to with the given weight.
//
// Both endpoints must already be registered: edge insertion never creates
// vertices implicitly (ErrVertexNotFound otherwise). Negative weights are
// rejected with ErrNegativeWeight; zero weights are valid. Self-loops are
// permitted. Re-adding an existing from→to edge overwrites its weight.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	row, ok := g.adj[from]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok = g.adj[to]; !ok {
		return ErrVertexNotFound
	}

	if _, exists := row[to]; !exists {
		g.edgeCount++
	}
	row[to] = weight

	return nil
}

// AddUndirectedEdge inserts both a→b and b→a with the given weight, as one
// atomic operation: on any error neither direction is inserted. Validation
// matches AddEdge. A self-pair (a == b) stores a single loop edge.
// Complexity: O(1).
func (g *Graph) AddUndirectedEdge(a, b string, weight int64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	rowA, ok := g.adj[a]
	if !ok {
		return ErrVertexNotFound
	}
	rowB, ok := g.adj[b]
	if !ok {
		return ErrVertexNotFound
	}

	if _, exists := rowA[b]; !exists {
		g.edgeCount++
	}
	rowA[b] = weight
	if a != b {
		if _, exists := rowB[a]; !exists {
			g.edgeCount++
		}
		rowB[a] = weight
	}

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of the directed edge from→to, and whether the
// edge exists. Missing vertices simply report false.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	if from == "" || to == "" {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[from][to]

	return w, ok
}

// Neighbors returns a lazy, finite, restartable sequence of
// (neighbor, weight) pairs for the outgoing edges of id, in ascending
// neighbor-ID order. The sequence iterates a snapshot taken at call time,
// so later mutation of the Graph does not disturb it, and ranging over the
// same sequence twice yields identical pairs.
// Returns ErrEmptyVertexID for "" and ErrVertexNotFound for unknown IDs.
// Complexity: O(d log d) for the snapshot; O(1) per yielded pair.
func (g *Graph) Neighbors(id string) (iter.Seq2[string, int64], error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	row, ok := g.adj[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	// Snapshot under the read lock; the yield loop below runs without it.
	snap := make([]Edge, 0, len(row))
	for to, w := range row {
		snap = append(snap, Edge{From: id, To: to, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(snap, func(i, j int) bool { return snap[i].To < snap[j].To })

	return func(yield func(string, int64) bool) {
		for _, e := range snap {
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}, nil
}

// Vertices returns all registered vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Edges returns a snapshot of all edges, sorted by (From, To) for
// reproducible ordering.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, row := range g.adj {
		for to, w := range row {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns the number of registered vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of stored directed edges (an undirected
// insertion counts twice, a loop once). Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the Graph. The copy shares no state with the
// original, so one side may mutate while the other serves queries.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		adj:       make(map[string]map[string]int64, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for from, row := range g.adj {
		cr := make(map[string]int64, len(row))
		for to, w := range row {
			cr[to] = w
		}
		c.adj[from] = cr
	}

	return c
}
