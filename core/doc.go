// Package core provides the weighted, adjacency-based in-memory Graph that
// every graphway algorithm consumes.
//
// The Graph G = (V,E) is deliberately small in surface and strict in
// contract:
//
//   - Vertices are opaque, non-empty string IDs, unique per Graph.
//   - Edges are directed (from→to) with a non-negative int64 weight.
//     Undirected semantics = insert both directions; AddUndirectedEdge
//     does so atomically.
//   - Edge insertion never creates vertices implicitly: both endpoints
//     must have been registered with AddVertex first, otherwise
//     ErrVertexNotFound.
//   - Negative weights are rejected at insertion (ErrNegativeWeight);
//     downstream shortest-path correctness depends on this invariant, so
//     it is enforced here rather than documented away.
//   - Re-adding a vertex is a no-op. Re-adding an edge (same from→to)
//     overwrites the stored weight: the adjacency is map-backed and does
//     not represent parallel edges.
//   - A single sync.RWMutex guards all state, so concurrent readers —
//     including simultaneous algorithm runs over one Graph — are safe.
//     Mutating a Graph while an algorithm reads it is a caller error.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) error          // O(1)
//	AddUndirectedEdge(a, b string, weight int64) error    // O(1), atomic pair
//	HasEdge(from, to string) bool                         // O(1)
//	Weight(from, to string) (int64, bool)                 // O(1)
//
//	// Query
//	Neighbors(id string) (iter.Seq2[string, int64], error) // O(d log d) snapshot
//	Vertices() []string                                    // O(V log V), sorted
//	Edges() []Edge                                         // O(E log E), sorted
//	VertexCount() int                                      // O(1)
//	EdgeCount() int                                        // O(1)
//
//	// Cloning
//	Clone() *Graph                      // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – referenced vertex was never registered
//	ErrNegativeWeight – negative edge weight rejected at insertion
//
// Neighbors returns a restartable iter.Seq2 over a sorted snapshot: ranging
// over it twice yields the same pairs, and mutation after the call does not
// disturb an iteration already obtained.
package core
