// Package graphway is a small, embeddable toolkit of classical graph
// algorithms behind a single uniform capability.
//
// What is graphway?
//
//	A thread-safe, dependency-free library for single-shot, in-memory
//	graph queries:
//		• Core primitives: build weighted graphs vertex by vertex, edge by edge
//		• Shortest paths: Dijkstra with lazy decrease-key (dijkstra/)
//		• One capability contract: every algorithm is an Algorithm[R]
//
// graphway is a library, not a tool: it has no CLI, no wire format and no
// persistence. The caller assembles a core.Graph in memory, picks a
// concrete algorithm, runs it, and consumes a structured result.
//
// Package layout:
//
//	core/     — the weighted adjacency Graph, Edge, and sentinel errors
//	dijkstra/ — single-source shortest paths (distances + predecessors)
//
// The capability contract lives in this root package: Algorithm[R] exposes
// a single Run operation over a *core.Graph. Concrete algorithms are
// selected explicitly at construction time; there is no global registry.
// Dijkstra is the only implementer today. BFS, DFS, A*, Bellman-Ford and
// Floyd-Warshall are planned as further implementers of the same contract.
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──1──D
//
//	dijkstra.ShortestPaths from A yields dist[D]=3 via A→B→D.
package graphway
