// Package dijkstra implements single-source shortest paths on weighted
// graphs with non-negative edge weights.
//
// ShortestPaths processes vertices in order of increasing distance from the
// source using a min-heap priority queue, relaxing outgoing edges and
// recording improved distances and predecessors.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E; simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst case for heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: an improved distance pushes a duplicate heap entry;
//     stale entries are discarded on extraction instead of being updated in
//     place. Tie-break between equal-distance entries is unspecified and
//     never affects final distances, only which of several equally short
//     predecessors gets recorded.
//   - Unreached vertices are absent from both result maps; absence means
//     "no path", never "distance zero". The engine therefore allocates no
//     per-vertex state up front and costs nothing for unreachable regions.
//   - core.Graph rejects negative weights at insertion, so the engine does
//     not re-scan edges; weights are trusted to be ≥ 0.
//   - Distances are int64 sums of int64 weights. The maximum representable
//     distance is math.MaxInt64; overflow past it is a documented design
//     limit, not a runtime-checked condition.
//   - WithMaxDistance bounds exploration: vertices whose shortest distance
//     would exceed the cap stay absent, capping worst-case latency for
//     callers that only care about a neighborhood.
package dijkstra
