package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/dkoval/graphway/core"
)

// ShortestPaths computes minimal-weight distances and one shortest-path
// tree from source to every reachable vertex of g.
//
// Returns a Result whose Dist and Prev maps hold entries only for reached
// vertices; see Result for the absence semantics. The graph is treated as
// read-only and is left untouched on every path, including failures.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. MaxDistance, if configured, must be ≥ 0 (ErrBadMaxDistance).
//  4. g must contain source (ErrVertexNotFound).
//
// A valid graph plus a valid source never fails: unreachable vertices are
// represented by absence, not by an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source string, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before touching any state.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if source == "" {
		return Result{}, ErrEmptySource
	}
	if cfg.MaxDistance < 0 {
		return Result{}, ErrBadMaxDistance
	}
	if !g.HasVertex(source) {
		return Result{}, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 3) Prepare the per-run state. Maps start empty: a vertex earns its
	//    entry the moment a finite distance is known for it.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}

	// 4) Seed with the source at distance 0 and run the main loop.
	r.init(source)
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return Result{Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single ShortestPaths execution. The
// priority queue is exclusive to this run and does not outlive it.
type runner struct {
	g       *core.Graph       // input graph; read-only during the run
	options Options           // configuration (MaxDistance)
	dist    map[string]int64  // vertex ID → best known distance from source
	prev    map[string]string // vertex ID → predecessor on a shortest path
	visited map[string]bool   // vertex ID → distance finalized
	pq      nodePQ            // min-heap of heap entries, possibly stale
}

// init records dist[source] = 0 and pushes the first heap entry.
func (r *runner) init(source string) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the smallest-distance entry and relaxes the
// extracted vertex's outgoing edges, until the heap is exhausted.
//
// Stale entries — duplicates left behind by lazy decrease-key — are
// recognized by their visited flag and skipped.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// A vertex already finalized can only reappear via a stale entry.
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each outgoing edge u→v and improves dist[v] when the path
// through u is strictly shorter than anything known for v. Improvements
// update prev[v] and push a fresh heap entry; the old entry, if any, stays
// behind as a stale duplicate.
//
// Assumes dist[u] is finalized.
func (r *runner) relax(u string) error {
	seq, err := r.g.Neighbors(u)
	if err != nil {
		// Only possible if the caller mutated g mid-run.
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	base := r.dist[u]
	for v, w := range seq {
		newDist := base + w

		// Vertices beyond the cap stay absent from the result maps.
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only: equal candidates neither update the
		// predecessor nor push duplicates. An absent entry counts as +∞.
		if cur, seen := r.dist[v]; seen && newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem pairs a vertex with the distance it was pushed at. Entries are
// immutable once pushed; improvement pushes a new entry instead.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, driven by
// container/heap. Under lazy decrease-key the heap may hold several entries
// for one vertex; all but the first extraction are stale.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x is always a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop after the
// minimum has been swapped to the end.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
