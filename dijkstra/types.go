// Package dijkstra: result type, sentinel errors, and configuration options
// for the shortest-path engine.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrVertexNotFound if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance if WithMaxDistance was given a negative cap.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPaths(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("distance to B: %d via %s\n", res.Dist["B"], res.Prev["B"])
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source vertex does not exist in
	// the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result holds the outcome of one ShortestPaths run.
//
// Both maps contain entries only for vertices reached from the source:
// absence means unreachable (infinite distance), never zero. The source
// itself always appears in Dist with distance 0 and never appears in Prev.
type Result struct {
	// Dist maps vertex ID → minimal total edge weight from the source.
	Dist map[string]int64

	// Prev maps vertex ID → its predecessor on one shortest path from the
	// source. When several equally short paths exist, which predecessor is
	// recorded is unspecified.
	Prev map[string]string
}

// PathTo reconstructs one shortest path from the source to target by
// walking Prev backwards. The returned slice starts at the source and ends
// at target; ok is false when target was not reached (target is then
// absent from the Result maps).
// Complexity: O(len(path)).
func (r Result) PathTo(target string) (path []string, ok bool) {
	if _, reached := r.Dist[target]; !reached {
		return nil, false
	}
	// Walk back to the source, which is the only reached vertex without a
	// predecessor. Prev chains are acyclic and at most V long.
	path = []string{target}
	for cur := target; ; {
		p, has := r.Prev[cur]
		if !has {
			break
		}
		path = append(path, p)
		cur = p
	}
	// Reverse in place: source first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Options configures the behavior of ShortestPaths.
//
// MaxDistance – cap on distances to explore; vertices whose shortest
// distance exceeds it stay absent from the Result. Must be ≥ 0. Default is
// math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64
}

// Option is a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithMaxDistance sets a maximum distance cap. Vertices whose shortest
// distance exceeds max are not finalized and stay absent from the Result.
// Negative values surface as ErrBadMaxDistance when the engine runs.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the Options ShortestPaths starts from before
// applying functional overrides.
//
// Defaults:
//   - MaxDistance: math.MaxInt64 (explore everything reachable).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
	}
}
