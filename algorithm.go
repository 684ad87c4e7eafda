package graphway

import "github.com/dkoval/graphway/core"

// Algorithm is the capability every graph algorithm in this module
// implements. R is the algorithm-specific result type (for example
// dijkstra.Result); algorithm-specific inputs such as the source vertex are
// carried by the concrete implementation, fixed at construction time.
//
// Run executes the algorithm against g and returns its result or an error.
// Implementations treat g as read-only: it is never mutated by Run, so the
// same Graph may back any number of simultaneous Run calls.
//
// Callers pick a concrete implementation explicitly; there is no runtime
// registry and no dynamic lookup by name. The interface exists so that code
// orchestrating heterogeneous algorithms can hold them uniformly.
type Algorithm[R any] interface {
	Run(g *core.Graph) (R, error)
}
