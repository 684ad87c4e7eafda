package dijkstra

import (
	"github.com/dkoval/graphway"
	"github.com/dkoval/graphway/core"
)

// Engine adapts ShortestPaths to the graphway.Algorithm capability. The
// source vertex and any options are fixed at construction; Run then only
// needs the graph, so one Engine can be applied to any number of graphs.
type Engine struct {
	source string
	opts   []Option
}

// compile-time check that Engine satisfies the capability contract.
var _ graphway.Algorithm[Result] = (*Engine)(nil)

// New returns an Engine that computes shortest paths from source with the
// given options applied on every Run.
func New(source string, opts ...Option) *Engine {
	return &Engine{source: source, opts: opts}
}

// Run executes ShortestPaths against g. g is read-only to the run; the
// same graph may serve concurrent Run calls.
func (e *Engine) Run(g *core.Graph) (Result, error) {
	return ShortestPaths(g, e.source, e.opts...)
}
