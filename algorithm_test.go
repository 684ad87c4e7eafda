// Package graphway_test exercises the Algorithm capability contract: a
// concrete engine held and run through the interface, selected at
// construction time.
package graphway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/graphway"
	"github.com/dkoval/graphway/core"
	"github.com/dkoval/graphway/dijkstra"
)

func TestAlgorithm_RunThroughInterface(t *testing.T) {
	g := core.NewGraph(core.WithVertices("A", "B", "C"))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 2))

	// The caller picks the concrete variant; downstream code only sees the
	// capability.
	var alg graphway.Algorithm[dijkstra.Result] = dijkstra.New("A")

	res, err := alg.Run(g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Dist["C"])
	assert.Equal(t, "B", res.Prev["C"])
}

func TestAlgorithm_SharedGraphAcrossEngines(t *testing.T) {
	// One immutable graph, several engines with different sources: Run
	// never mutates the graph, so results are independent.
	g := core.NewGraph(core.WithVertices("A", "B", "C"))
	require.NoError(t, g.AddUndirectedEdge("A", "B", 1))
	require.NoError(t, g.AddUndirectedEdge("B", "C", 1))

	engines := []graphway.Algorithm[dijkstra.Result]{
		dijkstra.New("A"),
		dijkstra.New("C"),
	}

	resA, err := engines[0].Run(g)
	require.NoError(t, err)
	resC, err := engines[1].Run(g)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resA.Dist["C"])
	assert.Equal(t, int64(2), resC.Dist["A"])
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}
