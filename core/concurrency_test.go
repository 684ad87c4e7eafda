// Package core_test verifies thread-safety of core.Graph under concurrent
// operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoval/graphway/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every edge appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithVertices("X"))
	const num = 200
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id)))
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.EdgeCount())

	seq, err := g.Neighbors("X")
	require.NoError(t, err)
	count := 0
	for range seq {
		count++
	}
	require.Equal(t, num, count)
}

// TestConcurrentReaders runs many simultaneous read-only queries over one
// immutable graph; no writer is active, so results must be stable.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph(core.WithVertices("A", "B", "C", "D"))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 3))

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			require.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
			seq, err := g.Neighbors("B")
			require.NoError(t, err)
			for id, w := range seq {
				require.Equal(t, "C", id)
				require.Equal(t, int64(2), w)
			}
		}()
	}
	wg.Wait()
}

// TestConcurrentIterationDuringMutation checks that a Neighbors sequence
// obtained before mutation stays valid while writers run: iteration sees
// the snapshot, never a torn state.
func TestConcurrentIterationDuringMutation(t *testing.T) {
	g := core.NewGraph(core.WithVertices("A", "B"))
	require.NoError(t, g.AddEdge("A", "B", 1))

	seq, err := g.Neighbors("A")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			id := fmt.Sprintf("W%d", i)
			require.NoError(t, g.AddVertex(id))
			require.NoError(t, g.AddEdge("A", id, 1))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			n := 0
			for range seq {
				n++
			}
			require.Equal(t, 1, n)
		}
	}()
	wg.Wait()
}
