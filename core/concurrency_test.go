// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modgraph/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and that
// every edge ID is unique.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	ids := make([]string, num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			eid, err := g.AddEdge("X", fmt.Sprintf("V%d", i), complex(float64(i), 0))
			require.NoError(t, err)
			ids[i] = eid
		}(i)
	}
	wg.Wait()

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)

	seen := make(map[string]struct{}, num)
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	require.Len(t, seen, num, "edge IDs must be unique")
}

// TestConcurrentReadWrite mixes readers and writers; run with -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge(fmt.Sprintf("A%d", i), "Hub", 0)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.HasEdge("A0", "Hub")
		}()
	}
	wg.Wait()

	in := 0
	for _, e := range g.Edges() {
		if e.To == "Hub" {
			in++
		}
	}
	require.Equal(t, rounds, in)
	require.Equal(t, rounds+1, g.VertexCount())
}
