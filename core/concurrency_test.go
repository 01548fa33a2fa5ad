package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qecsim/core"
)

// TestGraph_ConcurrentAddEdge hammers AddEdge/Neighbors from many goroutines and
// checks that every edge lands exactly once with a unique ID.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const workers, per = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			hub := "hub" + strconv.Itoa(w)
			for i := 0; i < per; i++ {
				_, err := g.AddEdge(hub, hub+"-"+strconv.Itoa(i), float64(i))
				assert.NoError(t, err)
				_, err = g.Neighbors(hub)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*per, g.EdgeCount())
	require.Len(t, g.Vertices(), workers*(per+1))
	seen := make(map[string]bool)
	for _, e := range g.Edges() {
		require.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}
