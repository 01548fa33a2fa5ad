// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge lifecycle and query APIs.
//   - Validate constraint enforcement (weights, loops, parallel edges).

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qecsim/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, []string{"A", "B"}, g.Vertices())
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))
	require.False(t, g.HasVertex("Z"))
}

// TestGraph_AddEdge_Constraints covers weight, loop and multi-edge rules.
func TestGraph_AddEdge_Constraints(t *testing.T) {
	cases := []struct {
		name string
		opts []core.GraphOption
		from string
		to   string
		w    float64
		want error
	}{
		{"empty from", nil, "", "B", 0, core.ErrEmptyVertexID},
		{"unweighted non-zero", nil, "A", "B", 1, core.ErrBadWeight},
		{"NaN", []core.GraphOption{core.WithWeighted()}, "A", "B", math.NaN(), core.ErrBadWeight},
		{"Inf", []core.GraphOption{core.WithWeighted()}, "A", "B", math.Inf(1), core.ErrBadWeight},
		{"loop", nil, "A", "A", 0, core.ErrLoopNotAllowed},
		{"weighted loop", []core.GraphOption{core.WithWeighted()}, "B", "B", 1, core.ErrLoopNotAllowed},
		{"weighted ok", []core.GraphOption{core.WithWeighted()}, "A", "B", 0.25, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to, tc.w)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestGraph_ParallelEdges checks that a second edge between the same vertices,
// in either order, is rejected and the first one is kept.
func TestGraph_ParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	first, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	require.Equal(t, "e1", first)
	_, err = g.AddEdge("B", "A", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	require.Equal(t, 1, g.EdgeCount())

	e, err := g.EdgeBetween("B", "A")
	require.NoError(t, err)
	require.Equal(t, first, e.ID)
	require.Equal(t, 1.0, e.Weight)

	_, err = g.EdgeBetween("A", "C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_Undirected_Mirror ensures edges are visible from both ends.
func TestGraph_Undirected_Mirror(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 0.5)
	require.NoError(t, err)
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))

	e, err := g.EdgeBetween("A", "B")
	require.NoError(t, err)
	require.Equal(t, "A", e.Other("B"))
	require.Equal(t, "B", e.Other("A"))

	for _, id := range []string{"A", "B"} {
		nb, err := g.Neighbors(id)
		require.NoError(t, err)
		require.Len(t, nb, 1)
	}
	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, ids)
}

// TestGraph_Neighbors_Order checks sorting and error sentinels.
func TestGraph_Neighbors_Order(t *testing.T) {
	g := core.NewGraph()
	for _, to := range []string{"D", "B", "C"} {
		_, err := g.AddEdge("A", to, 0)
		require.NoError(t, err)
	}
	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		require.Less(t, edges[i-1].ID, edges[i].ID)
	}
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C", "D"}, ids)

	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Neighbors("Q")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
