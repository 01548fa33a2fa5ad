package surfacecode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qecsim/spacetime"
	"github.com/katalvlaran/qecsim/surfacecode"
)

func qs(pairs ...int) []spacetime.Qubit {
	out := make([]spacetime.Qubit, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, spacetime.Qubit{X: pairs[i], Y: pairs[i+1]})
	}
	return out
}

func TestNewLayout_Validation(t *testing.T) {
	for _, d := range []int{-1, 0, 1, 2} {
		_, err := surfacecode.NewLayout(d)
		require.ErrorIs(t, err, surfacecode.ErrBadDistance, "d=%d", d)
	}
	for _, d := range []int{4, 6} {
		_, err := surfacecode.NewLayout(d)
		require.ErrorIs(t, err, surfacecode.ErrEvenDistance, "d=%d", d)
	}
}

func TestNewLayout_Distance3(t *testing.T) {
	l, err := surfacecode.NewLayout(3)
	require.NoError(t, err)

	require.Len(t, l.Data(), 9)
	require.Empty(t, cmp.Diff(qs(-1, 3, 1, 1, 3, 3, 5, 1), l.Stabilizers(surfacecode.KindZ)))
	require.Empty(t, cmp.Diff(qs(1, -1, 3, 1, 1, 3, 3, 5), l.Stabilizers(surfacecode.KindX)))
	require.Empty(t, cmp.Diff(qs(-1, -1, 3, -1, 1, 5, 5, 5), l.Boundary(surfacecode.KindZ)))
	require.Empty(t, cmp.Diff(qs(-1, 1, -1, 5, 5, -1, 5, 3), l.Boundary(surfacecode.KindX)))
	require.Len(t, l.Qubits(), 17)
	require.True(t, l.IsData(spacetime.Qubit{X: 4, Y: 4}))
	require.False(t, l.IsData(spacetime.Qubit{X: 1, Y: 1}))
}

func TestNewLayout_Counts(t *testing.T) {
	for _, d := range []int{3, 5, 7, 9} {
		l, err := surfacecode.NewLayout(d)
		require.NoError(t, err)
		require.Equal(t, d, l.Distance())
		require.Len(t, l.Data(), d*d)
		nz, nx := len(l.Stabilizers(surfacecode.KindZ)), len(l.Stabilizers(surfacecode.KindX))
		require.Equal(t, d*d-1, nz+nx, "d=%d", d)
		require.Equal(t, nz, nx, "d=%d", d)
		require.Len(t, l.Boundary(surfacecode.KindZ), d+1)
		require.Len(t, l.Boundary(surfacecode.KindX), d+1)
	}
}

// TestGraph_SpatialEdgesCoverData checks that, in every round and in the Z
// readout layer, each data qubit is crossed by exactly one spatial edge of each
// defect graph.
func TestGraph_SpatialEdgesCoverData(t *testing.T) {
	for _, d := range []int{3, 5} {
		opts := surfacecode.DefaultOptions()
		opts.Distance, opts.Rounds = d, 2
		c, err := surfacecode.New(opts)
		require.NoError(t, err)

		for _, k := range []surfacecode.Kind{surfacecode.KindZ, surfacecode.KindX} {
			g := c.Graph(k)
			last := opts.Rounds - 1
			if k == surfacecode.KindZ {
				last = opts.Rounds
			}
			for round := 0; round <= last; round++ {
				seen := map[spacetime.Qubit]int{}
				for _, e := range g.Topology().Edges() {
					u, _ := g.Coord(e.From)
					v, _ := g.Coord(e.To)
					if u.T != round || v.T != round || u.Spatial() == v.Spatial() {
						continue
					}
					ub, err := g.IsBoundary(u)
					require.NoError(t, err)
					vb, err := g.IsBoundary(v)
					require.NoError(t, err)
					if ub && vb {
						continue
					}
					q, err := g.EdgeToQubit(u, v)
					require.NoError(t, err)
					seen[q]++
				}
				require.Len(t, seen, d*d, "d=%d kind=%s round=%d", d, k, round)
				for q, n := range seen {
					require.True(t, c.Layout().IsData(q), "%v", q)
					require.Equal(t, 1, n, "%v crossed %d times", q, n)
				}
			}
		}
	}
}

func TestGraph_ClosingLayers(t *testing.T) {
	opts := surfacecode.DefaultOptions()
	opts.Rounds = 3
	c, err := surfacecode.New(opts)
	require.NoError(t, err)

	t.Run("X graph closes with boundary", func(t *testing.T) {
		g := c.Graph(surfacecode.KindX)
		require.Equal(t, 3, g.Rounds())
		for _, s := range c.Layout().Stabilizers(surfacecode.KindX) {
			b, err := g.IsBoundary(spacetime.Coord{X: s.X, Y: s.Y, T: 3})
			require.NoError(t, err)
			require.True(t, b)
			b, err = g.IsBoundary(spacetime.Coord{X: s.X, Y: s.Y, T: 2})
			require.NoError(t, err)
			require.False(t, b)
		}
	})

	t.Run("Z graph closes with the readout layer", func(t *testing.T) {
		g := c.Graph(surfacecode.KindZ)
		require.Equal(t, 3, g.Rounds())
		for _, s := range c.Layout().Stabilizers(surfacecode.KindZ) {
			top := spacetime.Coord{X: s.X, Y: s.Y, T: 3}
			b, err := g.IsBoundary(top)
			require.NoError(t, err)
			require.False(t, b)
			_, err = g.EdgeWeight(spacetime.Coord{X: s.X, Y: s.Y, T: 2}, top)
			require.NoError(t, err)
			require.False(t, g.HasNode(spacetime.Coord{X: s.X, Y: s.Y, T: 4}))
		}
		for _, q := range c.Layout().Boundary(surfacecode.KindZ) {
			b, err := g.IsBoundary(spacetime.Coord{X: q.X, Y: q.Y, T: 3})
			require.NoError(t, err)
			require.True(t, b)
		}
	})
}

// TestGraph_DiagonalEdges pins the diagonal edge of one shared data qubit per
// kind. In the Z graph (4,2) meets (3,3) before (5,1); in the X graph (2,2)
// meets (3,1) before (1,3). The later check fires one round earlier.
func TestGraph_DiagonalEdges(t *testing.T) {
	opts := surfacecode.DefaultOptions()
	opts.Rounds = 3
	c, err := surfacecode.New(opts)
	require.NoError(t, err)
	at := func(x, y, t int) spacetime.Coord { return spacetime.Coord{X: x, Y: y, T: t} }

	z := c.Graph(surfacecode.KindZ)
	for round := 0; round < opts.Rounds; round++ {
		w, err := z.EdgeWeight(at(5, 1, round), at(3, 3, round+1))
		require.NoError(t, err, "round %d", round)
		require.Equal(t, opts.ErrorRate, w)
		_, err = z.EdgeWeight(at(3, 3, round), at(5, 1, round+1))
		require.Error(t, err, "round %d", round)

		q, err := z.EdgeToQubit(at(5, 1, round), at(3, 3, round+1))
		require.NoError(t, err)
		require.Equal(t, spacetime.Qubit{X: 4, Y: 2}, q)
	}

	x := c.Graph(surfacecode.KindX)
	for round := 0; round < opts.Rounds-1; round++ {
		_, err := x.EdgeWeight(at(1, 3, round), at(3, 1, round+1))
		require.NoError(t, err, "round %d", round)
		_, err = x.EdgeWeight(at(3, 1, round), at(1, 3, round+1))
		require.Error(t, err, "round %d", round)
	}
	_, err = x.EdgeWeight(at(1, 3, opts.Rounds-1), at(3, 1, opts.Rounds))
	require.Error(t, err, "no diagonal into the closing layer")
}
