// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qecsim/core"
	"github.com/katalvlaran/qecsim/matching"
	"github.com/katalvlaran/qecsim/spacetime"
)

// quantum is the number of integer steps per smallest positive distance.
const quantum = 1024

type pairKey [2]string

func keyOf(a, b spacetime.Coord) pairKey {
	ai, bi := a.ID(), b.ID()
	if bi < ai {
		ai, bi = bi, ai
	}
	return pairKey{ai, bi}
}

// Decode matches the defects of g and returns the data qubits to toggle, ordered by (X, Y).
//
// Steps:
//  1. Collect candidate pairs from LocalDijkstra(g, m, d) for every defect d.
//  2. Build the reduced graph of candidates, weighted by negated distance.
//  3. Quantize and run a maximum-cardinality maximum-weight matching.
//  4. Expand every spatially separated matched pair into data-qubit corrections.
//  5. Clear the matched defects.
//
// A qubit crossed an even number of times cancels out. Decoding a graph without
// defects returns nil.
func Decode(g *spacetime.Graph, m int) ([]spacetime.Qubit, error) {
	if m < 1 {
		return nil, ErrBadNeighbourCount
	}
	defects := g.Defects()
	if len(defects) == 0 {
		return nil, nil
	}

	// 1) Candidates.
	reduced := core.NewGraph(core.WithWeighted())
	paths := make(map[pairKey]Path)
	for _, d := range defects {
		if err := reduced.AddVertex(d.ID()); err != nil {
			return nil, err
		}
		near, err := LocalDijkstra(g, m, d)
		if err != nil {
			return nil, err
		}
		// 2) Reduced graph; the first path found for a pair wins.
		for _, p := range near {
			k := keyOf(d, p.Target)
			if _, seen := paths[k]; seen {
				continue
			}
			paths[k] = p
			if _, err := reduced.AddEdge(d.ID(), p.Target.ID(), -p.Distance); err != nil {
				return nil, fmt.Errorf("decoder: reduced edge %v-%v: %w", d, p.Target, err)
			}
		}
	}

	// 3) Matching.
	ids := reduced.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	edges := quantize(reduced.Edges(), index)
	mate, err := matching.MaxWeight(edges, true)
	if err != nil {
		return nil, fmt.Errorf("decoder: matching: %w", err)
	}
	for i, id := range ids {
		if i >= len(mate) || mate[i] < 0 {
			return nil, fmt.Errorf("decoder: %s with m=%d: %w", id, m, ErrUnmatchedDefect)
		}
	}

	// 4) Expansion with toggle semantics.
	toggled := make(map[spacetime.Qubit]bool)
	for _, pr := range matching.Pairs(mate) {
		a, _ := g.Coord(ids[pr[0]])
		b, _ := g.Coord(ids[pr[1]])
		if a.X == b.X && a.Y == b.Y {
			continue
		}
		if err := expand(g, paths[keyOf(a, b)].Nodes, toggled); err != nil {
			return nil, err
		}
	}

	// 5) Clear.
	for _, d := range defects {
		if err := g.Clear(d); err != nil {
			return nil, err
		}
	}

	var out []spacetime.Qubit
	for q, on := range toggled {
		if on {
			out = append(out, q)
		}
	}
	spacetime.SortQubits(out)

	return out, nil
}

// quantize maps reduced-graph edges onto integer matching edges. Distances are
// scaled so the smallest positive one becomes quantum; the sign stays negative.
func quantize(es []*core.Edge, index map[string]int) []matching.Edge {
	unit := math.Inf(1)
	for _, e := range es {
		if d := -e.Weight; d > 0 && d < unit {
			unit = d
		}
	}
	if math.IsInf(unit, 1) {
		unit = 1
	}

	out := make([]matching.Edge, 0, len(es))
	for _, e := range es {
		w := int64(math.Round(-e.Weight / unit * quantum))
		out = append(out, matching.Edge{I: index[e.From], J: index[e.To], Weight: -w})
	}

	return out
}

// expand toggles the data qubit of every spatial step of nodes that does not
// join two boundary nodes.
func expand(g *spacetime.Graph, nodes []spacetime.Coord, toggled map[spacetime.Qubit]bool) error {
	for i := 1; i < len(nodes); i++ {
		u, v := nodes[i-1], nodes[i]
		if u.X == v.X && u.Y == v.Y {
			continue
		}
		ub, err := g.IsBoundary(u)
		if err != nil {
			return err
		}
		vb, err := g.IsBoundary(v)
		if err != nil {
			return err
		}
		if ub && vb {
			continue
		}
		q, err := g.EdgeToQubit(u, v)
		if err != nil {
			return fmt.Errorf("decoder: step %v-%v: %w", u, v, err)
		}
		toggled[q] = !toggled[q]
	}

	return nil
}
