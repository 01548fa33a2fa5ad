// SPDX-License-Identifier: MIT

// Package matching computes maximum-weight matchings in general graphs.
//
// MaxWeight implements Edmonds' blossom algorithm with the primal-dual update
// scheme of Galil ("Efficient algorithms for finding maximum matching in graphs",
// 1986). All arithmetic is int64: callers that start from real-valued costs
// quantize them first (see decoder.Decode).
//
// Complexity: O(n³) time, O(n + m) memory.
//
// Errors:
//
//	ErrSelfLoop  - an edge (i, i).
//	ErrBadVertex - a negative vertex index.
package matching

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("matching: self-loop")

	// ErrBadVertex indicates a negative vertex index.
	ErrBadVertex = errors.New("matching: vertex index must be >= 0")
)

// Edge is an undirected weighted edge between vertices I and J.
type Edge struct {
	I, J   int
	Weight int64
}

// MaxWeight returns a maximum-weight matching of the graph given by edges.
//
// The result is a mate slice over vertices 0..n-1 (n = 1 + largest index):
// mate[v] is the vertex matched to v, or -1 when v is single.
//
// With maxCardinality, the matching is chosen among those of maximum cardinality.
// Weights are then shifted to be non-negative first; every maximum-cardinality
// matching has the same number of edges, so the optimum is unchanged.
//
// Parallel edges are allowed; the heavier one wins.
func MaxWeight(edges []Edge, maxCardinality bool) ([]int, error) {
	if len(edges) == 0 {
		return nil, nil
	}

	// Stage 1: validate and size.
	n := 0
	minW := int64(0)
	for k, e := range edges {
		if e.I < 0 || e.J < 0 {
			return nil, fmt.Errorf("matching: edge %d (%d,%d): %w", k, e.I, e.J, ErrBadVertex)
		}
		if e.I == e.J {
			return nil, fmt.Errorf("matching: edge %d (%d,%d): %w", k, e.I, e.J, ErrSelfLoop)
		}
		if e.I >= n {
			n = e.I + 1
		}
		if e.J >= n {
			n = e.J + 1
		}
		if e.Weight < minW {
			minW = e.Weight
		}
	}

	// Stage 2: shift for max-cardinality runs.
	work := edges
	if maxCardinality && minW < 0 {
		work = make([]Edge, len(edges))
		for k, e := range edges {
			work[k] = Edge{I: e.I, J: e.J, Weight: e.Weight - minW}
		}
	}

	// Stage 3: solve.
	s := newSolver(work, n, maxCardinality)
	s.solve()

	return s.result(), nil
}

// Pairs converts a mate slice into the list of matched pairs (i < j), ordered by i.
func Pairs(mate []int) [][2]int {
	var out [][2]int
	for i, j := range mate {
		if j > i {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// Weight sums the weights of edges whose endpoints are matched to each other.
// Parallel edges count once, with their maximum weight.
func Weight(edges []Edge, mate []int) int64 {
	best := make(map[[2]int]int64)
	for _, e := range edges {
		if e.I >= len(mate) || e.J >= len(mate) || mate[e.I] != e.J {
			continue
		}
		key := [2]int{e.I, e.J}
		if e.J < e.I {
			key = [2]int{e.J, e.I}
		}
		if w, ok := best[key]; !ok || e.Weight > w {
			best[key] = e.Weight
		}
	}
	var total int64
	for _, w := range best {
		total += w
	}
	return total
}
