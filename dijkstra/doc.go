// Package dijkstra provides Dijkstra's shortest-path algorithm on core.Graph with
// non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, "impassable" edge
//     thresholds, and early stopping once k marked vertices are settled.
//
// The early stop is what the decoder builds on: from a defect it searches only
// as far as the m nearest other defects, so each search touches a local
// neighbourhood of the space-time graph instead of the whole lattice.
//
// Usage:
//
//	res, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("A"),
//	    dijkstra.WithReturnPath(),
//	    dijkstra.WithTargets(isDefect, m+1),
//	)
//	path := res.PathTo(res.Targets[1]) // target first, source last
package dijkstra
