// Package core provides a thread-safe in-memory Graph with a small API surface.
//
// The Graph G = (V,E) is undirected and simple (no loops, no parallel edges):
//
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Constant-time edge membership via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", …)
//
// Deterministic iteration: Vertices(), Edges(), Neighbors() and NeighborIDs() all
// return sorted results, so algorithms layered on top (dijkstra, the defect graph,
// the decoder) reproduce bit-for-bit across runs with the same seed.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	AddEdge(from, to string, weight float64) (string, error)    // O(1)
//	HasEdge(from, to string) bool                               // O(1)
//	EdgeBetween(from, to string) (*Edge, error)                 // O(1)
//	Neighbors(id string) ([]*Edge, error)                       // O(d log d)
//	Vertices() []string, Edges() []*Edge                        // sorted
package core
