// SPDX-License-Identifier: MIT

// Package decoder turns the defects of a space-time graph into data-qubit corrections.
//
// Decode runs a minimum-weight perfect matching over a reduced graph: every defect
// is joined to its m nearest defects (LocalDijkstra), the candidate pairs are
// matched with matching.MaxWeight on negated, quantized distances, and each
// matched pair's shortest path is walked to collect the data qubits it crosses.
//
// Boundary nodes take part in the matching like any other defect. Because every
// boundary node of a graph is joined to the others by free edges, a defect can
// reach "the boundary" through any other boundary-bound defect, and segments that
// join two boundary nodes never produce a correction.
//
// Errors:
//
//	ErrNotDefect          - LocalDijkstra called on a node holding 0.
//	ErrBadNeighbourCount  - m < 1.
//	ErrUnmatchedDefect    - the matching left a defect single; raise m.
package decoder
