package decoder

import "errors"

var (
	// ErrNotDefect indicates a LocalDijkstra source whose bit is 0.
	ErrNotDefect = errors.New("decoder: source is not a defect")

	// ErrBadNeighbourCount indicates a neighbour count below 1.
	ErrBadNeighbourCount = errors.New("decoder: neighbour count must be >= 1")

	// ErrUnmatchedDefect indicates a defect left single by the matching.
	ErrUnmatchedDefect = errors.New("decoder: defect left unmatched")
)
