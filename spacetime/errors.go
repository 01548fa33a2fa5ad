package spacetime

import "errors"

var (
	// ErrUnknownNode indicates a coordinate that was never added to the graph.
	ErrUnknownNode = errors.New("spacetime: unknown node")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("spacetime: edge weight must be a non-negative number")

	// ErrBadRate indicates an error probability outside [0, 1].
	ErrBadRate = errors.New("spacetime: rate must be within [0, 1]")

	// ErrBadLimit indicates a FlipDefect limit below 1.
	ErrBadLimit = errors.New("spacetime: flip limit must be >= 1")

	// ErrParityUnresolved indicates that the defect count is still odd after
	// FlipDefect exhausted its limit or the zero-valued boundary nodes.
	ErrParityUnresolved = errors.New("spacetime: odd defect count could not be repaired")

	// ErrNotSpatial indicates EdgeToQubit on a pure time step or on nodes more
	// than one round apart.
	ErrNotSpatial = errors.New("spacetime: edge is not spatial")

	// ErrBadRounds indicates a graph with fewer than one round.
	ErrBadRounds = errors.New("spacetime: rounds must be >= 1")

	// ErrNilRegisters indicates a graph created without a register file.
	ErrNilRegisters = errors.New("spacetime: nil register file")

	// ErrBadCoord indicates a malformed "x,y,t" node ID.
	ErrBadCoord = errors.New("spacetime: malformed coordinate")
)
