package surfacecode

import "errors"

var (
	// ErrEvenDistance indicates an even code distance.
	ErrEvenDistance = errors.New("surfacecode: distance must be odd")

	// ErrBadDistance indicates a distance below 3.
	ErrBadDistance = errors.New("surfacecode: distance must be >= 3")

	// ErrBadRounds indicates fewer than one syndrome round.
	ErrBadRounds = errors.New("surfacecode: rounds must be >= 1")

	// ErrBadRate indicates an error probability outside [0, 1].
	ErrBadRate = errors.New("surfacecode: rate must be within [0, 1]")

	// ErrBadFlipLimit indicates a parity-repair limit below 1.
	ErrBadFlipLimit = errors.New("surfacecode: flip limit must be >= 1")

	// ErrUnknownQubit indicates a coordinate that is not part of the lattice.
	ErrUnknownQubit = errors.New("surfacecode: unknown qubit")
)
