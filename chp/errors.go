package chp

import (
	"errors"
	"fmt"
)

// ErrBadQubitCount indicates a tableau requested with zero or negative qubits.
var ErrBadQubitCount = errors.New("chp: qubit count must be > 0")

// ErrQubitOutOfRange indicates a gate or measurement on a qubit index outside [0, n).
var ErrQubitOutOfRange = errors.New("chp: qubit index out of range")

// ErrSameQubit indicates a two-qubit gate whose control equals its target.
var ErrSameQubit = errors.New("chp: control and target must differ")

// ErrPhaseInvariant indicates that a row sum produced a phase checker other than
// 0 or 2 (mod 4). The tableau no longer describes a valid stabilizer state.
var ErrPhaseInvariant = errors.New("chp: row sum phase invariant violated")

// ErrUnknownOperation indicates an Operation value with an unrecognised kind.
var ErrUnknownOperation = errors.New("chp: unknown operation kind")

// ErrNilTarget indicates Run was called without a tableau or register file.
var ErrNilTarget = errors.New("chp: nil tableau or register file")

// tableauErrorf wraps err with the failing method and qubit index.
func tableauErrorf(method string, qubit int, err error) error {
	return fmt.Errorf("Tableau.%s(%d): %w", method, qubit, err)
}
