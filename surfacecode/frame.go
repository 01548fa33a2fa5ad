package surfacecode

import (
	"fmt"

	"github.com/katalvlaran/qecsim/spacetime"
)

// Frame is a Pauli frame over the d×d data qubits: pending X and Z corrections
// applied classically instead of by gates.
type Frame struct {
	d    int
	x, z []uint8
}

// NewFrame returns an all-zero frame for distance d.
func NewFrame(d int) *Frame {
	return &Frame{d: d, x: make([]uint8, d*d), z: make([]uint8, d*d)}
}

func (f *Frame) cell(q spacetime.Qubit) (int, error) {
	if q.X < 0 || q.Y < 0 || q.X%2 != 0 || q.Y%2 != 0 || q.X/2 >= f.d || q.Y/2 >= f.d {
		return 0, fmt.Errorf("surfacecode: frame %v: %w", q, ErrUnknownQubit)
	}
	return (q.X/2)*f.d + q.Y/2, nil
}

// ToggleX flips the X correction of data qubit q.
func (f *Frame) ToggleX(q spacetime.Qubit) error {
	i, err := f.cell(q)
	if err != nil {
		return err
	}
	f.x[i] ^= 1
	return nil
}

// ToggleZ flips the Z correction of data qubit q.
func (f *Frame) ToggleZ(q spacetime.Qubit) error {
	i, err := f.cell(q)
	if err != nil {
		return err
	}
	f.z[i] ^= 1
	return nil
}

// X returns the X correction of q.
func (f *Frame) X(q spacetime.Qubit) (uint8, error) {
	i, err := f.cell(q)
	if err != nil {
		return 0, err
	}
	return f.x[i], nil
}

// Z returns the Z correction of q.
func (f *Frame) Z(q spacetime.Qubit) (uint8, error) {
	i, err := f.cell(q)
	if err != nil {
		return 0, err
	}
	return f.z[i], nil
}

// Reset clears both frames.
func (f *Frame) Reset() {
	clear(f.x)
	clear(f.z)
}
