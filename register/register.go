// SPDX-License-Identifier: MIT

// Package register holds classical measurement outcomes.
//
// A File is a flat, owned array of one-bit cells. Every consumer refers to a cell
// by its ID (an index into the file), never by pointer: the simulator writes an
// outcome once per trial, and any number of readers (defect graphs, Pauli-frame
// logic) look the value up by index.
//
// Errors:
//
//	ErrUnknownRegister - ID outside the allocated range.
//	ErrBadValue        - value other than 0 or 1.
//
// Concurrency:
//   - A File belongs to exactly one trial. It is not goroutine-safe.
package register

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRegister indicates an ID that was never allocated from this File.
	ErrUnknownRegister = errors.New("register: unknown register id")

	// ErrBadValue indicates an attempt to store a value other than 0 or 1.
	ErrBadValue = errors.New("register: value must be 0 or 1")
)

// ID identifies one cell of a File.
type ID int

// None is the zero-information ID; it is never returned by Alloc.
const None ID = -1

// File is a flat array of classical bits.
type File struct {
	bits []uint8
}

// NewFile returns an empty File with room for capacity cells before reallocating.
func NewFile(capacity int) *File {
	if capacity < 0 {
		capacity = 0
	}
	return &File{bits: make([]uint8, 0, capacity)}
}

// Alloc appends one zero cell and returns its ID.
// Complexity: O(1) amortized.
func (f *File) Alloc() ID {
	f.bits = append(f.bits, 0)
	return ID(len(f.bits) - 1)
}

// AllocN appends n zero cells and returns their IDs in order.
func (f *File) AllocN(n int) []ID {
	out := make([]ID, n)
	for i := range out {
		out[i] = f.Alloc()
	}
	return out
}

// Len returns the number of allocated cells.
func (f *File) Len() int { return len(f.bits) }

// Valid reports whether id addresses an allocated cell.
func (f *File) Valid(id ID) bool { return id >= 0 && int(id) < len(f.bits) }

// Get returns the value stored in cell id.
func (f *File) Get(id ID) (uint8, error) {
	if !f.Valid(id) {
		return 0, fmt.Errorf("register.Get(%d): %w", id, ErrUnknownRegister)
	}
	return f.bits[id], nil
}

// Set stores v (0 or 1) in cell id.
func (f *File) Set(id ID, v uint8) error {
	if !f.Valid(id) {
		return fmt.Errorf("register.Set(%d): %w", id, ErrUnknownRegister)
	}
	if v > 1 {
		return fmt.Errorf("register.Set(%d, %d): %w", id, v, ErrBadValue)
	}
	f.bits[id] = v
	return nil
}

// Flip toggles cell id.
func (f *File) Flip(id ID) error {
	if !f.Valid(id) {
		return fmt.Errorf("register.Flip(%d): %w", id, ErrUnknownRegister)
	}
	f.bits[id] ^= 1
	return nil
}

// Reset zeroes every cell without releasing the allocation.
// Complexity: O(Len()).
func (f *File) Reset() {
	for i := range f.bits {
		f.bits[i] = 0
	}
}

// Snapshot returns a copy of the cells, mainly for tests and diagnostics.
func (f *File) Snapshot() []uint8 {
	out := make([]uint8, len(f.bits))
	copy(out, f.bits)
	return out
}
