// SPDX-License-Identifier: MIT

package surfacecode

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qecsim/spacetime"
)

// Kind selects a stabilizer type.
type Kind uint8

const (
	// KindZ stabilizers detect X errors.
	KindZ Kind = iota
	// KindX stabilizers detect Z errors.
	KindX
)

func (k Kind) String() string {
	if k == KindZ {
		return "Z"
	}
	return "X"
}

// Layout is the qubit placement of a distance-d rotated surface code.
//
// Data qubits sit at even (x, y) in [0, 2d-2]². Measurement qubits sit on the
// dual lattice at odd coordinates: Z stabilizers where (x+y) mod 4 == 2, X
// stabilizers where it is 0. The Z stabilizers close the left and right edges,
// the X stabilizers the top and bottom ones. Boundary positions are virtual
// stabilizers of the same parity placed just outside the edge the kind does not
// close; they exist only in the defect graphs.
type Layout struct {
	distance int
	data     []spacetime.Qubit
	isData   map[spacetime.Qubit]bool
	stabs    [2][]spacetime.Qubit
	boundary [2][]spacetime.Qubit
}

// NewLayout builds the layout of an odd distance >= 3.
func NewLayout(distance int) (*Layout, error) {
	if distance < 3 {
		return nil, fmt.Errorf("surfacecode: distance %d: %w", distance, ErrBadDistance)
	}
	if distance%2 == 0 {
		return nil, fmt.Errorf("surfacecode: distance %d: %w", distance, ErrEvenDistance)
	}

	l := &Layout{distance: distance, isData: make(map[spacetime.Qubit]bool, distance*distance)}
	edge := 2*distance - 2

	for x := 0; x <= edge; x += 2 {
		for y := 0; y <= edge; y += 2 {
			q := spacetime.Qubit{X: x, Y: y}
			l.data = append(l.data, q)
			l.isData[q] = true
		}
	}

	// Measurement qubits: every dual-lattice site touching at least two data
	// qubits, except the weight-two sites the opposite kind owns.
	for y := -1; y <= edge+1; y += 2 {
		for x := -1; x <= edge+1; x += 2 {
			q := spacetime.Qubit{X: x, Y: y}
			kind := kindAt(q)
			onLR := x == -1 || x == edge+1
			onTB := y == -1 || y == edge+1
			switch {
			case onLR && onTB:
				continue
			case onLR && kind != KindZ, onTB && kind != KindX:
				continue
			}
			l.stabs[kind] = append(l.stabs[kind], q)
		}
	}
	sort.Slice(l.stabs[KindX], func(i, j int) bool {
		a, b := l.stabs[KindX][i], l.stabs[KindX][j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	spacetime.SortQubits(l.stabs[KindZ])

	// Virtual Z positions run along the top and bottom rows, X ones along the sides.
	half := distance/2 + 1
	for i := 0; i < half; i++ {
		l.boundary[KindZ] = append(l.boundary[KindZ], spacetime.Qubit{X: -1 + 4*i, Y: -1})
	}
	for i := 0; i < half; i++ {
		l.boundary[KindZ] = append(l.boundary[KindZ], spacetime.Qubit{X: 1 + 4*i, Y: edge + 1})
	}
	for i := 0; i < half; i++ {
		l.boundary[KindX] = append(l.boundary[KindX], spacetime.Qubit{X: -1, Y: 1 + 4*i})
	}
	for i := 0; i < half; i++ {
		l.boundary[KindX] = append(l.boundary[KindX], spacetime.Qubit{X: edge + 1, Y: -1 + 4*i})
	}

	return l, nil
}

func kindAt(q spacetime.Qubit) Kind {
	if ((q.X+q.Y)%4+4)%4 == 2 {
		return KindZ
	}
	return KindX
}

// Distance returns the code distance.
func (l *Layout) Distance() int { return l.distance }

// Data returns the data qubits ordered by (x, y).
func (l *Layout) Data() []spacetime.Qubit { return append([]spacetime.Qubit(nil), l.data...) }

// IsData reports whether q is a data qubit.
func (l *Layout) IsData(q spacetime.Qubit) bool { return l.isData[q] }

// Stabilizers returns the measurement qubits of kind k: X ordered by (y, x), Z by (x, y).
func (l *Layout) Stabilizers(k Kind) []spacetime.Qubit {
	return append([]spacetime.Qubit(nil), l.stabs[k]...)
}

// Boundary returns the virtual boundary positions of kind k.
func (l *Layout) Boundary(k Kind) []spacetime.Qubit {
	return append([]spacetime.Qubit(nil), l.boundary[k]...)
}

// Qubits returns every physical qubit: data first, then Z and X measurement qubits.
func (l *Layout) Qubits() []spacetime.Qubit {
	out := make([]spacetime.Qubit, 0, len(l.data)+len(l.stabs[KindZ])+len(l.stabs[KindX]))
	out = append(out, l.data...)
	out = append(out, l.stabs[KindZ]...)
	out = append(out, l.stabs[KindX]...)
	return out
}
