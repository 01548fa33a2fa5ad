// SPDX-License-Identifier: MIT

package chp

import (
	"math/rand"

	"github.com/katalvlaran/qecsim/rng"
)

// Tableau is the Aaronson–Gottesman binary tableau of an n-qubit stabilizer state.
//
// Storage is a flat row-major slice of 2n rows by 2n+1 columns:
//
//	rows [0, n)    destabilizer generators
//	rows [n, 2n)   stabilizer generators
//	cols [0, n)    X part
//	cols [n, 2n)   Z part
//	col  2n        phase bit r (0 means +, 1 means -)
//
// A separate scratch row serves the deterministic measurement branch.
type Tableau struct {
	n       int
	w       int     // row width, 2n+1
	data    []uint8 // len == 2n*w
	scratch []uint8 // len == w
	rnd     *rand.Rand
}

// New returns the tableau of |0…0⟩ on qubits qubits: destabilizer i is X_i and
// stabilizer i is Z_i, all phases +.
// The coin used by random measurements is derived from seed.
// Complexity: O(n²) time and memory.
func New(qubits int, seed uint64) (*Tableau, error) {
	if qubits <= 0 {
		return nil, ErrBadQubitCount
	}
	w := 2*qubits + 1
	t := &Tableau{
		n:       qubits,
		w:       w,
		data:    make([]uint8, 2*qubits*w),
		scratch: make([]uint8, w),
		rnd:     rng.Stream(seed, rng.StreamTableau),
	}
	t.identity()

	return t, nil
}

// Qubits returns n.
func (t *Tableau) Qubits() int { return t.n }

// At returns the bit at (row, col). It panics on out-of-range indices like a slice would.
func (t *Tableau) At(row, col int) uint8 { return t.data[row*t.w+col] }

// Reset restores the identity tableau in place without reallocating.
// Complexity: O(n²).
func (t *Tableau) Reset() {
	for i := range t.data {
		t.data[i] = 0
	}
	t.identity()
}

func (t *Tableau) identity() {
	for i := 0; i < t.n; i++ {
		// destabilizer X_i, stabilizer Z_i
		t.data[i*t.w+i] = 1
		t.data[(i+t.n)*t.w+t.n+i] = 1
	}
}

func (t *Tableau) row(i int) []uint8 { return t.data[i*t.w : (i+1)*t.w] }

func (t *Tableau) check(method string, qubit int) error {
	if qubit < 0 || qubit >= t.n {
		return tableauErrorf(method, qubit, ErrQubitOutOfRange)
	}
	return nil
}

// CX applies a controlled-NOT with control a and target b.
// Every row: r ^= x_a·z_b·(x_b ⊕ z_a ⊕ 1); x_b ^= x_a; z_a ^= z_b.
// Complexity: O(n).
func (t *Tableau) CX(a, b int) error {
	if err := t.check("CX", a); err != nil {
		return err
	}
	if err := t.check("CX", b); err != nil {
		return err
	}
	if a == b {
		return tableauErrorf("CX", a, ErrSameQubit)
	}
	n := t.n
	for i := 0; i < 2*n; i++ {
		r := t.row(i)
		xa, xb := r[a], r[b]
		za, zb := r[n+a], r[n+b]
		r[2*n] ^= xa & zb & (xb ^ za ^ 1)
		r[b] = xb ^ xa
		r[n+a] = za ^ zb
	}

	return nil
}

// H applies a Hadamard to qubit a: r ^= x_a·z_a, then swap x_a and z_a.
// Complexity: O(n).
func (t *Tableau) H(a int) error {
	if err := t.check("H", a); err != nil {
		return err
	}
	n := t.n
	for i := 0; i < 2*n; i++ {
		r := t.row(i)
		r[2*n] ^= r[a] & r[n+a]
		r[a], r[n+a] = r[n+a], r[a]
	}

	return nil
}

// S applies the phase gate to qubit a: r ^= x_a·z_a, then z_a ^= x_a.
// Complexity: O(n).
func (t *Tableau) S(a int) error {
	if err := t.check("S", a); err != nil {
		return err
	}
	n := t.n
	for i := 0; i < 2*n; i++ {
		r := t.row(i)
		r[2*n] ^= r[a] & r[n+a]
		r[n+a] ^= r[a]
	}

	return nil
}

// X applies a Pauli X to qubit a: r ^= z_a.
// Complexity: O(n).
func (t *Tableau) X(a int) error {
	if err := t.check("X", a); err != nil {
		return err
	}
	n := t.n
	for i := 0; i < 2*n; i++ {
		r := t.row(i)
		r[2*n] ^= r[n+a]
	}

	return nil
}

// Z applies a Pauli Z to qubit a: r ^= x_a.
// Complexity: O(n).
func (t *Tableau) Z(a int) error {
	if err := t.check("Z", a); err != nil {
		return err
	}
	n := t.n
	for i := 0; i < 2*n; i++ {
		r := t.row(i)
		r[2*n] ^= r[a]
	}

	return nil
}

// IsDeterministic reports whether a Z-basis measurement of qubit a has a fixed outcome,
// i.e. no stabilizer generator anticommutes with Z_a.
func (t *Tableau) IsDeterministic(a int) (bool, error) {
	if err := t.check("IsDeterministic", a); err != nil {
		return false, err
	}
	return t.pivot(a) < 0, nil
}

// pivot returns the first stabilizer row with x_a = 1, or -1.
func (t *Tableau) pivot(a int) int {
	for i := t.n; i < 2*t.n; i++ {
		if t.data[i*t.w+a] == 1 {
			return i
		}
	}
	return -1
}

// Measure performs a Z-basis measurement of qubit a and returns the outcome bit.
// Random outcomes consume one coin flip; deterministic outcomes consume none.
// Complexity: O(n²).
func (t *Tableau) Measure(a int) (uint8, error) {
	if err := t.check("Measure", a); err != nil {
		return 0, err
	}
	return t.measure(a, false)
}

// MeasureToZero measures qubit a like Measure but resolves a random outcome to 0.
// A deterministic outcome is returned unchanged, so the state is only forced when
// the measurement would otherwise have been random.
// Complexity: O(n²).
func (t *Tableau) MeasureToZero(a int) (uint8, error) {
	if err := t.check("MeasureToZero", a); err != nil {
		return 0, err
	}
	return t.measure(a, true)
}

func (t *Tableau) measure(a int, forceZero bool) (uint8, error) {
	n := t.n
	p := t.pivot(a)
	if p >= 0 {
		// Random branch. Row p-n anticommutes with the pivot and is
		// replaced by it below, so it is not summed.
		for i := 0; i < 2*n; i++ {
			if i != p && i != p-n && t.data[i*t.w+a] == 1 {
				if err := rowsum(t.row(i), t.row(p), n); err != nil {
					return 0, tableauErrorf("Measure", a, err)
				}
			}
		}
		copy(t.row(p-n), t.row(p))
		rp := t.row(p)
		for j := range rp {
			rp[j] = 0
		}
		rp[n+a] = 1
		var outcome uint8
		if !forceZero {
			outcome = uint8(t.rnd.Intn(2))
		}
		rp[2*n] = outcome

		return outcome, nil
	}

	// Deterministic branch.
	for j := range t.scratch {
		t.scratch[j] = 0
	}
	for i := 0; i < n; i++ {
		if t.data[i*t.w+a] == 1 {
			if err := rowsum(t.scratch, t.row(i+n), n); err != nil {
				return 0, tableauErrorf("Measure", a, err)
			}
		}
	}

	return t.scratch[2*n], nil
}
