// Package chp simulates Clifford circuits with the CHP stabilizer tableau.
//
// A Tableau tracks an n-qubit stabilizer state as 2n Pauli generators
// (destabilizers then stabilizers) in O(n²) bits. CX, H, S and the Paulis X, Z
// cost O(n) each; a Z-basis measurement costs O(n²).
//
// Circuits are usually not applied gate by gate. Callers push Operation values
// into a Dispatcher while building a circuit (including randomly drawn noise),
// then replay the whole log once:
//
//	tab, _ := chp.New(2, seed)
//	regs := register.NewFile(2)
//	r := regs.Alloc()
//	d := chp.NewDispatcher(8)
//	d.Push(chp.H(0))
//	d.Push(chp.CX(0, 1))
//	d.Push(chp.Measure(1, r))
//	err := d.Run(tab, regs)
//
// Errors:
//
//	ErrBadQubitCount   - New with n <= 0.
//	ErrQubitOutOfRange - qubit index outside [0, n).
//	ErrSameQubit       - CX with control == target.
//	ErrPhaseInvariant  - internal row sum produced an odd phase checker.
//
// Concurrency: none of the types are goroutine-safe.
package chp
