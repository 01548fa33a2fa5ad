// Package qecsim simulates quantum memory on a rotated surface code and decodes
// it with minimum-weight perfect matching.
//
// A trial prepares logical |0⟩, runs noisy rounds of stabilizer extraction on a
// stabilizer-tableau simulator, records every syndrome bit in a space-time
// defect graph, pairs the defects and reads the logical qubit back through a
// Pauli frame. Repeating trials estimates the logical error rate.
//
// The work is split over small packages:
//
//	rng/           seed derivation and independent random streams
//	register/      classical bit registers shared by simulator and graphs
//	chp/           CHP stabilizer tableau and the deferred operation queue
//	core/          thread-safe weighted graph primitives
//	dijkstra/      single-source shortest paths with early stop on k targets
//	matching/      maximum-weight matching on general graphs (blossom)
//	spacetime/     the space-time defect graph and its syndrome processing
//	decoder/       local Dijkstra and the MWPM decoder
//	surfacecode/   layout, circuits, Pauli frame and logical readout
//	experiment/    YAML configuration and the parallel Monte Carlo runner
//	cmd/qecsim     command-line driver: run, sweep, bell
//
// Quick start:
//
//	code, _ := surfacecode.New(surfacecode.DefaultOptions())
//	out, _ := code.Trial(10)
//	fmt.Println(out.Value, out.Consistent)
//
// Or from the shell:
//
//	go run ./cmd/qecsim sweep --distances 3,5 --trials 500
package qecsim
