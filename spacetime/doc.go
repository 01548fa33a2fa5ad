// Package spacetime holds the space-time defect graph of a surface-code run.
//
// Nodes are stabilizer positions at a measurement round, Coord{X, Y, T}. Spatial
// edges join neighbouring stabilizers of the same type within a round and cross
// exactly one data qubit; time edges join the same stabilizer in consecutive
// rounds, and diagonal edges join neighbours one round apart, crossing the data
// qubit they share. Boundary nodes stand in for the open edges of the lattice
// and, where no readout closes the graph, for the closing round.
//
// Each node's syndrome bit lives in a register.File shared with the measurement
// dispatcher, so a round of syndrome extraction writes straight into the graph.
// Decoding prepares the bits with XorToLastTime and FlipDefect, after which every
// node holding a 1 is a defect.
package spacetime
