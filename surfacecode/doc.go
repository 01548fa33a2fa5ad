// Package surfacecode drives a rotated surface-code memory experiment on the
// stabilizer simulator.
//
// A Code lays out data and measurement qubits (Layout), queues the circuit
// through a coordinate-addressed Network, records syndromes straight into the Z
// and X space-time defect graphs and decodes them with decoder.Decode into a
// Pauli Frame. LogicalValue applies the frame to the data readout.
//
//	c, err := surfacecode.New(surfacecode.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	out, err := c.Trial(10)
//
// A Code is single-threaded; run independent trials in parallel with one Code
// per goroutine.
package surfacecode
