// SPDX-License-Identifier: MIT

package surfacecode

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qecsim/decoder"
	"github.com/katalvlaran/qecsim/register"
	"github.com/katalvlaran/qecsim/rng"
	"github.com/katalvlaran/qecsim/spacetime"
)

// CNOT orders around a measurement qubit. X stabilizers sweep in a Z shape and Z
// stabilizers in an N shape so that interleaved X and Z checks commute. The last
// two CNOTs of an X check share a row and those of a Z check share a column: a
// fault on a measurement qubit halfway through spreads across the logical
// operator of its own type, never along it.
var (
	orderX = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	orderZ = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Options configures a Code.
type Options struct {
	// Distance is the odd code distance, >= 3.
	Distance int
	// Rounds is the number of syndrome-measurement rounds.
	Rounds int
	// ErrorRate is the depolarizing probability after every gate; it also weights
	// the defect-graph edges.
	ErrorRate float64
	// MeasurementErrorRate flips each recorded syndrome bit before decoding.
	MeasurementErrorRate float64
	// Seed drives the simulator, the gate noise and the measurement noise.
	Seed uint64
	// FlipLimit caps the boundary flips FlipDefect may apply per graph.
	FlipLimit int
}

// DefaultOptions returns a distance-3 code over five rounds at 1% noise.
func DefaultOptions() Options {
	return Options{
		Distance:             3,
		Rounds:               5,
		ErrorRate:            0.01,
		MeasurementErrorRate: 0.01,
		FlipLimit:            1,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.Distance < 3 {
		return fmt.Errorf("surfacecode: distance %d: %w", o.Distance, ErrBadDistance)
	}
	if o.Distance%2 == 0 {
		return fmt.Errorf("surfacecode: distance %d: %w", o.Distance, ErrEvenDistance)
	}
	if o.Rounds < 1 {
		return fmt.Errorf("surfacecode: rounds %d: %w", o.Rounds, ErrBadRounds)
	}
	for _, r := range []float64{o.ErrorRate, o.MeasurementErrorRate} {
		if math.IsNaN(r) || r < 0 || r > 1 {
			return fmt.Errorf("surfacecode: rate %v: %w", r, ErrBadRate)
		}
	}
	if o.FlipLimit < 1 {
		return fmt.Errorf("surfacecode: flip limit %d: %w", o.FlipLimit, ErrBadFlipLimit)
	}

	return nil
}

// Outcome is the frame-corrected logical Z measurement.
type Outcome struct {
	// Value is the majority of Lines.
	Value uint8
	// Consistent is true when every line agrees.
	Consistent bool
	// Lines holds the parity of each horizontal line of data qubits, by y.
	Lines []uint8
}

// Code is a rotated surface code memory experiment: a simulator, the Z and X
// defect graphs, a Pauli frame and the data-qubit readout registers, all sharing
// one register file. A Code runs one trial at a time.
type Code struct {
	opts    Options
	layout  *Layout
	regs    *register.File
	net     *Network
	graphs  [2]*spacetime.Graph
	frame   *Frame
	readout []register.ID

	extracted bool
}

// New builds a Code for opts.
func New(opts Options) (*Code, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	l, err := NewLayout(opts.Distance)
	if err != nil {
		return nil, err
	}

	regs := register.NewFile(0)
	net, err := NewNetwork(l.Qubits(), opts.ErrorRate, opts.Seed, regs)
	if err != nil {
		return nil, err
	}
	c := &Code{
		opts:   opts,
		layout: l,
		regs:   regs,
		net:    net,
		frame:  NewFrame(opts.Distance),
	}
	streams := [2]uint64{KindZ: rng.StreamGraphZ, KindX: rng.StreamGraphX}
	for _, k := range []Kind{KindZ, KindX} {
		g, err := buildGraph(l, k, opts.Rounds, opts.ErrorRate, k == KindZ, rng.Derive(opts.Seed, streams[k]), regs)
		if err != nil {
			return nil, fmt.Errorf("surfacecode: %s graph: %w", k, err)
		}
		c.graphs[k] = g
	}
	c.readout = regs.AllocN(opts.Distance * opts.Distance)

	return c, nil
}

// Options returns the options the code was built with.
func (c *Code) Options() Options { return c.opts }

// Layout returns the qubit placement.
func (c *Code) Layout() *Layout { return c.layout }

// Network returns the gate queue.
func (c *Code) Network() *Network { return c.net }

// Graph returns the defect graph of stabilizer kind k.
func (c *Code) Graph(k Kind) *spacetime.Graph { return c.graphs[k] }

// Frame returns the Pauli frame.
func (c *Code) Frame() *Frame { return c.frame }

func at(q spacetime.Qubit, t int) spacetime.Coord { return spacetime.Coord{X: q.X, Y: q.Y, T: t} }

func step(q spacetime.Qubit, d [2]int) spacetime.Qubit {
	return spacetime.Qubit{X: q.X + d[0], Y: q.Y + d[1]}
}

// Initialize queues the preparation of logical |0⟩: the X stabilizers are
// measured once without noise and projected onto +1. Data qubits start in |0⟩,
// which already satisfies every Z stabilizer.
func (c *Code) Initialize() error {
	xs := c.layout.Stabilizers(KindX)
	for _, s := range xs {
		if err := c.net.H(s); err != nil {
			return err
		}
	}
	for _, d := range orderX {
		for _, s := range xs {
			if q := step(s, d); c.layout.IsData(q) {
				if err := c.net.CX(s, q); err != nil {
					return err
				}
			}
		}
	}
	for _, s := range xs {
		if err := c.net.H(s); err != nil {
			return err
		}
	}
	for _, s := range xs {
		if err := c.net.MeasureToZero(s); err != nil {
			return err
		}
	}

	return nil
}

// SyndromeMeasurement queues Rounds rounds of noisy stabilizer extraction. Round
// t writes each measurement qubit's outcome into node (x, y, t) of its graph.
// Measurement qubits are not reset between rounds.
func (c *Code) SyndromeMeasurement() error {
	xs := c.layout.Stabilizers(KindX)
	zs := c.layout.Stabilizers(KindZ)

	hadamards := func() error {
		for _, s := range xs {
			if err := c.net.H(s); err != nil {
				return err
			}
			if err := c.net.InsertNoise(s); err != nil {
				return err
			}
		}
		return nil
	}
	cx := func(ctrl, tgt spacetime.Qubit) error {
		if err := c.net.CX(ctrl, tgt); err != nil {
			return err
		}
		if err := c.net.InsertNoise(ctrl); err != nil {
			return err
		}
		return c.net.InsertNoise(tgt)
	}

	for t := 0; t < c.opts.Rounds; t++ {
		if err := hadamards(); err != nil {
			return err
		}
		for i := range orderX {
			for j := range xs {
				if q := step(zs[j], orderZ[i]); c.layout.IsData(q) {
					if err := cx(q, zs[j]); err != nil {
						return err
					}
				}
				if q := step(xs[j], orderX[i]); c.layout.IsData(q) {
					if err := cx(xs[j], q); err != nil {
						return err
					}
				}
			}
		}
		if err := hadamards(); err != nil {
			return err
		}
		for _, k := range []Kind{KindZ, KindX} {
			for _, s := range c.layout.Stabilizers(k) {
				dst, err := c.graphs[k].ClassicalRegister(at(s, t))
				if err != nil {
					return err
				}
				if err := c.net.Measure(s, dst); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// LogicalMeasurement queues a Z-basis readout of every data qubit.
func (c *Code) LogicalMeasurement() error {
	for _, q := range c.layout.Data() {
		if err := c.net.Measure(q, c.readout[c.cell(q)]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Code) cell(q spacetime.Qubit) int { return (q.X/2)*c.opts.Distance + q.Y/2 }

// Run applies the queued circuit.
func (c *Code) Run() error { return c.net.Run() }

// Reset prepares the code for another trial: the simulator returns to |0...0⟩,
// every register and the frame are cleared. Random streams continue.
func (c *Code) Reset() {
	c.net.Reset()
	c.regs.Reset()
	c.frame.Reset()
	c.extracted = false
}

// ExtractSyndromes turns the recorded outcomes into per-round stabilizer values.
// Measurement qubits are not reset, so round t records the parity of every
// syndrome up to t and one XorToLastTime pass undoes that. The readout layer of
// the Z graph is then filled with the Z-stabilizer parities of the data readout.
// It runs once per trial; DecodeMWPM calls it when it has not run yet.
func (c *Code) ExtractSyndromes() error {
	if c.extracted {
		return nil
	}
	for _, k := range []Kind{KindZ, KindX} {
		if err := c.graphs[k].XorToLastTime(); err != nil {
			return err
		}
	}
	if err := c.fillReadoutLayer(); err != nil {
		return err
	}
	c.extracted = true

	return nil
}

func (c *Code) fillReadoutLayer() error {
	g := c.graphs[KindZ]
	for _, s := range c.layout.Stabilizers(KindZ) {
		var parity uint8
		for _, d := range orderZ {
			q := step(s, d)
			if !c.layout.IsData(q) {
				continue
			}
			v, err := c.regs.Get(c.readout[c.cell(q)])
			if err != nil {
				return err
			}
			parity ^= v
		}
		dst, err := g.ClassicalRegister(at(s, c.opts.Rounds))
		if err != nil {
			return err
		}
		if err := c.regs.Set(dst, parity); err != nil {
			return err
		}
	}

	return nil
}

// DecodeMWPM decodes both defect graphs with m nearest neighbours per defect.
// After ExtractSyndromes, measurement errors flip per-round stabilizer values, a
// second XorToLastTime pass turns values into change events and odd parity is
// repaired against the boundary. X-graph corrections go to the Z frame and
// Z-graph corrections to the X frame.
func (c *Code) DecodeMWPM(m int) error {
	if err := c.ExtractSyndromes(); err != nil {
		return err
	}
	for _, k := range []Kind{KindZ, KindX} {
		g := c.graphs[k]
		if err := g.InsertMeasurementError(c.opts.MeasurementErrorRate); err != nil {
			return err
		}
		if err := g.XorToLastTime(); err != nil {
			return err
		}
		if _, err := g.FlipDefect(c.opts.FlipLimit); err != nil {
			return fmt.Errorf("surfacecode: %s graph: %w", k, err)
		}
	}

	corrZ, err := decoder.Decode(c.graphs[KindX], m)
	if err != nil {
		return fmt.Errorf("surfacecode: X graph: %w", err)
	}
	for _, q := range corrZ {
		if err := c.frame.ToggleZ(q); err != nil {
			return err
		}
	}
	corrX, err := decoder.Decode(c.graphs[KindZ], m)
	if err != nil {
		return fmt.Errorf("surfacecode: Z graph: %w", err)
	}
	for _, q := range corrX {
		if err := c.frame.ToggleX(q); err != nil {
			return err
		}
	}

	return nil
}

// LogicalValue combines the data readout with the X frame. Each horizontal line
// of data qubits is a representative of logical Z; the value is their majority.
func (c *Code) LogicalValue() (Outcome, error) {
	d := c.opts.Distance
	out := Outcome{Lines: make([]uint8, d)}
	for _, q := range c.layout.Data() {
		v, err := c.regs.Get(c.readout[c.cell(q)])
		if err != nil {
			return Outcome{}, err
		}
		fx, err := c.frame.X(q)
		if err != nil {
			return Outcome{}, err
		}
		out.Lines[q.Y/2] ^= v ^ fx
	}

	ones := 0
	for _, l := range out.Lines {
		ones += int(l)
	}
	if 2*ones > d {
		out.Value = 1
	}
	out.Consistent = ones == 0 || ones == d

	return out, nil
}

// Trial runs one complete memory experiment from a fresh state.
func (c *Code) Trial(m int) (Outcome, error) {
	c.Reset()
	steps := []func() error{
		c.Initialize,
		c.SyndromeMeasurement,
		c.LogicalMeasurement,
		c.Run,
		func() error { return c.DecodeMWPM(m) },
	}
	for _, s := range steps {
		if err := s(); err != nil {
			return Outcome{}, err
		}
	}

	return c.LogicalValue()
}
