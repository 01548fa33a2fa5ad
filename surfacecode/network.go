package surfacecode

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qecsim/chp"
	"github.com/katalvlaran/qecsim/register"
	"github.com/katalvlaran/qecsim/rng"
	"github.com/katalvlaran/qecsim/spacetime"
)

// Network addresses the simulator by lattice coordinate.
//
// Gates are queued on a chp.Dispatcher and applied by Run. Noise is drawn when it
// is queued, so the queued circuit of a trial is fixed before any gate runs.
type Network struct {
	index map[spacetime.Qubit]int
	tab   *chp.Tableau
	disp  *chp.Dispatcher
	regs  *register.File
	noise *rand.Rand
	p     float64
}

// NewNetwork maps qubits onto simulator indices in the given order. p is the
// depolarizing probability used by InsertNoise.
func NewNetwork(qubits []spacetime.Qubit, p float64, seed uint64, regs *register.File) (*Network, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("surfacecode: error rate %v: %w", p, ErrBadRate)
	}
	tab, err := chp.New(len(qubits), seed)
	if err != nil {
		return nil, err
	}
	index := make(map[spacetime.Qubit]int, len(qubits))
	for i, q := range qubits {
		index[q] = i
	}

	return &Network{
		index: index,
		tab:   tab,
		disp:  chp.NewDispatcher(0),
		regs:  regs,
		noise: rng.Stream(seed, rng.StreamGateNoise),
		p:     p,
	}, nil
}

// Index returns the simulator index of q.
func (n *Network) Index(q spacetime.Qubit) (int, error) {
	i, ok := n.index[q]
	if !ok {
		return 0, fmt.Errorf("surfacecode: %v: %w", q, ErrUnknownQubit)
	}
	return i, nil
}

// ErrorRate returns the depolarizing probability.
func (n *Network) ErrorRate() float64 { return n.p }

// Pending returns the number of queued operations.
func (n *Network) Pending() int { return n.disp.Len() }

// Tableau exposes the simulator state.
func (n *Network) Tableau() *chp.Tableau { return n.tab }

func (n *Network) push1(q spacetime.Qubit, op func(int) chp.Operation) error {
	i, err := n.Index(q)
	if err != nil {
		return err
	}
	n.disp.Push(op(i))
	return nil
}

// CX queues a CNOT with control a and target b.
func (n *Network) CX(a, b spacetime.Qubit) error {
	i, err := n.Index(a)
	if err != nil {
		return err
	}
	j, err := n.Index(b)
	if err != nil {
		return err
	}
	n.disp.Push(chp.CX(i, j))
	return nil
}

// H queues a Hadamard on q.
func (n *Network) H(q spacetime.Qubit) error { return n.push1(q, chp.H) }

// S queues a phase gate on q.
func (n *Network) S(q spacetime.Qubit) error { return n.push1(q, chp.S) }

// X queues a Pauli X on q.
func (n *Network) X(q spacetime.Qubit) error { return n.push1(q, chp.X) }

// Z queues a Pauli Z on q.
func (n *Network) Z(q spacetime.Qubit) error { return n.push1(q, chp.Z) }

// Measure queues a Z-basis measurement of q into register dst.
func (n *Network) Measure(q spacetime.Qubit, dst register.ID) error {
	return n.push1(q, func(i int) chp.Operation { return chp.Measure(i, dst) })
}

// MeasureToZero queues a measurement of q that projects onto 0 whenever the
// outcome would be random.
func (n *Network) MeasureToZero(q spacetime.Qubit) error { return n.push1(q, chp.MeasureToZero) }

// InsertNoise queues single-qubit depolarizing noise on q: X, Z or both, each
// with probability p/3.
func (n *Network) InsertNoise(q spacetime.Qubit) error {
	if _, err := n.Index(q); err != nil {
		return err
	}
	if n.p <= 0 {
		return nil
	}
	u := n.noise.Float64()
	switch {
	case u < n.p/3:
		return n.X(q)
	case u < 2*n.p/3:
		return n.Z(q)
	case u < n.p:
		if err := n.X(q); err != nil {
			return err
		}
		return n.Z(q)
	}
	return nil
}

// Run applies every queued operation in order and empties the queue.
func (n *Network) Run() error { return n.disp.Run(n.tab, n.regs) }

// Reset returns the simulator to |0...0⟩ and drops queued operations.
// The noise stream is not rewound.
func (n *Network) Reset() {
	n.tab.Reset()
	n.disp = chp.NewDispatcher(0)
}
