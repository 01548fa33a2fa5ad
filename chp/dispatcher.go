// SPDX-License-Identifier: MIT

package chp

import (
	"fmt"

	"github.com/katalvlaran/qecsim/register"
)

// Dispatcher is a FIFO log of deferred operations. Circuits are built by pushing
// operations (noise included) and executed once by Run.
//
// Not goroutine-safe: one trial owns one dispatcher.
type Dispatcher struct {
	ops []Operation
}

// NewDispatcher returns an empty log with room for capacity operations.
func NewDispatcher(capacity int) *Dispatcher {
	if capacity < 0 {
		capacity = 0
	}
	return &Dispatcher{ops: make([]Operation, 0, capacity)}
}

// Push appends op. Complexity: O(1) amortized.
func (d *Dispatcher) Push(op Operation) { d.ops = append(d.ops, op) }

// Len returns the number of pending operations.
func (d *Dispatcher) Len() int { return len(d.ops) }

// Operations returns a copy of the pending operations in insertion order.
func (d *Dispatcher) Operations() []Operation {
	out := make([]Operation, len(d.ops))
	copy(out, d.ops)
	return out
}

// Run replays every pending operation on t in insertion order, exactly once, and
// leaves the log empty. Measurement outcomes land in regs.
//
// The first failing operation aborts the replay; the error carries its index and
// kind. The log is consumed in both cases. Running an empty log is a no-op.
func (d *Dispatcher) Run(t *Tableau, regs *register.File) error {
	if len(d.ops) == 0 {
		return nil
	}
	if t == nil || regs == nil {
		return ErrNilTarget
	}
	ops := d.ops
	d.ops = d.ops[:0]
	for i, op := range ops {
		if err := op.apply(t, regs); err != nil {
			return fmt.Errorf("chp: operation %d %s: %w", i, op, err)
		}
	}

	return nil
}
