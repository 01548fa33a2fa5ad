package chp

import (
	"fmt"

	"github.com/katalvlaran/qecsim/register"
)

// Kind tags an Operation.
type Kind uint8

// Operation kinds. The set is closed: Run rejects any other value.
const (
	OpCX Kind = iota + 1
	OpH
	OpS
	OpX
	OpZ
	OpMeasure
	OpMeasureToZero
)

var kindNames = map[Kind]string{
	OpCX:            "CX",
	OpH:             "H",
	OpS:             "S",
	OpX:             "X",
	OpZ:             "Z",
	OpMeasure:       "Measure",
	OpMeasureToZero: "MeasureToZero",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Operation is one deferred tableau operation. B is only meaningful for OpCX,
// Dst only for OpMeasure.
type Operation struct {
	Kind Kind
	A, B int
	Dst  register.ID
}

// CX returns a controlled-NOT with control a and target b.
func CX(a, b int) Operation { return Operation{Kind: OpCX, A: a, B: b, Dst: register.None} }

// H returns a Hadamard on a.
func H(a int) Operation { return Operation{Kind: OpH, A: a, Dst: register.None} }

// S returns a phase gate on a.
func S(a int) Operation { return Operation{Kind: OpS, A: a, Dst: register.None} }

// X returns a Pauli X on a.
func X(a int) Operation { return Operation{Kind: OpX, A: a, Dst: register.None} }

// Z returns a Pauli Z on a.
func Z(a int) Operation { return Operation{Kind: OpZ, A: a, Dst: register.None} }

// Measure returns a Z-basis measurement of a whose outcome is written to dst.
func Measure(a int, dst register.ID) Operation {
	return Operation{Kind: OpMeasure, A: a, Dst: dst}
}

// MeasureToZero returns a measurement of a that resolves random outcomes to 0.
// The outcome is discarded.
func MeasureToZero(a int) Operation {
	return Operation{Kind: OpMeasureToZero, A: a, Dst: register.None}
}

// String renders the operation for logs, e.g. "CX(3,7)" or "Measure(2->r14)".
func (op Operation) String() string {
	switch op.Kind {
	case OpCX:
		return fmt.Sprintf("CX(%d,%d)", op.A, op.B)
	case OpMeasure:
		return fmt.Sprintf("Measure(%d->r%d)", op.A, op.Dst)
	default:
		return fmt.Sprintf("%s(%d)", op.Kind, op.A)
	}
}

// apply executes op on t, writing measurement outcomes into regs.
func (op Operation) apply(t *Tableau, regs *register.File) error {
	switch op.Kind {
	case OpCX:
		return t.CX(op.A, op.B)
	case OpH:
		return t.H(op.A)
	case OpS:
		return t.S(op.A)
	case OpX:
		return t.X(op.A)
	case OpZ:
		return t.Z(op.A)
	case OpMeasure:
		v, err := t.Measure(op.A)
		if err != nil {
			return err
		}
		return regs.Set(op.Dst, v)
	case OpMeasureToZero:
		_, err := t.MeasureToZero(op.A)
		return err
	default:
		return ErrUnknownOperation
	}
}
