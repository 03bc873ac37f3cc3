// SPDX-License-Identifier: MIT

package binding

import (
	"fmt"

	"github.com/pkg/errors"
)

// Op identifies one entry of the operator table.
type Op uint8

// Operations in catalog order.
const (
	OpNegate Op = iota
	OpSign
	OpSquare
	OpTranspose
	OpIsFinite
	OpSum
	OpFro
	OpAdd
	OpSubtract
	OpMultiply // element-wise
	OpDivide   // element-wise
	OpDot
	OpNorm
	OpTrace
	OpCross
	OpMatMul // shape-multiplying product

	numOps
)

var opNames = [numOps]string{
	OpNegate:    "negate",
	OpSign:      "sign",
	OpSquare:    "square",
	OpTranspose: "transpose",
	OpIsFinite:  "isfinite",
	OpSum:       "sum",
	OpFro:       "fro",
	OpAdd:       "add",
	OpSubtract:  "subtract",
	OpMultiply:  "multiply",
	OpDivide:    "divide",
	OpDot:       "dot",
	OpNorm:      "norm",
	OpTrace:     "trace",
	OpCross:     "cross",
	OpMatMul:    "mul",
}

// String returns the binding name of op ("negate", ..., "mul").
func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

// MarshalText renders the binding name.
func (op Op) MarshalText() ([]byte, error) { return []byte(op.String()), nil }

// Valid reports whether op is a catalog operation.
func (op Op) Valid() bool { return op < numOps }

// Ops returns every operation in catalog order.
func Ops() []Op {
	out := make([]Op, numOps)
	for i := range out {
		out[i] = Op(i)
	}

	return out
}

// ParseOp resolves a binding name to its Op.
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownOp, "%q", name)
}

// Form is the operand pattern of a binding.
type Form uint8

// Forms.
const (
	Unary        Form = iota // op(t)
	TensorTensor             // op(t, u)
	TensorScalar             // op(t, x)
	ScalarTensor             // op(x, t)
)

var formNames = [...]string{
	Unary:        "unary",
	TensorTensor: "tensor-tensor",
	TensorScalar: "tensor-scalar",
	ScalarTensor: "scalar-tensor",
}

func (f Form) String() string {
	if int(f) < len(formNames) {
		return formNames[f]
	}

	return fmt.Sprintf("Form(%d)", uint8(f))
}

// MarshalText renders the form name.
func (f Form) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// Result is what a binding yields.
type Result uint8

// Results.
const (
	ResultTensor Result = iota // a fresh family instance
	ResultScalar               // a float64
	ResultBool                 // a bool
)

var resultNames = [...]string{
	ResultTensor: "tensor",
	ResultScalar: "scalar",
	ResultBool:   "bool",
}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}

	return fmt.Sprintf("Result(%d)", uint8(r))
}

// MarshalText renders the result name.
func (r Result) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Restriction names the operand kinds an operation accepts.
type Restriction uint8

// Restrictions.
const (
	AnyShape     Restriction = iota // every registered shape
	SameShape                       // both operands share one shape
	VectorsOnly                     // column or row vectors (pairs must match in length)
	SquareOnly                      // square matrices
	Vector3Only                     // length-3 column or row vectors
	InnerMatched                    // l.Cols == r.Rows with a registered result
)

var restrictionNames = [...]string{
	AnyShape:     "any",
	SameShape:    "same-shape",
	VectorsOnly:  "vectors",
	SquareOnly:   "square",
	Vector3Only:  "vector3",
	InnerMatched: "inner-matched",
}

func (r Restriction) String() string {
	if int(r) < len(restrictionNames) {
		return restrictionNames[r]
	}

	return fmt.Sprintf("Restriction(%d)", uint8(r))
}

// MarshalText renders the restriction name.
func (r Restriction) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
