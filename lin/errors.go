// SPDX-License-Identifier: MIT
// Package lin: sentinel error set and the typed IndexError.
// All constructors, accessors and operations return these sentinels (wrapped
// with context); callers match them with errors.Is / errors.As. Failures are
// never retried or swallowed. Indexing, serialization and String treat a nil or
// zero Tensor as untyped (ErrNoType); the remaining methods and the unary
// operators panic on one, as with any nil receiver.

package lin

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports a foreign buffer whose element format is not float64.
	ErrFormat = errors.New("lin: incompatible format, expected float64 elements")

	// ErrShapeMismatch reports extents or a length that disagree with the target
	// type (buffer extents, flat length, nested rows, same-shape operands), or a
	// buffer dimensionality other than 1 or 2.
	ErrShapeMismatch = errors.New("lin: shape mismatch")

	// ErrIndex is matched by every *IndexError.
	ErrIndex = errors.New("lin: index out of range")

	// ErrNilOperand reports a nil *Tensor passed as an operand.
	ErrNilOperand = errors.New("lin: nil operand")

	// ErrNotSquare reports a square-only generator called on a non-square type.
	ErrNotSquare = errors.New("lin: type is not a square matrix")

	// ErrUnknownType reports a shape or name outside the family.
	ErrUnknownType = errors.New("lin: unknown type")

	// ErrNoType reports an operation on a zero Tensor that has no type yet.
	ErrNoType = errors.New("lin: tensor has no type")

	// ErrNonFinite reports a NaN or ±Inf element where the encoding cannot carry it.
	ErrNonFinite = errors.New("lin: non-finite element")
)

// Axis names the index that failed.
type Axis uint8

// Axes.
const (
	AxisLinear Axis = iota // row-major linear index
	AxisRow
	AxisCol
)

var axisNames = [...]string{AxisLinear: "linear", AxisRow: "row", AxisCol: "column"}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}

	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// IndexError is returned when an index falls outside [-Extent, Extent).
type IndexError struct {
	Axis   Axis
	Index  int // as given by the caller, before normalization
	Extent int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("lin: %s index %d out of range [%d, %d)", e.Axis, e.Index, -e.Extent, e.Extent)
}

// Is makes errors.Is(err, ErrIndex) hold for every IndexError.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// linErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func linErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
