// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Kind classifies a shape by its extents.
type Kind uint8

// Kinds, in registry order.
const (
	ColumnVector Kind = iota // cols == 1, rows > 1
	RowVector                // rows == 1, cols > 1
	Matrix                   // everything else
)

var kindNames = [...]string{
	ColumnVector: "ColumnVector",
	RowVector:    "RowVector",
	Matrix:       "Matrix",
}

// String returns "ColumnVector", "RowVector" or "Matrix".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText renders the kind name for JSON/YAML encoders.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// IsVector reports whether k is ColumnVector or RowVector.
func (k Kind) IsVector() bool { return k == ColumnVector || k == RowVector }

// Shape is a (rows, cols) pair. It is a comparable value usable as a map key.
type Shape struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// Vector returns the n×1 column-vector shape.
func Vector(n int) Shape { return Shape{Rows: n, Cols: 1} }

// RowVec returns the 1×n row-vector shape.
func RowVec(n int) Shape { return Shape{Rows: 1, Cols: n} }

// Mat returns the r×c shape.
func Mat(r, c int) Shape { return Shape{Rows: r, Cols: c} }

// Kind classifies s. ColumnVector iff cols=1 and rows>1; RowVector iff rows=1
// and cols>1; Matrix otherwise (including the never-registered 1x1).
func (s Shape) Kind() Kind { return Classify(s) }

// Classify is the total, pure classification function behind Shape.Kind.
func Classify(s Shape) Kind {
	switch {
	case s.Cols == 1 && s.Rows > 1:
		return ColumnVector
	case s.Rows == 1 && s.Cols > 1:
		return RowVector
	default:
		return Matrix
	}
}

// Size is rows*cols.
func (s Shape) Size() int { return s.Rows * s.Cols }

// T returns the transposed shape.
func (s Shape) T() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// IsSquare reports rows == cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// Len is the element count along the vector axis, or 0 for matrices.
func (s Shape) Len() int {
	if s.Kind().IsVector() {
		return s.Size()
	}

	return 0
}

// Name is the type name of the shape: "Vector3", "RowVector3", "Matrix2x3".
func (s Shape) Name() string {
	switch s.Kind() {
	case ColumnVector:
		return fmt.Sprintf("Vector%d", s.Rows)
	case RowVector:
		return fmt.Sprintf("RowVector%d", s.Cols)
	default:
		return fmt.Sprintf("Matrix%dx%d", s.Rows, s.Cols)
	}
}

// String implements fmt.Stringer; identical to Name.
func (s Shape) String() string { return s.Name() }
