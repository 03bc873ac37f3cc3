// SPDX-License-Identifier: MIT

package lin

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlin/matrix"
	"github.com/katalvlaran/lvlin/shape"
)

// Tensor is one instance of a family Type: exactly rows*cols float64 values in
// row-major order, owned by the instance.
//
// Value semantics: every value-returning operation allocates a fresh Tensor and
// never aliases an operand; Clone is the deep copy. In-place methods (…Assign,
// Set, SetAt) and View are the only ways storage is shared or mutated.
//
// A Tensor is safe for concurrent reads; writers need external synchronization.
type Tensor struct {
	typ *Type
	d   *matrix.Dense // len == cap == typ.Size()
}

// newTensor allocates a zero instance of t.
func newTensor(t *Type) *Tensor {
	d, err := matrix.NewDense(t.Rows(), t.Cols())
	if err != nil {
		// Registered shapes have positive extents.
		panic("lin: " + err.Error())
	}

	return &Tensor{typ: t, d: d}
}

// wrap adopts a kernel result whose shape matches t.
func wrap(t *Type, d *matrix.Dense) *Tensor {
	return &Tensor{typ: t, d: d}
}

// data is the live row-major buffer.
func (t *Tensor) data() []float64 { return t.d.Data() }

// Type returns the family member of t.
func (t *Tensor) Type() *Type { return t.typ }

// Shape returns t's (rows, cols).
func (t *Tensor) Shape() shape.Shape { return t.typ.shape }

// Rows returns the row count.
func (t *Tensor) Rows() int { return t.typ.Rows() }

// Cols returns the column count.
func (t *Tensor) Cols() int { return t.typ.Cols() }

// Size returns rows*cols.
func (t *Tensor) Size() int { return t.typ.Size() }

// Len is Size; it is the extent of linear indexing.
func (t *Tensor) Len() int { return t.typ.Size() }

// Kind classifies t.
func (t *Tensor) Kind() shape.Kind { return t.typ.Kind() }

// Dense returns an independent copy of t as a kernel matrix.
func (t *Tensor) Dense() *matrix.Dense {
	return t.d.Clone().(*matrix.Dense)
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	return wrap(t.typ, t.Dense())
}

// Equal reports whether o has the same type and bit-identical elements.
// NaNs with equal payloads compare equal; +0 and -0 do not.
func (t *Tensor) Equal(o *Tensor) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.typ != o.typ {
		return false
	}
	a, b := t.data(), o.data()
	for k := range a {
		if math.Float64bits(a[k]) != math.Float64bits(b[k]) {
			return false
		}
	}

	return true
}

// String renders the type name, then one line per row with comma-separated
// values in shortest round-trip form:
//
//	Matrix2x3
//	0, 1, 2
//	3, 4, 5
//
// A zero Tensor renders as "Tensor(untyped)".
func (t *Tensor) String() string {
	if t == nil || t.typ == nil {
		return "Tensor(untyped)"
	}
	var b strings.Builder
	b.WriteString(t.typ.name)
	rows, cols := t.Rows(), t.Cols()
	data := t.data()

	var i, j int
	for i = 0; i < rows; i++ {
		b.WriteByte('\n')
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(data[i*cols+j], 'g', -1, 64))
		}
	}

	return b.String()
}
