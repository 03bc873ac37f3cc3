// SPDX-License-Identifier: MIT

package lin

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlin/matrix"
	"github.com/katalvlaran/lvlin/shape"
)

// New returns a zero instance of t.
func (t *Type) New() *Tensor { return newTensor(t) }

// Zeros returns a fresh instance with every element 0.
func (t *Type) Zeros() *Tensor { return newTensor(t) }

// Ones returns a fresh instance with every element 1.
func (t *Type) Ones() *Tensor { return t.Fill(1) }

// NaNs returns a fresh instance with every element NaN.
func (t *Type) NaNs() *Tensor { return t.Fill(math.NaN()) }

// Fill returns a fresh instance with every element x.
func (t *Type) Fill(x float64) *Tensor {
	out := newTensor(t)
	data := out.data()
	for k := range data {
		data[k] = x
	}

	return out
}

// Identity returns the identity matrix of a square matrix type.
func (t *Type) Identity() (*Tensor, error) {
	if t.Kind() != shape.Matrix || !t.shape.IsSquare() {
		return nil, linErrorf(t.name+".Identity", ErrNotSquare)
	}
	out := newTensor(t)
	n := t.Rows()
	data := out.data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}

	return out, nil
}

// FromFlat builds an instance from exactly Size values in row-major order.
func (t *Type) FromFlat(vals ...float64) (*Tensor, error) {
	if len(vals) != t.Size() {
		return nil, linErrorf(t.name+".FromFlat", fmt.Errorf("got %d values, want %d: %w", len(vals), t.Size(), ErrShapeMismatch))
	}
	d, err := matrix.NewDenseFrom(t.Rows(), t.Cols(), vals)
	if err != nil {
		return nil, linErrorf(t.name+".FromFlat", err)
	}

	return wrap(t, d), nil
}

// MustFromFlat is FromFlat for literals known to be well formed; it panics on error.
func (t *Type) MustFromFlat(vals ...float64) *Tensor {
	out, err := t.FromFlat(vals...)
	if err != nil {
		panic(err)
	}

	return out
}

// FromRows builds an instance from nested rows; extents must equal (rows, cols).
// Every row is checked before any element is copied.
func (t *Type) FromRows(rows [][]float64) (*Tensor, error) {
	tag := t.name + ".FromRows"
	if len(rows) != t.Rows() {
		return nil, linErrorf(tag, fmt.Errorf("got %d rows, want %d: %w", len(rows), t.Rows(), ErrShapeMismatch))
	}
	for i, r := range rows {
		if len(r) != t.Cols() {
			return nil, linErrorf(tag, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(r), t.Cols(), ErrShapeMismatch))
		}
	}
	out := newTensor(t)
	data := out.data()
	for i, r := range rows {
		copy(data[i*t.Cols():], r)
	}

	return out, nil
}

// Deserialize rebuilds an instance from the flat layout produced by Serialize.
// The length must equal Size; nothing is read past it.
func (t *Type) Deserialize(flat []float64) (*Tensor, error) {
	if len(flat) != t.Size() {
		return nil, linErrorf(t.name+".Deserialize", fmt.Errorf("got %d values, want %d: %w", len(flat), t.Size(), ErrShapeMismatch))
	}

	return t.FromFlat(flat...)
}

// FromDense adopts a copy of a kernel matrix whose extents equal t's.
func (t *Type) FromDense(m matrix.Matrix) (*Tensor, error) {
	tag := t.name + ".FromDense"
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linErrorf(tag, err)
	}
	if m.Rows() != t.Rows() || m.Cols() != t.Cols() {
		return nil, linErrorf(tag, fmt.Errorf("got %dx%d: %w", m.Rows(), m.Cols(), ErrShapeMismatch))
	}
	out := newTensor(t)
	if err := out.d.Apply(func(i, j int, _ float64) float64 {
		v, _ := m.At(i, j) // in range: extents checked above
		return v
	}); err != nil {
		return nil, linErrorf(tag, err)
	}

	return out, nil
}

// Diag returns the square matrix with v on its main diagonal.
// v must be a column or row vector of a size that has a square matrix type.
func Diag(v *Tensor) (*Tensor, error) {
	if v == nil {
		return nil, linErrorf("Diag", ErrNilOperand)
	}
	if !v.Kind().IsVector() {
		return nil, linErrorf("Diag", fmt.Errorf("%s is not a vector: %w", v.typ, ErrShapeMismatch))
	}
	n := v.Size()
	t, err := TypeOf(shape.Mat(n, n))
	if err != nil {
		return nil, linErrorf("Diag", err)
	}
	out := newTensor(t)
	data, src := out.data(), v.data()
	for i := 0; i < n; i++ {
		data[i*n+i] = src[i]
	}

	return out, nil
}
