// SPDX-License-Identifier: MIT

package lin

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// Element format of every family buffer.
const (
	FormatFloat64 = "d" // struct-style type code of an IEEE-754 binary64
	ItemSize      = 8   // bytes per element
)

// Buffer describes a foreign strided array: raw bytes plus the element format,
// extents and byte strides needed to read it. Element (i, j) of a 2-D buffer
// starts at Offset + i*Strides[0] + j*Strides[1]; elements are in native byte order.
type Buffer struct {
	Data     []byte
	Format   string
	ItemSize int
	Shape    []int
	Strides  []int // nil means C-contiguous
	Offset   int
}

// FloatBuffer describes vals as a C-contiguous buffer with the given extents.
// The returned Buffer aliases vals.
func FloatBuffer(vals []float64, extents ...int) Buffer {
	strides := make([]int, len(extents))
	step := ItemSize
	for k := len(extents) - 1; k >= 0; k-- {
		strides[k] = step
		step *= extents[k]
	}

	return Buffer{
		Data:     float64Bytes(vals),
		Format:   FormatFloat64,
		ItemSize: ItemSize,
		Shape:    append([]int(nil), extents...),
		Strides:  strides,
	}
}

// float64Bytes reinterprets vals as bytes without copying.
func float64Bytes(vals []float64) []byte {
	if len(vals) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy view, length derived from len(vals)
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*ItemSize)
}

// FromBuffer builds an instance of t from a foreign buffer.
//
// Implementation:
//   - Stage 1: the element format must be float64 ("d", 8 bytes), else ErrFormat.
//   - Stage 2: a 1-D buffer must have extent Size (row-major fill); a 2-D buffer
//     must have extents (Rows, Cols); any other dimensionality is ErrShapeMismatch.
//   - Stage 3: strides (contiguous when nil) must keep every element inside Data.
//   - Stage 4: copy element by element honouring the strides.
//
// Behavior highlights:
//   - All validation happens before the first element is read, so a failure
//     never reads out of bounds and never yields a partially filled instance.
//   - A 2-D buffer declared as (cols, rows) is rejected; it is never transposed.
func (t *Type) FromBuffer(b Buffer) (*Tensor, error) {
	tag := t.name + ".FromBuffer"
	if b.Format != FormatFloat64 || b.ItemSize != ItemSize {
		return nil, linErrorf(tag, fmt.Errorf("format %q itemsize %d: %w", b.Format, b.ItemSize, ErrFormat))
	}

	var rows, cols int
	switch len(b.Shape) {
	case 1:
		if b.Shape[0] != t.Size() {
			return nil, linErrorf(tag, fmt.Errorf("extent %d, want %d: %w", b.Shape[0], t.Size(), ErrShapeMismatch))
		}
		rows, cols = 1, b.Shape[0]
	case 2:
		if b.Shape[0] != t.Rows() {
			return nil, linErrorf(tag, fmt.Errorf("row extent %d, want %d: %w", b.Shape[0], t.Rows(), ErrShapeMismatch))
		}
		if b.Shape[1] != t.Cols() {
			return nil, linErrorf(tag, fmt.Errorf("column extent %d, want %d: %w", b.Shape[1], t.Cols(), ErrShapeMismatch))
		}
		rows, cols = b.Shape[0], b.Shape[1]
	default:
		return nil, linErrorf(tag, fmt.Errorf("%d dimensions, want 1 or 2: %w", len(b.Shape), ErrShapeMismatch))
	}

	rs, cs, err := b.strides2(rows, cols)
	if err != nil {
		return nil, linErrorf(tag, err)
	}

	out := newTensor(t)
	data := out.data()
	var i, j, off int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			off = b.Offset + i*rs + j*cs
			data[i*cols+j] = math.Float64frombits(binary.NativeEndian.Uint64(b.Data[off : off+ItemSize]))
		}
	}

	return out, nil
}

// strides2 returns (row, col) byte strides for a rows×cols walk and checks
// that every addressed element lies inside Data.
func (b Buffer) strides2(rows, cols int) (int, int, error) {
	var rs, cs int
	switch {
	case b.Strides == nil:
		rs, cs = cols*ItemSize, ItemSize
	case len(b.Strides) != len(b.Shape):
		return 0, 0, fmt.Errorf("%d strides for %d dimensions: %w", len(b.Strides), len(b.Shape), ErrShapeMismatch)
	case len(b.Strides) == 1:
		rs, cs = 0, b.Strides[0]
	default:
		rs, cs = b.Strides[0], b.Strides[1]
	}

	// Extents are at most 6, so once offset and strides are bounded by
	// len(Data) the walk below cannot overflow.
	n := len(b.Data)
	if b.Offset < 0 || b.Offset >= n {
		return 0, 0, fmt.Errorf("offset %d outside %d bytes: %w", b.Offset, n, ErrShapeMismatch)
	}
	for _, s := range [2]int{rs, cs} {
		if s < -n || s > n {
			return 0, 0, fmt.Errorf("stride %d exceeds %d bytes: %w", s, n, ErrShapeMismatch)
		}
	}

	lo, hi := b.Offset, b.Offset
	for _, step := range [2]int{(rows - 1) * rs, (cols - 1) * cs} {
		if step < 0 {
			lo += step
		} else {
			hi += step
		}
	}
	if lo < 0 || hi+ItemSize > len(b.Data) {
		return 0, 0, fmt.Errorf("strides address bytes [%d, %d) of %d: %w", lo, hi+ItemSize, len(b.Data), ErrShapeMismatch)
	}

	return rs, cs, nil
}

// View is a borrowed, zero-copy window onto a Tensor's storage for foreign
// interchange. It keeps the Tensor alive; writes through Float64s, Bytes or
// Buffer().Data are writes to the Tensor. Callers synchronize concurrent use.
type View struct {
	t *Tensor
}

// View returns the borrowed view of t's storage.
func (t *Tensor) View() *View { return &View{t: t} }

// Format is the element type code ("d").
func (v *View) Format() string { return FormatFloat64 }

// ItemSize is the element width in bytes (8).
func (v *View) ItemSize() int { return ItemSize }

// NDim is 1 for column and row vectors and 2 for matrices.
func (v *View) NDim() int {
	if v.t.Kind().IsVector() {
		return 1
	}

	return 2
}

// Extents are (Size) for vectors and (Rows, Cols) for matrices.
func (v *View) Extents() []int {
	if v.NDim() == 1 {
		return []int{v.t.Size()}
	}

	return []int{v.t.Rows(), v.t.Cols()}
}

// Strides are byte strides: (8) for vectors, (Cols*8, 8) for matrices.
func (v *View) Strides() []int {
	if v.NDim() == 1 {
		return []int{ItemSize}
	}

	return []int{v.t.Cols() * ItemSize, ItemSize}
}

// Float64s aliases the storage.
func (v *View) Float64s() []float64 { return v.t.data() }

// Bytes aliases the storage as native-order bytes.
func (v *View) Bytes() []byte { return float64Bytes(v.t.data()) }

// Buffer describes the view as a Buffer aliasing the storage.
func (v *View) Buffer() Buffer {
	return Buffer{
		Data:     v.Bytes(),
		Format:   FormatFloat64,
		ItemSize: ItemSize,
		Shape:    v.Extents(),
		Strides:  v.Strides(),
	}
}
