// SPDX-License-Identifier: MIT

package lin

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// Serialize copies the storage into a flat slice of exactly Size values in
// row-major order. There is no header: the type is implied by the caller.
// A zero Tensor serializes to nil.
func (t *Tensor) Serialize() []float64 {
	if t == nil || t.typ == nil {
		return nil
	}
	out := make([]float64, t.Size())
	copy(out, t.data())

	return out
}

// MarshalBinary encodes the Serialize layout as little-endian IEEE-754 words,
// 8*Size bytes, no header. Bit patterns (NaN payloads, -0) survive the round trip.
func (t *Tensor) MarshalBinary() ([]byte, error) {
	if t.typ == nil {
		return nil, linErrorf("MarshalBinary", ErrNoType)
	}
	data := t.data()
	out := make([]byte, len(data)*ItemSize)
	for k, v := range data {
		binary.LittleEndian.PutUint64(out[k*ItemSize:], math.Float64bits(v))
	}

	return out, nil
}

// UnmarshalBinary decodes MarshalBinary output into t, which must already have
// a type (for example from Type.New). The length must be 8*Size.
// The values are written into t's existing storage, so a View taken earlier
// still aliases t. t is unchanged on error.
func (t *Tensor) UnmarshalBinary(p []byte) error {
	if t.typ == nil {
		return linErrorf("UnmarshalBinary", ErrNoType)
	}
	dec, err := t.typ.DecodeBinary(p)
	if err != nil {
		return err
	}
	copy(t.data(), dec.data())

	return nil
}

// DecodeBinary builds an instance of t from MarshalBinary output.
func (t *Type) DecodeBinary(p []byte) (*Tensor, error) {
	if len(p) != t.Size()*ItemSize {
		return nil, linErrorf(t.name+".DecodeBinary", fmt.Errorf("got %d bytes, want %d: %w", len(p), t.Size()*ItemSize, ErrShapeMismatch))
	}
	out := newTensor(t)
	data := out.data()
	for k := range data {
		data[k] = math.Float64frombits(binary.LittleEndian.Uint64(p[k*ItemSize:]))
	}

	return out, nil
}

// jsonTensor is the JSON interchange form: {"type":"Matrix2x3","data":[[...],[...]]}.
type jsonTensor struct {
	Type string      `json:"type"`
	Data [][]float64 `json:"data"`
}

// MarshalJSON encodes t with its type name and nested rows.
// Non-finite elements have no JSON representation and yield ErrNonFinite.
func (t *Tensor) MarshalJSON() ([]byte, error) {
	if t.typ == nil {
		return nil, linErrorf("MarshalJSON", ErrNoType)
	}
	rows, cols := t.Rows(), t.Cols()
	data := t.data()
	doc := jsonTensor{Type: t.typ.name, Data: make([][]float64, rows)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := data[i*cols+j]; math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, linErrorf("MarshalJSON", fmt.Errorf("(%d,%d)=%v: %w", i, j, v, ErrNonFinite))
			}
		}
		doc.Data[i] = data[i*cols : (i+1)*cols]
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes the MarshalJSON form. A zero Tensor takes the encoded
// type; a typed Tensor only accepts its own type (ErrShapeMismatch otherwise)
// and is overwritten in place. t is unchanged on error.
func (t *Tensor) UnmarshalJSON(p []byte) error {
	var doc jsonTensor
	if err := json.Unmarshal(p, &doc); err != nil {
		return linErrorf("UnmarshalJSON", err)
	}
	typ, err := TypeByName(doc.Type)
	if err != nil {
		return linErrorf("UnmarshalJSON", err)
	}
	if t.typ != nil && t.typ != typ {
		return linErrorf("UnmarshalJSON", fmt.Errorf("%s into %s: %w", typ, t.typ, ErrShapeMismatch))
	}
	dec, err := typ.FromRows(doc.Data)
	if err != nil {
		return linErrorf("UnmarshalJSON", err)
	}
	if t.typ != nil {
		copy(t.data(), dec.data())
		return nil
	}
	t.typ, t.d = typ, dec.d

	return nil
}
