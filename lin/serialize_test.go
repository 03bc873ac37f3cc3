// SPDX-License-Identifier: MIT
package lin_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlin/lin"
)

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()
	x := mustFlat(t, lin.Matrix2x3, 0, math.Copysign(0, -1), math.NaN(), math.Inf(1), -1.5, 1e-300)
	p, err := x.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, p, 6*lin.ItemSize)
	require.Equal(t, math.Float64bits(-1.5), binary.LittleEndian.Uint64(p[32:]))

	y := lin.Matrix2x3.New()
	require.NoError(t, y.UnmarshalBinary(p))
	require.True(t, x.Equal(y)) // bit-exact, NaN and -0 included

	z, err := lin.Matrix2x3.DecodeBinary(p)
	require.NoError(t, err)
	require.True(t, x.Equal(z))
}

func TestUnmarshalBinaryRejects(t *testing.T) {
	t.Parallel()
	y := mustFlat(t, lin.Vector2, 1, 2)
	require.ErrorIs(t, y.UnmarshalBinary(make([]byte, 24)), lin.ErrShapeMismatch)
	require.ErrorIs(t, y.UnmarshalBinary(make([]byte, 15)), lin.ErrShapeMismatch)
	requireValues(t, lin.Vector2, []float64{1, 2}, y)

	var z lin.Tensor
	require.ErrorIs(t, z.UnmarshalBinary(make([]byte, 16)), lin.ErrNoType)
	_, err := z.MarshalBinary()
	require.ErrorIs(t, err, lin.ErrNoType)
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	x := mustFlat(t, lin.Matrix2x3, 0, 1, 2, 3, 4.5, -5)
	p, err := json.Marshal(x)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Matrix2x3","data":[[0,1,2],[3,4.5,-5]]}`, string(p))

	var z lin.Tensor // adopts the encoded type
	require.NoError(t, json.Unmarshal(p, &z))
	require.Same(t, lin.Matrix2x3, z.Type())
	require.True(t, x.Equal(&z))

	y := lin.Matrix2x3.New()
	require.NoError(t, json.Unmarshal(p, y))
	require.True(t, x.Equal(y))

	v := mustFlat(t, lin.Vector2, 1, 2)
	p, err = json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Vector2","data":[[1],[2]]}`, string(p))
}

func TestJSONRejects(t *testing.T) {
	t.Parallel()
	_, err := mustFlat(t, lin.Vector2, 1, math.NaN()).MarshalJSON()
	require.ErrorIs(t, err, lin.ErrNonFinite)
	_, err = lin.Vector3.Fill(math.Inf(-1)).MarshalJSON()
	require.ErrorIs(t, err, lin.ErrNonFinite)

	y := mustFlat(t, lin.Vector3, 1, 2, 3)
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"other type", `{"type":"RowVector3","data":[[1,2,3]]}`, lin.ErrShapeMismatch},
		{"unknown type", `{"type":"Matrix9x9","data":[]}`, lin.ErrUnknownType},
		{"ragged", `{"type":"Vector3","data":[[1],[2,3],[4]]}`, lin.ErrShapeMismatch},
		{"short", `{"type":"Vector3","data":[[1],[2]]}`, lin.ErrShapeMismatch},
	}
	for _, tc := range tests {
		require.ErrorIs(t, y.UnmarshalJSON([]byte(tc.in)), tc.want, tc.name)
	}
	require.Error(t, y.UnmarshalJSON([]byte(`{"type":`)))
	requireValues(t, lin.Vector3, []float64{1, 2, 3}, y)
}

// TestUnmarshalKeepsViews: decoding into a typed tensor overwrites its storage
// in place, so views taken beforehand keep aliasing it.
func TestUnmarshalKeepsViews(t *testing.T) {
	t.Parallel()
	x := mustFlat(t, lin.Vector3, 1, 2, 3)
	alias := x.View().Float64s()
	raw := x.View().Bytes()

	p, err := mustFlat(t, lin.Vector3, 7, 8, 9).MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, x.UnmarshalBinary(p))
	require.Equal(t, []float64{7, 8, 9}, alias)
	alias[0] = 99
	requireValues(t, lin.Vector3, []float64{99, 8, 9}, x)

	require.NoError(t, x.UnmarshalJSON([]byte(`{"type":"Vector3","data":[[4],[5],[6]]}`)))
	require.Equal(t, []float64{4, 5, 6}, alias)
	require.Equal(t, math.Float64bits(4), binary.NativeEndian.Uint64(raw))
	alias[2] = -1
	v, err := x.Get(-1)
	require.NoError(t, err)
	require.Equal(t, -1.0, v)
}
