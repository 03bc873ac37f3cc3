// SPDX-License-Identifier: MIT
package lin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlin/lin"
	"github.com/katalvlaran/lvlin/matrix"
)

func TestNewIsZero(t *testing.T) {
	t.Parallel()
	for _, typ := range lin.Types() {
		x := typ.New()
		require.Equal(t, make([]float64, typ.Size()), x.Serialize(), typ.Name())
		require.True(t, x.Equal(typ.Zeros()))
		require.Equal(t, typ.Size(), x.Len())
	}
}

func TestFillGenerators(t *testing.T) {
	t.Parallel()
	requireValues(t, lin.Vector3, []float64{1, 1, 1}, lin.Vector3.Ones())
	requireValues(t, lin.RowVector2, []float64{-2.5, -2.5}, lin.RowVector2.Fill(-2.5))
	for _, v := range lin.Matrix2x2.NaNs().Serialize() {
		assert.True(t, math.IsNaN(v))
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()
	id, err := lin.Matrix3x3.Identity()
	require.NoError(t, err)
	requireValues(t, lin.Matrix3x3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id)

	id, err = lin.Matrix6x6.Identity()
	require.NoError(t, err)
	tr, err := lin.Trace(id)
	require.NoError(t, err)
	require.Equal(t, 6.0, tr)

	for _, typ := range []*lin.Type{lin.Matrix2x3, lin.Vector3, lin.RowVector2} {
		_, err = typ.Identity()
		require.ErrorIs(t, err, lin.ErrNotSquare, typ.Name())
	}
}

func TestFromFlat(t *testing.T) {
	t.Parallel()
	vals := seq(6)
	x := mustFlat(t, lin.Matrix2x3, vals...)
	vals[0] = 99 // the instance owns its storage
	requireValues(t, lin.Matrix2x3, seq(6), x)

	_, err := lin.Matrix2x3.FromFlat(seq(5)...)
	require.ErrorIs(t, err, lin.ErrShapeMismatch)
	_, err = lin.Matrix2x3.FromFlat(seq(7)...)
	require.ErrorIs(t, err, lin.ErrShapeMismatch)
	require.Panics(t, func() { lin.Vector2.MustFromFlat(1) })
}

func TestFromRows(t *testing.T) {
	t.Parallel()
	x, err := lin.Matrix3x2.FromRows([][]float64{{0, 1}, {2, 3}, {4, 5}})
	require.NoError(t, err)
	requireValues(t, lin.Matrix3x2, seq(6), x)

	x, err = lin.Vector3.FromRows([][]float64{{7}, {8}, {9}})
	require.NoError(t, err)
	requireValues(t, lin.Vector3, []float64{7, 8, 9}, x)

	tests := []struct {
		name string
		rows [][]float64
	}{
		{"too few rows", [][]float64{{0, 1}, {2, 3}}},
		{"too many rows", [][]float64{{0, 1}, {2, 3}, {4, 5}, {6, 7}}},
		{"ragged", [][]float64{{0, 1}, {2, 3, 4}, {5, 6}}},
		{"transposed", [][]float64{{0, 1, 2}, {3, 4, 5}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := lin.Matrix3x2.FromRows(tc.rows)
			require.ErrorIs(t, err, lin.ErrShapeMismatch)
		})
	}
}

// TestDeserializeRoundTrip checks Deserialize(Serialize(x)) == x for every type.
func TestDeserializeRoundTrip(t *testing.T) {
	t.Parallel()
	src := lin.NewRandoms(7)
	for _, typ := range lin.Types() {
		x := typ.Rand(src)
		flat := x.Serialize()
		require.Len(t, flat, typ.Size())
		y, err := typ.Deserialize(flat)
		require.NoError(t, err)
		require.True(t, x.Equal(y), typ.Name())

		_, err = typ.Deserialize(flat[:len(flat)-1])
		require.ErrorIs(t, err, lin.ErrShapeMismatch)
		_, err = typ.Deserialize(append(flat, 0))
		require.ErrorIs(t, err, lin.ErrShapeMismatch)
	}
}

func TestFromDense(t *testing.T) {
	t.Parallel()
	d, err := matrix.NewDenseFrom(2, 3, seq(6))
	require.NoError(t, err)
	x, err := lin.Matrix2x3.FromDense(d)
	require.NoError(t, err)
	requireValues(t, lin.Matrix2x3, seq(6), x)

	require.NoError(t, d.Set(0, 0, 42))
	v, err := x.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = lin.Matrix3x2.FromDense(d)
	require.ErrorIs(t, err, lin.ErrShapeMismatch)
	_, err = lin.Matrix3x2.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	back := x.Dense()
	require.Equal(t, seq(6), back.Data())
}

func TestDiag(t *testing.T) {
	t.Parallel()
	m, err := lin.Diag(mustFlat(t, lin.Vector3, 1, 2, 3))
	require.NoError(t, err)
	requireValues(t, lin.Matrix3x3, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}, m)

	m, err = lin.Diag(lin.RowVector6.Ones())
	require.NoError(t, err)
	require.Same(t, lin.Matrix6x6, m.Type())
	require.Equal(t, 6.0, lin.Sum(m))

	_, err = lin.Diag(lin.Matrix2x2.Ones())
	require.ErrorIs(t, err, lin.ErrShapeMismatch)
	_, err = lin.Diag(nil)
	require.ErrorIs(t, err, lin.ErrNilOperand)
}
