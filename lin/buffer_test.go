// SPDX-License-Identifier: MIT
package lin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlin/lin"
)

func TestFromBufferContiguous(t *testing.T) {
	t.Parallel()
	x, err := lin.Matrix2x3.FromBuffer(lin.FloatBuffer(seq(6), 2, 3))
	require.NoError(t, err)
	requireValues(t, lin.Matrix2x3, seq(6), x)

	x, err = lin.Matrix2x3.FromBuffer(lin.FloatBuffer(seq(6), 6))
	require.NoError(t, err)
	requireValues(t, lin.Matrix2x3, seq(6), x)

	x, err = lin.RowVector3.FromBuffer(lin.FloatBuffer(seq(3), 1, 3))
	require.NoError(t, err)
	requireValues(t, lin.RowVector3, seq(3), x)

	x, err = lin.Vector3.FromBuffer(lin.FloatBuffer(seq(3), 3, 1))
	require.NoError(t, err)
	requireValues(t, lin.Vector3, seq(3), x)
}

// TestFromBufferTransposedExtents: a 4x2 buffer is not a Matrix2x4.
func TestFromBufferTransposedExtents(t *testing.T) {
	t.Parallel()
	_, err := lin.Matrix2x4.FromBuffer(lin.FloatBuffer(seq(8), 4, 2))
	require.ErrorIs(t, err, lin.ErrShapeMismatch)
}

func TestFromBufferRejects(t *testing.T) {
	t.Parallel()
	vals := seq(6)
	tests := []struct {
		name string
		edit func(b *lin.Buffer)
		want error
	}{
		{"format", func(b *lin.Buffer) { b.Format = "f" }, lin.ErrFormat},
		{"itemsize", func(b *lin.Buffer) { b.ItemSize = 4 }, lin.ErrFormat},
		{"zero dims", func(b *lin.Buffer) { b.Shape = nil; b.Strides = nil }, lin.ErrShapeMismatch},
		{"three dims", func(b *lin.Buffer) { b.Shape = []int{1, 2, 3}; b.Strides = nil }, lin.ErrShapeMismatch},
		{"flat length", func(b *lin.Buffer) { b.Shape = []int{5}; b.Strides = nil }, lin.ErrShapeMismatch},
		{"stride count", func(b *lin.Buffer) { b.Strides = []int{8} }, lin.ErrShapeMismatch},
		{"short data", func(b *lin.Buffer) { b.Data = b.Data[:40] }, lin.ErrShapeMismatch},
		{"offset overrun", func(b *lin.Buffer) { b.Offset = 8 }, lin.ErrShapeMismatch},
		{"stride overrun", func(b *lin.Buffer) { b.Strides = []int{32, 8} }, lin.ErrShapeMismatch},
		{"negative reach", func(b *lin.Buffer) { b.Strides = []int{-24, 8} }, lin.ErrShapeMismatch},
		{"negative offset", func(b *lin.Buffer) { b.Offset = -8 }, lin.ErrShapeMismatch},
		{"huge offset", func(b *lin.Buffer) { b.Offset = math.MaxInt - 4 }, lin.ErrShapeMismatch},
		{"huge row stride", func(b *lin.Buffer) { b.Strides = []int{math.MaxInt, 8} }, lin.ErrShapeMismatch},
		{"huge col stride", func(b *lin.Buffer) { b.Strides = []int{24, math.MaxInt / 2} }, lin.ErrShapeMismatch},
		{"min stride", func(b *lin.Buffer) { b.Strides = []int{math.MinInt, 8} }, lin.ErrShapeMismatch},
		{"empty data", func(b *lin.Buffer) { b.Data = nil }, lin.ErrShapeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := lin.FloatBuffer(vals, 2, 3)
			tc.edit(&b)
			_, err := lin.Matrix2x3.FromBuffer(b)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFromBufferVectorOverflow: a 1-D walk with an offset near MaxInt must
// fail validation instead of wrapping around.
func TestFromBufferVectorOverflow(t *testing.T) {
	t.Parallel()
	b := lin.FloatBuffer(make([]float64, 2), 2)
	b.Offset = math.MaxInt - 4
	_, err := lin.Vector2.FromBuffer(b)
	require.ErrorIs(t, err, lin.ErrShapeMismatch)

	b = lin.FloatBuffer(make([]float64, 4), 2, 2)
	b.Strides = []int{math.MaxInt, 8}
	require.NotPanics(t, func() {
		_, err = lin.Matrix2x2.FromBuffer(b)
	})
	require.ErrorIs(t, err, lin.ErrShapeMismatch)
}

// TestFromBufferStrided reads a column-major (Fortran order) buffer.
func TestFromBufferStrided(t *testing.T) {
	t.Parallel()
	fortran := []float64{0, 3, 1, 4, 2, 5} // M[i][j] = 3i + j stored by columns
	b := lin.FloatBuffer(fortran, 6)
	b.Shape = []int{2, 3}
	b.Strides = []int{8, 16}
	x, err := lin.Matrix2x3.FromBuffer(b)
	require.NoError(t, err)
	requireValues(t, lin.Matrix2x3, seq(6), x)
}

func TestFromBufferReversed(t *testing.T) {
	t.Parallel()
	b := lin.FloatBuffer([]float64{5, 4, 3, 2, 1, 0}, 6)
	b.Strides = []int{-8}
	b.Offset = 40
	x, err := lin.Vector6.FromBuffer(b)
	require.NoError(t, err)
	requireValues(t, lin.Vector6, seq(6), x)
}

func TestViewGeometry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ     *lin.Type
		ndim    int
		extents []int
		strides []int
	}{
		{lin.Vector3, 1, []int{3}, []int{8}},
		{lin.RowVector3, 1, []int{3}, []int{8}},
		{lin.Matrix2x3, 2, []int{2, 3}, []int{24, 8}},
		{lin.Matrix6x6, 2, []int{6, 6}, []int{48, 8}},
	}
	for _, tc := range tests {
		v := tc.typ.New().View()
		require.Equal(t, "d", v.Format())
		require.Equal(t, 8, v.ItemSize())
		require.Equal(t, tc.ndim, v.NDim(), tc.typ.Name())
		require.Equal(t, tc.extents, v.Extents(), tc.typ.Name())
		require.Equal(t, tc.strides, v.Strides(), tc.typ.Name())
		require.Len(t, v.Bytes(), tc.typ.Size()*8)
	}
}

// TestViewAliases: writes through the view are visible through Get.
func TestViewAliases(t *testing.T) {
	t.Parallel()
	x := mustFlat(t, lin.Matrix2x2, 1, 2, 3, 4)
	v := x.View()
	v.Float64s()[1] = 42
	got, err := x.Get(1)
	require.NoError(t, err)
	require.Equal(t, 42.0, got)

	require.NoError(t, x.Set(-1, -7))
	require.Equal(t, -7.0, v.Float64s()[3])

	y, err := lin.Matrix2x2.FromBuffer(v.Buffer())
	require.NoError(t, err)
	require.True(t, x.Equal(y))
	v.Float64s()[0] = 100 // FromBuffer copied
	require.False(t, x.Equal(y))
}
