// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlin/matrix"
	"github.com/stretchr/testify/require"
)

func TestUnaryKernels(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	src := MustDenseFrom(t, 2, 3, -2, 0, 3, nan, math.Copysign(0, -1), 0.5)

	tests := []struct {
		name string
		fn   func(matrix.Matrix) (*matrix.Dense, error)
		want []float64
	}{
		{"Negate", matrix.Negate, []float64{2, 0, -3, nan, 0, -0.5}},
		{"Sign", matrix.Sign, []float64{-1, 0, 1, 0, 0, 1}},
		{"Square", matrix.Square, []float64{4, 0, 9, nan, 0, 0.25}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, in := range []matrix.Matrix{src, hide{src}} {
				out, err := tc.fn(in)
				require.NoError(t, err)
				require.Equal(t, 2, out.Rows())
				require.Equal(t, 3, out.Cols())
				for k, w := range tc.want {
					got := out.Data()[k]
					if math.IsNaN(w) {
						require.True(t, math.IsNaN(got), "idx %d", k)
						continue
					}
					require.Equal(t, w, got, "idx %d", k)
				}
			}
		})
	}
}

func TestBinaryKernels(t *testing.T) {
	t.Parallel()
	a := MustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	b := MustDenseFrom(t, 2, 2, 4, 3, 2, 1)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5, 5, 5}, sum.Data())

	diff, err := matrix.Sub(a, hide{b})
	require.NoError(t, err)
	require.Equal(t, []float64{-3, -1, 1, 3}, diff.Data())

	had, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6, 6, 4}, had.Data())

	q, err := matrix.Divide(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 2.0 / 3.0, 1.5, 4}, q.Data())

	// operands untouched
	require.Equal(t, []float64{1, 2, 3, 4}, a.Data())
	require.Equal(t, []float64{4, 3, 2, 1}, b.Data())
}

func TestBinaryKernelErrors(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2)
	c := MustDense(t, 2, 3)

	_, err := matrix.Add(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense
	_, err = matrix.Divide(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Negate(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScalarKernels(t *testing.T) {
	t.Parallel()
	m := MustDenseFrom(t, 1, 3, 1, 2, 4)

	got, err := matrix.AddScalar(m, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 5}, got.Data())

	got, err = matrix.Scale(m, -2)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -4, -8}, got.Data())

	got, err = matrix.DivScalar(m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1, 2}, got.Data())

	got, err = matrix.ScalarSub(5, m)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3, 1}, got.Data())

	got, err = matrix.ScalarDivide(8, m)
	require.NoError(t, err)
	require.Equal(t, []float64{8, 4, 2}, got.Data())

	got, err = matrix.DivScalar(m, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(got.Data()[0], 1))
}

func TestIsFinite(t *testing.T) {
	t.Parallel()
	m := MustDenseFrom(t, 2, 1, 1, 2)
	ok, err := matrix.IsFinite(m)
	require.NoError(t, err)
	require.True(t, ok)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.NoError(t, m.Set(1, 0, bad))
		ok, err = matrix.IsFinite(hide{m})
		require.NoError(t, err)
		require.False(t, ok)
	}
}
