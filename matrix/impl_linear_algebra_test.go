// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlin/matrix"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	t.Parallel()
	m := MustDenseFrom(t, 2, 3, 0, 1, 2, 3, 4, 5)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []float64{0, 3, 1, 4, 2, 5}, tr.Data())

	back, err := matrix.Transpose(hide{tr})
	require.NoError(t, err)
	require.Equal(t, m.Data(), back.Data())

	col := MustDenseFrom(t, 3, 1, 1, 2, 3)
	row, err := matrix.Transpose(col)
	require.NoError(t, err)
	require.Equal(t, 1, row.Rows())
	require.Equal(t, 3, row.Cols())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulMatchesNaive(t *testing.T) {
	t.Parallel()
	shapes := [][3]int{{2, 3, 4}, {4, 4, 4}, {3, 1, 3}, {1, 3, 3}, {4, 2, 1}, {6, 6, 6}}
	for n, s := range shapes {
		s := s
		seed := int64(n + 1)
		t.Run(fmt.Sprintf("%dx%dx%d", s[0], s[1], s[2]), func(t *testing.T) {
			t.Parallel()
			a := MustDense(t, s[0], s[1])
			b := MustDense(t, s[1], s[2])
			fillDenseRand(t, a, seed)
			fillDenseRand(t, b, seed*31)

			got, err := matrix.Mul(a, b)
			require.NoError(t, err)
			want := naiveMul(t, a, b)
			ok, err := matrix.AllClose(got, want, 1e-12, 1e-12)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestMulOuterProduct(t *testing.T) {
	t.Parallel()
	u := MustDenseFrom(t, 3, 1, 1, 2, 3)
	v := MustDenseFrom(t, 1, 2, 10, -1)

	out, err := matrix.Mul(u, hide{v})
	require.NoError(t, err)
	require.Equal(t, 3, out.Rows())
	require.Equal(t, 2, out.Cols())
	require.Equal(t, []float64{10, -1, 20, -2, 30, -3}, out.Data())
}

func TestMulErrors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
