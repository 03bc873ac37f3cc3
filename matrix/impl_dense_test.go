// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlin/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFrom checks the copy semantics and the length contract.
func TestNewDenseFrom(t *testing.T) {
	t.Parallel()
	src := []float64{0, 1, 2, 3, 4, 5}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)
	require.Equal(t, 6, m.Size())

	src[0] = 99 // caller's slice is not retained
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = matrix.NewDenseFrom(2, 3, src[:5])
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom(-1, 3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	t.Parallel()
	rows, cols := 3, 4
	m := MustDense(t, rows, cols)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c})
	require.Len(t, m.Data(), rows*cols)
	require.Equal(t, rows*cols, cap(m.Data()))
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
	require.Equal(t, 7.89, m.Data()[5]) // row-major offset 1*3+2
}

// TestCloneIndependence checks that Clone deep-copies the buffer.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()
	m := MustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	cl := m.Clone()
	require.NoError(t, m.Set(0, 0, -1))

	v, err := cl.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestApplyDo covers the in-place transform and the early-exit visitor.
func TestApplyDo(t *testing.T) {
	t.Parallel()
	m := MustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(10*i+j) }))
	require.Equal(t, []float64{1, 3, 13, 15}, m.Data())
	require.ErrorIs(t, m.Apply(nil), matrix.ErrNilMatrix)

	var seen int
	m.Do(func(_, _ int, _ float64) bool {
		seen++
		return seen < 3
	})
	require.Equal(t, 3, seen)
}

// TestDenseString checks the bracketed diagnostic rendering.
func TestDenseString(t *testing.T) {
	t.Parallel()
	m := MustDenseFrom(t, 2, 2, 0.5, -1, 3, 1e21)
	require.Equal(t, "[0.5, -1]\n[3, 1e+21]\n", m.String())
}
