// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite unless a test is about non-finite values.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlin/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the At-based materialization path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustDenseFrom builds an r×c *Dense from row-major values or fails the test.
func MustDenseFrom(tb testing.TB, r, c int, vals ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with values in [-1, 1) from a seeded source.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	}))
}

// naiveMul is the reference triple loop used to cross-check Mul.
func naiveMul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	out := MustDense(tb, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var acc float64
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				require.NoError(tb, err)
				bv, err := b.At(k, j)
				require.NoError(tb, err)
				acc += av * bv
			}
			require.NoError(tb, out.Set(i, j, acc))
		}
	}

	return out
}
