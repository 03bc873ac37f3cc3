// SPDX-License-Identifier: MIT
// Package lin_test: shared fixtures.

package lin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlin/lin"
)

// seq returns 0, 1, ..., n-1.
func seq(n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k)
	}

	return out
}

// mustFlat builds typ from row-major values or fails the test.
func mustFlat(tb testing.TB, typ *lin.Type, vals ...float64) *lin.Tensor {
	tb.Helper()
	out, err := typ.FromFlat(vals...)
	require.NoError(tb, err)

	return out
}

// requireValues checks type and row-major contents.
func requireValues(tb testing.TB, typ *lin.Type, want []float64, got *lin.Tensor) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Same(tb, typ, got.Type())
	require.Equal(tb, want, got.Serialize())
}
