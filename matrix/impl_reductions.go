// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reductions to a scalar (Sum, SumSquares, Dot, Norm, Trace) and the
//     3-vector Cross product.
//
// Design:
//   - Flat reductions go through gonum/floats, which sums in index order.
//   - Dot/Norm/Cross accept either orientation (1×n or n×1); only the element
//     count matters to them.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// crossLen is the only vector length for which Cross is defined.
const crossLen = 3

// Sum returns the sum of all elements.
func Sum(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	return floats.Sum(d.data), nil
}

// SumSquares returns Σ m[i,j]². It is NOT square-rooted; use Norm for the 2-norm.
func SumSquares(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSumSquares, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opSumSquares, err)
	}

	return floats.Dot(d.data, d.data), nil
}

// Dot returns Σ u[k]*v[k] for two vectors with the same element count.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector, ErrDimensionMismatch (wrapped with "Dot").
func Dot(u, v Matrix) (float64, error) {
	du, dv, err := vectorPair(opDot, u, v)
	if err != nil {
		return 0, err
	}

	return floats.Dot(du.data, dv.data), nil
}

// Norm returns the Euclidean 2-norm of a vector.
func Norm(u Matrix) (float64, error) {
	if err := ValidateVector(u); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	d, err := denseOf(u)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return floats.Norm(d.data, 2), nil
}

// Trace returns the sum of the main diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Trace").
//
// Complexity:
//   - Time O(n), Space O(1) on *Dense.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var i int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc += d.data[i*d.c+i] // stride c+1 walks the diagonal
	}

	return acc, nil
}

// Cross returns u × v for two 3-element vectors.
// The result has u's orientation: a column in gives a column out, a row gives a row.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector, ErrDimensionMismatch (wrapped with "Cross").
func Cross(u, v Matrix) (*Dense, error) {
	du, dv, err := vectorPair(opCross, u, v)
	if err != nil {
		return nil, err
	}
	if len(du.data) != crossLen {
		return nil, matrixErrorf(opCross, fmt.Errorf("length %d: %w", len(du.data), ErrDimensionMismatch))
	}

	a, b := du.data, dv.data
	out := &Dense{r: du.r, c: du.c, data: make([]float64, crossLen)}
	out.data[0] = a[1]*b[2] - a[2]*b[1]
	out.data[1] = a[2]*b[0] - a[0]*b[2]
	out.data[2] = a[0]*b[1] - a[1]*b[0]

	return out, nil
}

// vectorPair validates two vector operands of equal length and materializes them.
func vectorPair(tag string, u, v Matrix) (*Dense, *Dense, error) {
	if err := ValidateVector(u); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if err := ValidateVector(v); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	du, err := denseOf(u)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	dv, err := denseOf(v)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if err = ValidateVecLen(dv.data, len(du.data)); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return du, dv, nil
}

// AllClose reports whether a and b have the same shape and every pair satisfies
// |a-b| <= atol or a relative difference within rtol.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := denseOf(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	return floats.EqualFunc(da.data, db.data, func(x, y float64) bool {
		return scalar.EqualWithinAbsOrRel(x, y, atol, rtol)
	}), nil
}
