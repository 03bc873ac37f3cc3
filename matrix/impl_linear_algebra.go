// SPDX-License-Identifier: MIT
// Package matrix provides the shape-changing linear-algebra kernels:
// Transpose and the matrix product Mul. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Define operation tags and the matrixErrorf wrapper shared by every kernel file.
//   - Delegate the product to gonum's row-major BLAS so the inner loops are not
//     re-implemented here.
//
// Notes:
//   - Legality of a product between family shapes is decided upstream (package
//     binding); Mul only checks conformability (a.Cols == b.Rows).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opIsFinite   = "IsFinite"
	opSum        = "Sum"
	opSumSquares = "SumSquares"
	opDot        = "Dot"
	opNorm       = "Norm"
	opTrace      = "Trace"
	opCross      = "Cross"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Returns:
//   - error: "tag: err" with errors.Is/As transparency.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: contiguous slice mapping data[i*cols+j] → res[j*rows+i].
//
// Behavior highlights:
//   - A 1×n row transposes to an n×1 column and vice versa.
//   - One allocation for the result; no temporaries proportional to size.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := src.r, src.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}

	var i, j, baseSrc int // loop iterators
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[baseSrc+j]
		}
	}

	return res, nil
}

// Mul computes the matrix product a×b.
// Inputs must be non-nil and conformable (a.Cols == b.Rows). Operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate Dense(a.Rows, b.Cols).
//   - Stage 3: blas64.Gemm(NoTrans, NoTrans, 1, A, B, 0, C) over the row-major buffers.
//
// Behavior highlights:
//   - Column × row (k == 1) is the outer product; row × column yields a 1×1 Dense,
//     which this kernel allows even though the family never registers it.
//
// Returns:
//   - *Dense of shape (a.Rows × b.Cols).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := &Dense{r: da.r, c: db.c, data: make([]float64, da.r*db.c)}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		da.general(), db.general(),
		0, res.general())

	return res, nil
}

// general exposes the buffer as a row-major BLAS matrix without copying.
func (m *Dense) general() blas64.General {
	return blas64.General{Rows: m.r, Cols: m.c, Stride: m.c, Data: m.data}
}
