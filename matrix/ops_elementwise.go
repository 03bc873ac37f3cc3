// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise and scalar-broadcast kernels of the family:
//     Negate, Sign, Square, Add, Sub, Hadamard, Divide and the scalar forms
//     AddScalar, Scale, DivScalar, ScalarSub, ScalarDivide.
//   - Keep the tight loops in two private micro-kernels (ewMap, ewZip) so each
//     public kernel is one validation plus one call.
//
// Determinism & Performance:
//   - Flat 0..n-1 traversal over row-major buffers.
//   - Exactly one allocation (the output Dense) per call once operands are *Dense.
//
// AI-Hints:
//   - Scalar-first forms (ScalarSub, ScalarDivide) exist because x-m and x/m are not
//     expressible as m-x or m/x without a second pass.

package matrix

import "math"

// Operation tags for the element-wise surface.
const (
	opNegate       = "Negate"
	opSign         = "Sign"
	opSquare       = "Square"
	opHadamard     = "Hadamard"
	opDivide       = "Divide"
	opAddScalar    = "AddScalar"
	opScale        = "Scale"
	opDivScalar    = "DivScalar"
	opScalarSub    = "ScalarSub"
	opScalarDivide = "ScalarDivide"
)

// ewMap computes out[k] = fn(m[k]) into a fresh Dense of m's shape.
func ewMap(tag string, m Matrix, fn func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	src, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Dense{r: src.r, c: src.c, data: make([]float64, len(src.data))}

	var idx, n int
	n = len(src.data)
	for idx = 0; idx < n; idx++ { // fixed order
		out.data[idx] = fn(src.data[idx])
	}

	return out, nil
}

// ewZip computes out[k] = fn(a[k], b[k]) for same-shape operands.
func ewZip(tag string, a, b Matrix, fn func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}

	var idx, n int
	n = len(da.data)
	for idx = 0; idx < n; idx++ {
		out.data[idx] = fn(da.data[idx], db.data[idx])
	}

	return out, nil
}

// Negate returns -m element-wise.
func Negate(m Matrix) (*Dense, error) {
	return ewMap(opNegate, m, func(v float64) float64 { return -v })
}

// Sign returns the strict sign of every element: -1 for v<0, 1 for v>0, 0 otherwise.
// Both zeros and NaN map to 0.
func Sign(m Matrix) (*Dense, error) {
	return ewMap(opSign, m, sign)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0 // ±0 and NaN
	}
}

// Square returns m[i,j]² element-wise.
func Square(m Matrix) (*Dense, error) {
	return ewMap(opSquare, m, func(v float64) float64 { return v * v })
}

// Add computes a + b element-wise. Shapes must match.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
func Add(a, b Matrix) (*Dense, error) {
	return ewZip(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub computes a - b element-wise. Shapes must match.
func Sub(a, b Matrix) (*Dense, error) {
	return ewZip(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Notes:
//   - Hadamard ≠ matrix multiplication; it is elementwise. Use Mul for A×B.
func Hadamard(a, b Matrix) (*Dense, error) {
	return ewZip(opHadamard, a, b, func(x, y float64) float64 { return x * y })
}

// Divide computes a / b element-wise under IEEE-754 rules (x/0 is ±Inf or NaN).
func Divide(a, b Matrix) (*Dense, error) {
	return ewZip(opDivide, a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar returns m[i,j] + x.
func AddScalar(m Matrix, x float64) (*Dense, error) {
	return ewMap(opAddScalar, m, func(v float64) float64 { return v + x })
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape; NaN/Inf propagate.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return ewMap(opScale, m, func(v float64) float64 { return v * alpha })
}

// DivScalar returns m[i,j] / x.
func DivScalar(m Matrix, x float64) (*Dense, error) {
	return ewMap(opDivScalar, m, func(v float64) float64 { return v / x })
}

// ScalarSub returns x - m[i,j], computed as (-m[i,j]) + x.
func ScalarSub(x float64, m Matrix) (*Dense, error) {
	return ewMap(opScalarSub, m, func(v float64) float64 { return -v + x })
}

// ScalarDivide returns x / m[i,j].
func ScalarDivide(x float64, m Matrix) (*Dense, error) {
	return ewMap(opScalarDivide, m, func(v float64) float64 { return x / v })
}

// IsFinite reports whether every element of m is neither NaN nor ±Inf.
func IsFinite(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsFinite, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return false, matrixErrorf(opIsFinite, err)
	}
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false, nil // first offender decides
		}
	}

	return true, nil
}
