// SPDX-License-Identifier: MIT

package binding

import (
	"fmt"

	"github.com/katalvlaran/lvlin/shape"
	"github.com/pkg/errors"
)

// Case classifies a legal product by operand kinds.
type Case uint8

// Product cases.
const (
	OuterProduct      Case = iota // column vector × row vector → matrix
	RowTimesMatrix                // row vector × matrix → row vector
	MatrixTimesVector             // matrix × column vector → column vector
	MatrixTimesMatrix             // matrix × matrix → matrix
)

var caseNames = [...]string{
	OuterProduct:      "outer",
	RowTimesMatrix:    "row-matrix",
	MatrixTimesVector: "matrix-vector",
	MatrixTimesMatrix: "matrix-matrix",
}

func (c Case) String() string {
	if int(c) < len(caseNames) {
		return caseNames[c]
	}

	return fmt.Sprintf("Case(%d)", uint8(c))
}

// MarshalText renders the case name.
func (c Case) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Product is a resolved legal multiplication l×r.
type Product struct {
	Left   shape.Shape `json:"left" yaml:"left"`
	Right  shape.Shape `json:"right" yaml:"right"`
	Result shape.Shape `json:"result" yaml:"result"`
	Case   Case        `json:"case" yaml:"case"`
}

// ResolveMul decides whether l×r is a legal product of family shapes and
// returns its result shape and case.
//
// Implementation:
//   - Stage 1: both operands must be registered.
//   - Stage 2: the outer product (column × row) is resolved explicitly; it is the
//     only case where two one-dimensional operands yield a two-dimensional result.
//   - Stage 3: every other pair needs l.Cols == r.Rows.
//   - Stage 4: the result (l.Rows, r.Cols) must be registered, which also rules out
//     the 1x1 row × column case and every rectangular product above size 4.
//
// Behavior highlights:
//   - Pure and total over shape pairs; the registry cutoff is never "completed":
//     Vector5 × RowVector6 is illegal because Matrix5x6 does not exist.
//
// Errors:
//   - ErrMulShape (wrapped with the operand names and the failing condition).
//
// Complexity:
//   - Time O(1), Space O(1).
func ResolveMul(l, r shape.Shape) (Product, error) {
	if !shape.Contains(l) || !shape.Contains(r) {
		return Product{}, errors.Wrapf(ErrMulShape, "%s × %s: operand not registered", l, r)
	}

	lk, rk := l.Kind(), r.Kind()
	if lk == shape.ColumnVector && rk == shape.RowVector {
		res := shape.Mat(l.Rows, r.Cols)
		if !shape.Contains(res) {
			return Product{}, errors.Wrapf(ErrMulShape, "%s × %s: outer product %s not registered", l, r, res)
		}

		return Product{Left: l, Right: r, Result: res, Case: OuterProduct}, nil
	}

	if l.Cols != r.Rows {
		return Product{}, errors.Wrapf(ErrMulShape, "%s × %s: inner dimensions %d != %d", l, r, l.Cols, r.Rows)
	}
	res := shape.Mat(l.Rows, r.Cols)
	if !shape.Contains(res) {
		return Product{}, errors.Wrapf(ErrMulShape, "%s × %s: result %dx%d not registered", l, r, res.Rows, res.Cols)
	}

	var c Case
	switch {
	case lk == shape.RowVector && rk == shape.Matrix:
		c = RowTimesMatrix
	case lk == shape.Matrix && rk == shape.ColumnVector:
		c = MatrixTimesVector
	case lk == shape.Matrix && rk == shape.Matrix:
		c = MatrixTimesMatrix
	default:
		// Unreachable for registered shapes: any other kind pairing has a 1-extent
		// inner or result dimension the registry does not hold.
		return Product{}, errors.Wrapf(ErrMulShape, "%s × %s: unsupported kinds %s × %s", l, r, lk, rk)
	}

	return Product{Left: l, Right: r, Result: res, Case: c}, nil
}

// Products enumerates every legal product over shapes, left operand major.
func Products(shapes []shape.Shape) []Product {
	out := make([]Product, 0, len(shapes))
	for _, l := range shapes {
		for _, r := range shapes {
			if p, err := ResolveMul(l, r); err == nil {
				out = append(out, p)
			}
		}
	}

	return out
}
