// SPDX-License-Identifier: MIT

package binding

import (
	"github.com/katalvlaran/lvlin/shape"
	"github.com/pkg/errors"
)

// Rule is a pure shape function shared by every instantiation of an operation.
// Unary rules ignore r. A rule reports an inapplicable operand pattern with an
// error matching ErrNoBinding (or ErrMulShape for the product).
// For ResultScalar and ResultBool operations the returned shape is the zero Shape.
type Rule func(l, r shape.Shape) (shape.Shape, error)

// Descriptor is one row of the operator table.
type Descriptor struct {
	Op          Op
	Arity       int // 1 or 2
	Forms       []Form
	Yields      Result
	Restriction Restriction
	Rule        Rule
}

// Accepts reports whether the descriptor lists form f.
func (d Descriptor) Accepts(f Form) bool {
	for _, g := range d.Forms {
		if g == f {
			return true
		}
	}

	return false
}

var (
	unaryForms       = []Form{Unary}
	pairForms        = []Form{TensorTensor}
	elementwiseForms = []Form{TensorTensor, TensorScalar, ScalarTensor}
)

// table is built once; Table hands out copies.
var table = [numOps]Descriptor{
	OpNegate:    {Op: OpNegate, Arity: 1, Forms: unaryForms, Yields: ResultTensor, Restriction: AnyShape, Rule: identityRule},
	OpSign:      {Op: OpSign, Arity: 1, Forms: unaryForms, Yields: ResultTensor, Restriction: AnyShape, Rule: identityRule},
	OpSquare:    {Op: OpSquare, Arity: 1, Forms: unaryForms, Yields: ResultTensor, Restriction: AnyShape, Rule: identityRule},
	OpTranspose: {Op: OpTranspose, Arity: 1, Forms: unaryForms, Yields: ResultTensor, Restriction: AnyShape, Rule: transposeRule},
	OpIsFinite:  {Op: OpIsFinite, Arity: 1, Forms: unaryForms, Yields: ResultBool, Restriction: AnyShape, Rule: reduceRule},
	OpSum:       {Op: OpSum, Arity: 1, Forms: unaryForms, Yields: ResultScalar, Restriction: AnyShape, Rule: reduceRule},
	OpFro:       {Op: OpFro, Arity: 1, Forms: unaryForms, Yields: ResultScalar, Restriction: AnyShape, Rule: reduceRule},
	OpAdd:       {Op: OpAdd, Arity: 2, Forms: elementwiseForms, Yields: ResultTensor, Restriction: SameShape, Rule: sameShapeRule},
	OpSubtract:  {Op: OpSubtract, Arity: 2, Forms: elementwiseForms, Yields: ResultTensor, Restriction: SameShape, Rule: sameShapeRule},
	OpMultiply:  {Op: OpMultiply, Arity: 2, Forms: elementwiseForms, Yields: ResultTensor, Restriction: SameShape, Rule: sameShapeRule},
	OpDivide:    {Op: OpDivide, Arity: 2, Forms: elementwiseForms, Yields: ResultTensor, Restriction: SameShape, Rule: sameShapeRule},
	OpDot:       {Op: OpDot, Arity: 2, Forms: pairForms, Yields: ResultScalar, Restriction: VectorsOnly, Rule: dotRule},
	OpNorm:      {Op: OpNorm, Arity: 1, Forms: unaryForms, Yields: ResultScalar, Restriction: VectorsOnly, Rule: normRule},
	OpTrace:     {Op: OpTrace, Arity: 1, Forms: unaryForms, Yields: ResultScalar, Restriction: SquareOnly, Rule: traceRule},
	OpCross:     {Op: OpCross, Arity: 2, Forms: pairForms, Yields: ResultTensor, Restriction: Vector3Only, Rule: crossRule},
	OpMatMul:    {Op: OpMatMul, Arity: 2, Forms: pairForms, Yields: ResultTensor, Restriction: InnerMatched, Rule: mulRule},
}

// Table returns the operator table in catalog order.
func Table() []Descriptor {
	out := make([]Descriptor, len(table))
	for i, d := range table {
		d.Forms = append([]Form(nil), d.Forms...)
		out[i] = d
	}

	return out
}

// Describe returns the descriptor of op.
func Describe(op Op) (Descriptor, error) {
	if !op.Valid() {
		return Descriptor{}, errors.Wrapf(ErrUnknownOp, "%s", op)
	}
	d := table[op]
	d.Forms = append([]Form(nil), d.Forms...)

	return d, nil
}

// crossLen is the only vector length with a cross product.
const crossLen = 3

func identityRule(l, _ shape.Shape) (shape.Shape, error) { return l, nil }

func transposeRule(l, _ shape.Shape) (shape.Shape, error) { return l.T(), nil }

func reduceRule(shape.Shape, shape.Shape) (shape.Shape, error) { return shape.Shape{}, nil }

func sameShapeRule(l, r shape.Shape) (shape.Shape, error) {
	if l != r {
		return shape.Shape{}, errors.Wrapf(ErrNoBinding, "%s vs %s: shapes differ", l, r)
	}

	return l, nil
}

// dotRule accepts any pairing of column and row vectors of equal length.
func dotRule(l, r shape.Shape) (shape.Shape, error) {
	if !l.Kind().IsVector() || !r.Kind().IsVector() {
		return shape.Shape{}, errors.Wrapf(ErrNoBinding, "dot(%s, %s): vectors only", l, r)
	}
	if l.Len() != r.Len() {
		return shape.Shape{}, errors.Wrapf(ErrNoBinding, "dot(%s, %s): lengths differ", l, r)
	}

	return shape.Shape{}, nil
}

func normRule(l, _ shape.Shape) (shape.Shape, error) {
	if !l.Kind().IsVector() {
		return shape.Shape{}, errors.Wrapf(ErrNoBinding, "norm(%s): vectors only", l)
	}

	return shape.Shape{}, nil
}

func traceRule(l, _ shape.Shape) (shape.Shape, error) {
	if l.Kind() != shape.Matrix || !l.IsSquare() {
		return shape.Shape{}, errors.Wrapf(ErrNoBinding, "trace(%s): square matrices only", l)
	}

	return shape.Shape{}, nil
}

// crossRule accepts the four column/row pairings of length-3 vectors;
// the result takes the left operand's kind.
func crossRule(l, r shape.Shape) (shape.Shape, error) {
	if !l.Kind().IsVector() || !r.Kind().IsVector() || l.Len() != crossLen || r.Len() != crossLen {
		return shape.Shape{}, errors.Wrapf(ErrNoBinding, "cross(%s, %s): length-3 vectors only", l, r)
	}

	return l, nil
}

func mulRule(l, r shape.Shape) (shape.Shape, error) {
	p, err := ResolveMul(l, r)
	if err != nil {
		return shape.Shape{}, err
	}

	return p.Result, nil
}
