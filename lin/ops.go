// SPDX-License-Identifier: MIT

package lin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlin/binding"
	"github.com/katalvlaran/lvlin/matrix"
	"github.com/katalvlaran/lvlin/shape"
)

// Operand is either a *Tensor or a Scalar; it is the argument type of the
// element-wise operators Add, Subtract, Multiply and Divide.
type Operand interface {
	operand()
}

// Scalar is a float64 operand of an element-wise operator.
type Scalar float64

func (Scalar) operand()  {}
func (*Tensor) operand() {}

// Kernel signatures. A scalarKernel always takes the tensor first.
type (
	pairKernel   func(a, b matrix.Matrix) (*matrix.Dense, error)
	scalarKernel func(m matrix.Matrix, x float64) (*matrix.Dense, error)
)

// elementwise bundles the three kernels of one element-wise operator.
type elementwise struct {
	op binding.Op
	tt pairKernel   // tensor ⊕ tensor
	ts scalarKernel // tensor ⊕ scalar
	st scalarKernel // scalar ⊕ tensor, called as st(tensor, scalar)
}

var (
	addOps = elementwise{
		op: binding.OpAdd,
		tt: matrix.Add,
		ts: matrix.AddScalar,
		st: matrix.AddScalar,
	}
	subtractOps = elementwise{
		op: binding.OpSubtract,
		tt: matrix.Sub,
		ts: func(m matrix.Matrix, x float64) (*matrix.Dense, error) { return matrix.AddScalar(m, -x) },
		st: func(m matrix.Matrix, x float64) (*matrix.Dense, error) { return matrix.ScalarSub(x, m) },
	}
	multiplyOps = elementwise{
		op: binding.OpMultiply,
		tt: matrix.Hadamard,
		ts: matrix.Scale,
		st: matrix.Scale,
	}
	divideOps = elementwise{
		op: binding.OpDivide,
		tt: matrix.Divide,
		ts: matrix.DivScalar,
		st: func(m matrix.Matrix, x float64) (*matrix.Dense, error) { return matrix.ScalarDivide(x, m) },
	}
)

// Add returns a + b element-wise for tensor+tensor (same shape),
// tensor+scalar and scalar+tensor.
func Add(a, b Operand) (*Tensor, error) { return addOps.apply(a, b) }

// Subtract returns a - b element-wise; scalar-tensor computes x - t per element.
func Subtract(a, b Operand) (*Tensor, error) { return subtractOps.apply(a, b) }

// Multiply returns the element-wise (Hadamard) product a ∘ b; it is not the
// matrix product, see Mul.
func Multiply(a, b Operand) (*Tensor, error) { return multiplyOps.apply(a, b) }

// Divide returns a / b element-wise with IEEE-754 semantics (x/0 is ±Inf or NaN).
func Divide(a, b Operand) (*Tensor, error) { return divideOps.apply(a, b) }

// apply resolves the form of (a, b), looks the binding up and runs the kernel.
//
// Errors:
//   - ErrNilOperand for a nil operand.
//   - binding.ErrNoBinding for scalar ⊕ scalar.
//   - ErrShapeMismatch (also matching binding.ErrNoBinding) for tensors of different shapes.
func (e elementwise) apply(a, b Operand) (*Tensor, error) {
	tag := e.op.String()
	lt, ls, err := unpack(a)
	if err != nil {
		return nil, linErrorf(tag, err)
	}
	rt, rs, err := unpack(b)
	if err != nil {
		return nil, linErrorf(tag, err)
	}

	var (
		form binding.Form
		l, r shape.Shape
	)
	switch {
	case lt != nil && rt != nil:
		form, l, r = binding.TensorTensor, lt.Shape(), rt.Shape()
	case lt != nil:
		form, l = binding.TensorScalar, lt.Shape()
	case rt != nil:
		form, r = binding.ScalarTensor, rt.Shape()
	default:
		return nil, linErrorf(tag, fmt.Errorf("scalar %s scalar: %w", tag, binding.ErrNoBinding))
	}

	b2, err := binding.Default().Lookup(e.op, form, l, r)
	if err != nil {
		if form == binding.TensorTensor {
			err = fmt.Errorf("%w: %w", ErrShapeMismatch, err)
		}
		return nil, linErrorf(tag, err)
	}

	var d *matrix.Dense
	switch form {
	case binding.TensorTensor:
		d, err = e.tt(lt.d, rt.d)
	case binding.TensorScalar:
		d, err = e.ts(lt.d, rs)
	default:
		d, err = e.st(rt.d, ls)
	}
	if err != nil {
		return nil, linErrorf(tag, err)
	}

	return wrap(typeFor(b2.Result), d), nil
}

// unpack splits an Operand into its tensor or scalar value.
func unpack(o Operand) (*Tensor, float64, error) {
	switch v := o.(type) {
	case Scalar:
		return nil, float64(v), nil
	case *Tensor:
		if v == nil || v.typ == nil {
			return nil, 0, ErrNilOperand
		}
		return v, 0, nil
	default:
		return nil, 0, ErrNilOperand
	}
}

// lookup resolves a tensor-valued or reducing binding for t (and u for pairs).
func lookup(op binding.Op, f binding.Form, t, u *Tensor) (binding.Binding, error) {
	if t == nil || t.typ == nil || (f == binding.TensorTensor && (u == nil || u.typ == nil)) {
		return binding.Binding{}, linErrorf(op.String(), ErrNilOperand)
	}
	var r shape.Shape
	if u != nil {
		r = u.Shape()
	}
	b, err := binding.Default().Lookup(op, f, t.Shape(), r)
	if err != nil {
		return binding.Binding{}, linErrorf(op.String(), err)
	}

	return b, nil
}

// mustUnary runs a unary tensor kernel bound for every family type.
// A failure here means the catalog and kernels disagree, which is a bug.
func mustUnary(op binding.Op, t *Tensor, kernel func(matrix.Matrix) (*matrix.Dense, error)) *Tensor {
	b, err := lookup(op, binding.Unary, t, nil)
	if err != nil {
		panic(err)
	}
	d, err := kernel(t.d)
	if err != nil {
		panic(linErrorf(op.String(), err))
	}

	return wrap(typeFor(b.Result), d)
}

// mustReduce is mustUnary for scalar and bool results.
func mustReduce[T any](op binding.Op, t *Tensor, kernel func(matrix.Matrix) (T, error)) T {
	if _, err := lookup(op, binding.Unary, t, nil); err != nil {
		panic(err)
	}
	v, err := kernel(t.d)
	if err != nil {
		panic(linErrorf(op.String(), err))
	}

	return v
}

// Negate returns -t.
func Negate(t *Tensor) *Tensor { return mustUnary(binding.OpNegate, t, matrix.Negate) }

// Sign returns the strict sign of every element: -1, 0 or +1 (NaN maps to 0).
func Sign(t *Tensor) *Tensor { return mustUnary(binding.OpSign, t, matrix.Sign) }

// Square returns every element squared.
func Square(t *Tensor) *Tensor { return mustUnary(binding.OpSquare, t, matrix.Square) }

// Transpose returns tᵀ; a column vector becomes the row vector of the same size
// and vice versa.
func Transpose(t *Tensor) *Tensor { return mustUnary(binding.OpTranspose, t, matrix.Transpose) }

// IsFinite reports whether no element is NaN or ±Inf.
func IsFinite(t *Tensor) bool { return mustReduce(binding.OpIsFinite, t, matrix.IsFinite) }

// Sum returns the sum of all elements.
func Sum(t *Tensor) float64 { return mustReduce(binding.OpSum, t, matrix.Sum) }

// Fro returns the sum of squared elements. It is the square of the Frobenius
// norm; no square root is taken.
func Fro(t *Tensor) float64 { return mustReduce(binding.OpFro, t, matrix.SumSquares) }

// Dot returns Σ u_k·v_k for two vectors of equal length, in any pairing of
// column and row vectors.
func Dot(u, v *Tensor) (float64, error) {
	if _, err := lookup(binding.OpDot, binding.TensorTensor, u, v); err != nil {
		return 0, err
	}
	x, err := matrix.Dot(u.d, v.d)
	if err != nil {
		return 0, linErrorf("dot", err)
	}

	return x, nil
}

// Norm returns the Euclidean length of a column or row vector.
func Norm(u *Tensor) (float64, error) {
	if _, err := lookup(binding.OpNorm, binding.Unary, u, nil); err != nil {
		return 0, err
	}
	x, err := matrix.Norm(u.d)
	if err != nil {
		return 0, linErrorf("norm", err)
	}

	return x, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace(m *Tensor) (float64, error) {
	if _, err := lookup(binding.OpTrace, binding.Unary, m, nil); err != nil {
		return 0, err
	}
	x, err := matrix.Trace(m.d)
	if err != nil {
		return 0, linErrorf("trace", err)
	}

	return x, nil
}

// Cross returns u × v for length-3 vectors; the result has u's kind.
func Cross(u, v *Tensor) (*Tensor, error) {
	b, err := lookup(binding.OpCross, binding.TensorTensor, u, v)
	if err != nil {
		return nil, err
	}
	d, err := matrix.Cross(u.d, v.d)
	if err != nil {
		return nil, linErrorf("cross", err)
	}

	return wrap(typeFor(b.Result), d), nil
}

// Mul returns the matrix product a·b. Legal pairs are exactly the catalog's
// products: outer products (column × row), row × matrix, matrix × column and
// matrix × matrix, each with a registered result.
//
// Errors:
//   - binding.ErrMulShape for an illegal pair; the message says why.
//   - ErrNilOperand for a nil operand.
func Mul(a, b *Tensor) (*Tensor, error) {
	p, err := lookup(binding.OpMatMul, binding.TensorTensor, a, b)
	if err != nil {
		return nil, err
	}
	d, err := matrix.Mul(a.d, b.d)
	if err != nil {
		return nil, linErrorf("mul", err)
	}

	return wrap(typeFor(p.Result), d), nil
}

// IsShapeError reports whether err is one of the shape failures of this
// package or of the binding catalog.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrShapeMismatch) ||
		errors.Is(err, binding.ErrMulShape) ||
		errors.Is(err, binding.ErrNoBinding)
}

// AllClose reports whether a and b have the same type and every element pair
// agrees within atol absolutely or rtol relatively.
func AllClose(a, b *Tensor, rtol, atol float64) bool {
	if a == nil || b == nil || a.typ == nil || a.typ != b.typ {
		return false
	}
	ok, err := matrix.AllClose(a.d, b.d, rtol, atol)

	return err == nil && ok
}
