// SPDX-License-Identifier: MIT

package lin

// Method forms of the element-wise operators. Value-returning methods allocate
// a fresh Tensor; the …Assign methods overwrite the receiver and return it, and
// leave it untouched when they fail.

// Neg returns -t.
func (t *Tensor) Neg() *Tensor { return Negate(t) }

// Pos returns a copy of t (unary plus).
func (t *Tensor) Pos() *Tensor { return t.Clone() }

// Add returns t + o; o must have t's type.
func (t *Tensor) Add(o *Tensor) (*Tensor, error) { return Add(t, o) }

// Sub returns t - o; o must have t's type.
func (t *Tensor) Sub(o *Tensor) (*Tensor, error) { return Subtract(t, o) }

// Div returns t / o element-wise; o must have t's type.
func (t *Tensor) Div(o *Tensor) (*Tensor, error) { return Divide(t, o) }

// Hadamard returns t ∘ o element-wise; o must have t's type.
func (t *Tensor) Hadamard(o *Tensor) (*Tensor, error) { return Multiply(t, o) }

// T returns the transpose of t; see Transpose.
func (t *Tensor) T() *Tensor { return Transpose(t) }

// Mul returns the matrix product t·o; see the package-level Mul.
func (t *Tensor) Mul(o *Tensor) (*Tensor, error) { return Mul(t, o) }

// AddScalar returns t + x.
func (t *Tensor) AddScalar(x float64) *Tensor { return mustScalar(Add(t, Scalar(x))) }

// SubScalar returns t - x.
func (t *Tensor) SubScalar(x float64) *Tensor { return mustScalar(Subtract(t, Scalar(x))) }

// Scale returns x·t.
func (t *Tensor) Scale(x float64) *Tensor { return mustScalar(Multiply(t, Scalar(x))) }

// DivScalar returns t / x.
func (t *Tensor) DivScalar(x float64) *Tensor { return mustScalar(Divide(t, Scalar(x))) }

// RSubScalar returns x - t, evaluated as (-t) + x.
func (t *Tensor) RSubScalar(x float64) *Tensor { return mustScalar(Subtract(Scalar(x), t)) }

// RDivScalar returns x / t element-wise.
func (t *Tensor) RDivScalar(x float64) *Tensor { return mustScalar(Divide(Scalar(x), t)) }

// AddAssign sets t = t + o.
func (t *Tensor) AddAssign(o *Tensor) (*Tensor, error) { return t.assign(Add(t, o)) }

// SubAssign sets t = t - o.
func (t *Tensor) SubAssign(o *Tensor) (*Tensor, error) { return t.assign(Subtract(t, o)) }

// DivAssign sets t = t / o element-wise.
func (t *Tensor) DivAssign(o *Tensor) (*Tensor, error) { return t.assign(Divide(t, o)) }

// AddScalarAssign sets t = t + x.
func (t *Tensor) AddScalarAssign(x float64) *Tensor { return t.assignScalar(t.AddScalar(x)) }

// SubScalarAssign sets t = t - x.
func (t *Tensor) SubScalarAssign(x float64) *Tensor { return t.assignScalar(t.SubScalar(x)) }

// ScaleAssign sets t = x·t.
func (t *Tensor) ScaleAssign(x float64) *Tensor { return t.assignScalar(t.Scale(x)) }

// DivScalarAssign sets t = t / x.
func (t *Tensor) DivScalarAssign(x float64) *Tensor { return t.assignScalar(t.DivScalar(x)) }

// assign copies a computed result into t; on error t is not written.
func (t *Tensor) assign(res *Tensor, err error) (*Tensor, error) {
	if err != nil {
		return nil, err
	}
	copy(t.data(), res.data())

	return t, nil
}

func (t *Tensor) assignScalar(res *Tensor) *Tensor {
	copy(t.data(), res.data())

	return t
}

// mustScalar unwraps a tensor-scalar result. Every family type has all scalar
// bindings, so only a nil or untyped receiver can fail here.
func mustScalar(res *Tensor, err error) *Tensor {
	if err != nil {
		panic(err)
	}

	return res
}
