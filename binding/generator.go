// SPDX-License-Identifier: MIT

package binding

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlin/shape"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Key identifies a binding. Scalar operand positions hold the zero Shape.
type Key struct {
	Op    Op
	Form  Form
	Left  shape.Shape
	Right shape.Shape
}

// Binding is one generated operation instance.
type Binding struct {
	Op     Op          `json:"op" yaml:"op"`
	Form   Form        `json:"form" yaml:"form"`
	Left   shape.Shape `json:"left" yaml:"left"`
	Right  shape.Shape `json:"right" yaml:"right"`
	Result shape.Shape `json:"result" yaml:"result"`
	Yields Result      `json:"yields" yaml:"yields"`
}

// Key returns the lookup key of b.
func (b Binding) Key() Key {
	return Key{Op: b.Op, Form: b.Form, Left: b.Left, Right: b.Right}
}

// String renders b as "mul(Vector3, RowVector2) -> Matrix3x2".
func (b Binding) String() string {
	var args string
	switch b.Form {
	case Unary:
		args = b.Left.Name()
	case TensorTensor:
		args = b.Left.Name() + ", " + b.Right.Name()
	case TensorScalar:
		args = b.Left.Name() + ", scalar"
	case ScalarTensor:
		args = "scalar, " + b.Right.Name()
	}
	out := b.Yields.String()
	if b.Yields == ResultTensor {
		out = b.Result.Name()
	}

	return fmt.Sprintf("%s(%s) -> %s", b.Op, args, out)
}

// Catalog is the immutable result of Generate. All methods are safe for
// concurrent use.
type Catalog struct {
	shapes   []shape.Shape
	bindings []Binding
	index    map[Key]Binding
	byOp     map[Op][]Binding
	ops      []Op
}

// Generate walks shapes and emits one binding per (op, form, operand shapes)
// combination whose rule accepts the operands.
//
// Implementation:
//   - Stage 1: validate input (registered, no duplicates) and resolve options.
//   - Stage 2: for each selected descriptor in catalog order, for each form it
//     accepts, walk shapes (left-major for pairs) and apply the rule.
//   - Stage 3: reject any tensor result outside the registry, then index.
//
// Behavior highlights:
//   - Deterministic: the emission order depends only on the table and on shapes.
//   - Scalar forms bind the tensor operand's own shape as the result.
//   - Rules decline operands with ErrNoBinding/ErrMulShape; those pairs are skipped.
//
// Errors:
//   - ErrBadInput for an unregistered or duplicated shape.
//   - ErrRuleResult when a rule yields an unregistered tensor shape.
//
// Complexity:
//   - Time O(ops * n²) for n shapes, Space O(bindings).
func Generate(shapes []shape.Shape, opts ...Option) (*Catalog, error) {
	o := gatherOptions(opts...)
	if err := validateInput(shapes); err != nil {
		return nil, err
	}

	c := &Catalog{shapes: append([]shape.Shape(nil), shapes...)}
	for _, d := range table {
		if !o.selected(d.Op) {
			continue
		}
		c.ops = append(c.ops, d.Op)
		before := len(c.bindings)
		for _, f := range d.Forms {
			var err error
			c.bindings, err = emit(c.bindings, d, f, shapes)
			if err != nil {
				return nil, err
			}
		}
		o.log.Debug("generated op group",
			"op", d.Op.String(),
			"restriction", d.Restriction.String(),
			"bindings", len(c.bindings)-before)
	}

	c.index = lo.KeyBy(c.bindings, Binding.Key)
	c.byOp = lo.GroupBy(c.bindings, func(b Binding) Op { return b.Op })
	o.log.Info("binding catalog ready",
		"shapes", len(shapes),
		"ops", len(c.ops),
		"bindings", len(c.bindings),
		"products", c.Count(OpMatMul))

	return c, nil
}

// emit appends the bindings of descriptor d in form f.
func emit(dst []Binding, d Descriptor, f Form, shapes []shape.Shape) ([]Binding, error) {
	add := func(l, r shape.Shape, res shape.Shape) error {
		if d.Yields == ResultTensor && !shape.Contains(res) {
			return errors.Wrapf(ErrRuleResult, "%s(%s, %s) -> %s", d.Op, l, r, res)
		}
		dst = append(dst, Binding{Op: d.Op, Form: f, Left: l, Right: r, Result: res, Yields: d.Yields})
		return nil
	}

	switch f {
	case Unary:
		for _, s := range shapes {
			res, err := d.Rule(s, shape.Shape{})
			if err != nil {
				continue // operand kind not accepted
			}
			if err = add(s, shape.Shape{}, res); err != nil {
				return nil, err
			}
		}
	case TensorTensor:
		for _, l := range shapes {
			for _, r := range shapes {
				res, err := d.Rule(l, r)
				if err != nil {
					continue
				}
				if err = add(l, r, res); err != nil {
					return nil, err
				}
			}
		}
	case TensorScalar:
		for _, s := range shapes {
			if err := add(s, shape.Shape{}, s); err != nil {
				return nil, err
			}
		}
	case ScalarTensor:
		for _, s := range shapes {
			if err := add(shape.Shape{}, s, s); err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

func validateInput(shapes []shape.Shape) error {
	for _, s := range shapes {
		if !shape.Contains(s) {
			return errors.Wrapf(ErrBadInput, "%s: %v", s, shape.ErrUnknownShape)
		}
	}
	if len(lo.Uniq(shapes)) != len(shapes) {
		return errors.Wrap(ErrBadInput, "duplicate shapes")
	}

	return nil
}

// Shapes returns the shapes the catalog was generated from.
func (c *Catalog) Shapes() []shape.Shape { return append([]shape.Shape(nil), c.shapes...) }

// Ops returns the operations the catalog covers, in catalog order.
func (c *Catalog) Ops() []Op { return append([]Op(nil), c.ops...) }

// Bindings returns every binding in emission order.
func (c *Catalog) Bindings() []Binding { return append([]Binding(nil), c.bindings...) }

// Len is the total number of bindings.
func (c *Catalog) Len() int { return len(c.bindings) }

// Lookup finds the binding for op applied in form f to l and r.
// Unused operand positions (r for Unary, the scalar side of scalar forms) are
// ignored.
//
// Errors:
//   - ErrMulShape for an illegal product (explains why the pair is illegal).
//   - ErrNoBinding for anything else the catalog does not hold.
func (c *Catalog) Lookup(op Op, f Form, l, r shape.Shape) (Binding, error) {
	k := Key{Op: op, Form: f, Left: l, Right: r}
	switch f {
	case Unary, TensorScalar:
		k.Right = shape.Shape{}
	case ScalarTensor:
		k.Left = shape.Shape{}
	}
	if b, ok := c.index[k]; ok {
		return b, nil
	}
	if op == OpMatMul && f == TensorTensor {
		if _, err := ResolveMul(l, r); err != nil {
			return Binding{}, err
		}
	}

	return Binding{}, errors.Wrapf(ErrNoBinding, "%s %s(%s, %s)", f, op, k.Left, k.Right)
}

// Products returns the product bindings (OpMatMul).
func (c *Catalog) Products() []Binding { return c.ByOp(OpMatMul) }

// ByOp returns the bindings of op in emission order.
func (c *Catalog) ByOp(op Op) []Binding { return append([]Binding(nil), c.byOp[op]...) }

// Count returns the number of bindings of op.
func (c *Catalog) Count(op Op) int {
	return lo.CountBy(c.bindings, func(b Binding) bool { return b.Op == op })
}

// Counts returns the binding count per operation.
func (c *Catalog) Counts() map[Op]int {
	out := make(map[Op]int, len(c.byOp))
	for op, bs := range c.byOp {
		out[op] = len(bs)
	}

	return out
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog over shape.All(), generated once.
// It panics only if the static tables are inconsistent, which tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Generate(shape.All())
		if err != nil {
			panic(fmt.Sprintf("binding: default catalog: %v", err))
		}
		defaultCatalog = c
	})

	return defaultCatalog
}
