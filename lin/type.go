// SPDX-License-Identifier: MIT

package lin

import (
	"fmt"

	"github.com/katalvlaran/lvlin/shape"
)

// Type is one member of the family: a registered shape with a name.
// Types are package singletons; compare them with ==.
type Type struct {
	shape shape.Shape
	name  string
}

// Family members, in registry order.
var (
	Vector2 = mustType(shape.Vector(2))
	Vector3 = mustType(shape.Vector(3))
	Vector4 = mustType(shape.Vector(4))
	Vector5 = mustType(shape.Vector(5))
	Vector6 = mustType(shape.Vector(6))

	RowVector2 = mustType(shape.RowVec(2))
	RowVector3 = mustType(shape.RowVec(3))
	RowVector4 = mustType(shape.RowVec(4))
	RowVector5 = mustType(shape.RowVec(5))
	RowVector6 = mustType(shape.RowVec(6))

	Matrix2x2 = mustType(shape.Mat(2, 2))
	Matrix2x3 = mustType(shape.Mat(2, 3))
	Matrix2x4 = mustType(shape.Mat(2, 4))
	Matrix3x2 = mustType(shape.Mat(3, 2))
	Matrix3x3 = mustType(shape.Mat(3, 3))
	Matrix3x4 = mustType(shape.Mat(3, 4))
	Matrix4x2 = mustType(shape.Mat(4, 2))
	Matrix4x3 = mustType(shape.Mat(4, 3))
	Matrix4x4 = mustType(shape.Mat(4, 4))

	Matrix5x5 = mustType(shape.Mat(5, 5))
	Matrix6x6 = mustType(shape.Mat(6, 6))
)

var (
	types = []*Type{
		Vector2, Vector3, Vector4, Vector5, Vector6,
		RowVector2, RowVector3, RowVector4, RowVector5, RowVector6,
		Matrix2x2, Matrix2x3, Matrix2x4,
		Matrix3x2, Matrix3x3, Matrix3x4,
		Matrix4x2, Matrix4x3, Matrix4x4,
		Matrix5x5, Matrix6x6,
	}
	typeByShape = indexTypes(types)
)

// mustType panics for a shape outside the registry; it only runs on the
// package-level table above.
func mustType(s shape.Shape) *Type {
	if !shape.Contains(s) {
		panic(fmt.Sprintf("lin: %s is not a registered shape", s))
	}

	return &Type{shape: s, name: s.Name()}
}

func indexTypes(ts []*Type) map[shape.Shape]*Type {
	out := make(map[shape.Shape]*Type, len(ts))
	for _, t := range ts {
		out[t.shape] = t
	}

	return out
}

// Types returns every family member in registry order.
func Types() []*Type { return append([]*Type(nil), types...) }

// TypeOf returns the family member with shape s.
func TypeOf(s shape.Shape) (*Type, error) {
	t, ok := typeByShape[s]
	if !ok {
		return nil, fmt.Errorf("%s: %w", s, ErrUnknownType)
	}

	return t, nil
}

// TypeByName returns the family member named name ("Vector3", "Matrix2x3", ...).
func TypeByName(name string) (*Type, error) {
	s, err := shape.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownType, err)
	}

	return TypeOf(s)
}

// typeFor is TypeOf for shapes the binding catalog produced; those are
// registered by construction.
func typeFor(s shape.Shape) *Type {
	t, ok := typeByShape[s]
	if !ok {
		panic(fmt.Sprintf("lin: binding produced unregistered shape %s", s))
	}

	return t
}

// Name is the type name, e.g. "Matrix2x3".
func (t *Type) Name() string { return t.name }

// String implements fmt.Stringer; identical to Name.
func (t *Type) String() string { return t.name }

// Shape returns the (rows, cols) pair.
func (t *Type) Shape() shape.Shape { return t.shape }

// Rows returns the row count.
func (t *Type) Rows() int { return t.shape.Rows }

// Cols returns the column count.
func (t *Type) Cols() int { return t.shape.Cols }

// Size returns rows*cols.
func (t *Type) Size() int { return t.shape.Size() }

// Kind classifies the type.
func (t *Type) Kind() shape.Kind { return t.shape.Kind() }
