// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"

	"github.com/samber/lo"
)

// Registry bounds.
const (
	MinDim     = 2 // smallest extent of any registered vector or matrix
	MaxVector  = 6 // largest vector size
	MaxGeneral = 4 // full rows×cols grid stops here
	MaxSquare  = 6 // square-only coverage above MaxGeneral ends here
)

var (
	registry = enumerate()
	byName   = lo.KeyBy(registry, Shape.Name)
)

// enumerate builds the ordered registry: column vectors, row vectors,
// the general grid in row-major order, then the large squares.
func enumerate() []Shape {
	out := make([]Shape, 0, 2*(MaxVector-MinDim+1)+(MaxGeneral-MinDim+1)*(MaxGeneral-MinDim+1)+(MaxSquare-MaxGeneral))

	var n, r, c int
	for n = MinDim; n <= MaxVector; n++ {
		out = append(out, Vector(n))
	}
	for n = MinDim; n <= MaxVector; n++ {
		out = append(out, RowVec(n))
	}
	for r = MinDim; r <= MaxGeneral; r++ {
		for c = MinDim; c <= MaxGeneral; c++ {
			out = append(out, Mat(r, c))
		}
	}
	for n = MaxGeneral + 1; n <= MaxSquare; n++ {
		out = append(out, Mat(n, n))
	}

	return out
}

// All returns the registered shapes in their fixed order. The slice is a copy.
func All() []Shape {
	out := make([]Shape, len(registry))
	copy(out, registry)

	return out
}

// Len is the number of registered shapes.
func Len() int { return len(registry) }

// Contains reports whether s is registered.
func Contains(s Shape) bool {
	got, ok := byName[s.Name()]
	return ok && got == s
}

// Index returns the position of s in All(), or -1 when s is not registered.
func Index(s Shape) int { return lo.IndexOf(registry, s) }

// Lookup resolves a type name ("Vector3", "RowVector2", "Matrix2x3") to its shape.
func Lookup(name string) (Shape, error) {
	s, ok := byName[name]
	if !ok {
		return Shape{}, fmt.Errorf("%q: %w", name, ErrUnknownShape)
	}

	return s, nil
}

// OfKind returns the registered shapes of kind k, in registry order.
func OfKind(k Kind) []Shape {
	return lo.Filter(registry, func(s Shape, _ int) bool { return s.Kind() == k })
}

// Vectors returns the registered column vectors.
func Vectors() []Shape { return OfKind(ColumnVector) }

// RowVectors returns the registered row vectors.
func RowVectors() []Shape { return OfKind(RowVector) }

// Matrices returns the registered matrices (general and large square).
func Matrices() []Shape { return OfKind(Matrix) }

// Squares returns the registered square matrices.
func Squares() []Shape {
	return lo.Filter(registry, func(s Shape, _ int) bool { return s.Kind() == Matrix && s.IsSquare() })
}
