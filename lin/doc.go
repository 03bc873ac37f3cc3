// SPDX-License-Identifier: MIT

// Package lin provides the fixed-shape family of small float64 vectors and
// matrices: Vector2..Vector6, RowVector2..RowVector6, Matrix2x2..Matrix4x4,
// Matrix5x5 and Matrix6x6.
//
// Purpose:
//   - One Type per registered shape (package shape) and Tensor instances that
//     own exactly rows*cols values in row-major order.
//   - Construction from flat values, nested rows, foreign strided buffers
//     (FromBuffer) and the flat serialization layout; generators (Zeros, Ones,
//     NaNs, Identity, Fill, Rand, Diag).
//   - Linear and 2-D indexing with negative indices counted from the end.
//   - A zero-copy View for foreign interchange and a String form
//     ("Matrix2x3\n0, 1, 2\n3, 4, 5").
//   - The operator surface: element-wise Add/Subtract/Multiply/Divide over tensors
//     and Scalars, the unary ops, reductions (Sum, Fro, IsFinite, Dot, Norm, Trace),
//     Cross and the matrix product Mul.
//
// Dispatch:
//   - Every operator resolves its binding in binding.Default() before running a
//     kernel from package matrix, so the set of legal operand shapes and the
//     result types are exactly the catalog's. An illegal product fails with
//     binding.ErrMulShape; an element-wise mismatch fails with ErrShapeMismatch.
//
// Example:
//
//	a := lin.Matrix2x3.MustFromFlat(0, 1, 2, 3, 4, 5)
//	x, _ := a.At(-1, -1) // 5
//	p, _ := lin.Mul(lin.Vector3.Ones(), lin.RowVector2.Ones()) // Matrix3x2
//
// Concurrency:
//   - Types and the catalog are immutable. A Tensor may be read concurrently;
//     Set, SetAt, the …Assign methods and writes through a View need external
//     synchronization.
//
// Complexity:
//   - Indexing O(1); element-wise ops O(size); Mul O(r*k*c); sizes are at most 36.
package lin
