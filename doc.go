// Package lvlin is a fixed-shape linear-algebra family for small float64
// vectors and matrices, with a generated catalog of the operations that exist
// between them.
//
// 🚀 What is lvlin?
//
//	A closed set of 21 shapes and everything that can be computed on them:
//		• Column vectors Vector2..Vector6 and row vectors RowVector2..RowVector6
//		• Matrices with 2..4 rows and columns, plus square Matrix5x5 and Matrix6x6
//		• Element-wise arithmetic with tensors and scalars in both orders
//		• Reductions: sum, fro (sum of squares), isfinite, dot, norm, trace
//		• Cross products of length-3 vectors
//		• Matrix products, including column × row outer products
//
// ✨ Why choose lvlin?
//
//   - Shapes are data: one registry drives every type, binding and CLI listing
//   - Illegal products fail with a typed error that says why
//   - Foreign strided buffers in, zero-copy views out
//
// Under the hood, everything is organized under these packages:
//
//	shape/        the shape registry and kind classification
//	binding/      multiplication resolver, operator table, binding generator
//	lin/          Type and Tensor: construction, indexing, buffers, operators
//	matrix/       dense row-major kernels (gonum BLAS + floats)
//	cmd/lincat/   inspect the catalog and evaluate single operations
//
// Quick example:
//
//	p, _ := lin.Mul(lin.Vector3.Ones(), lin.RowVector2.Ones())
//	fmt.Println(p.Type()) // Matrix3x2
//
//	go get github.com/katalvlaran/lvlin
package lvlin
