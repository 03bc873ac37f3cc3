// SPDX-License-Identifier: MIT

// Package matrix is the dense numeric kernel behind the fixed-shape family in lin.
//
// Purpose:
//   - Store small matrices and vectors as one row-major float64 buffer (offset = i*cols + j).
//   - Expose a narrow library of free kernels: element-wise arithmetic, scalar
//     broadcasts, transpose, matrix product and the reductions (sum, sum of squares,
//     finiteness, dot, norm, trace, cross).
//   - Guarantee safety at the public surface: At/Set return errors, kernels validate
//     shapes up front and never mutate or alias their operands.
//
// Design:
//   - Every kernel returns a freshly allocated *Dense.
//   - *Dense operands hit a flat-slice fast path; any other Matrix implementation is
//     first materialized into a Dense through At (see denseOf).
//   - The matrix product is delegated to gonum's row-major BLAS (blas64.Gemm); the
//     vector reductions use gonum/floats.
//   - Errors are package sentinels wrapped with an operation tag, so callers match
//     them with errors.Is.
//
// AI-Hints:
//   - Shapes here are plain (rows, cols) pairs. The closed set of legal shapes lives in
//     package shape and the legality of products lives in package binding; this package
//     only checks conformability.
//   - Keep operands as *Dense in hot code to stay on the flat path.
//
// Complexity quicksheet:
//   - NewDense/Clone: O(r*c); At/Set: O(1); element-wise kernels: O(r*c);
//     Mul: O(r*k*c); Trace: O(n); Cross: O(1).
package matrix
