// SPDX-License-Identifier: MIT

// Package binding decides which operations exist between family shapes and emits
// one Binding per legal (operation, form, operand shapes) combination.
//
// Purpose:
//   - Operator table (Table): the fixed catalog of unary, element-wise, reduction,
//     kind-restricted and product operations, each with a pure shape rule.
//   - Multiplication resolver (ResolveMul): legality and result shape of l×r.
//   - Generator (Generate, Default): walks the shape registry and materializes the
//     catalog that package lin dispatches through.
//
// Design:
//   - Shape rules are data (Descriptor.Rule), computed once and reused for every
//     operand shape; there is no per-shape code.
//   - The catalog is an immutable table built in one synchronous pass. Concurrent
//     readers need no locking.
//   - A rule that yields an unregistered tensor shape is a generation error; the
//     generator never invents shapes the registry does not hold.
//
// Errors:
//   - ErrMulShape when a product is illegal, ErrNoBinding when no binding exists for
//     the requested operands. Both are wrapped with github.com/pkg/errors and match
//     with errors.Is.
//
// AI-Hints:
//   - Use Default() at runtime; call Generate directly only to build restricted
//     catalogs (WithOps) or to observe generation through WithLogger.
package binding
