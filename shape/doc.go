// SPDX-License-Identifier: MIT

// Package shape is the closed registry of (rows, cols) pairs the lin family supports.
//
// Purpose:
//   - Name every supported shape and classify it as a column vector, a row vector
//     or a matrix.
//   - Fix the enumeration order that every downstream table (bindings, CLI output,
//     lin.Types) follows.
//
// Coverage:
//   - Column and row vectors of size 2..6.
//   - General matrices with rows, cols ∈ 2..4 (row-major order of (rows, cols)).
//   - Square matrices 5x5 and 6x6 only.
//
// The cutoff is deliberate: the full grid stops at 4 and only square shapes exist
// above it. Code that derives new shapes (products, transposes) must check
// Contains instead of assuming the grid is complete.
//
// The registry is compiled-in data computed once at package init; All returns a copy.
package shape
