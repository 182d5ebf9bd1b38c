// SPDX-License-Identifier: MIT

// Package vector provides a fixed-length, generically typed vector with
// positional access, elementwise arithmetic and a dot product.
//
// A Vector's length is fixed at construction and never changes; all
// arithmetic operations are pure and allocate a fresh result, leaving
// both operands untouched. The element type is any core numeric type
// (see Scalar), so the same code serves exact integer algebra and
// floating-point work.
//
// The package is the supporting leaf of the matrix package: rows and
// columns are extracted as Vectors, and the matrix kernels rely on Dot.
//
// Error policy: all user-triggered failures are package sentinels
// (ErrBadLength, ErrOutOfRange, ErrDimensionMismatch, ErrNilVector)
// matched via errors.Is; no method panics on user input.
package vector
