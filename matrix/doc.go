// SPDX-License-Identifier: MIT

// Package matrix provides a dense, fixed-shape, generically typed matrix
// and the linear-algebra kernels built on it: determinant (cofactor
// expansion), Gauss-Jordan row reduction (row-echelon and reduced
// row-echelon forms), transpose, elementwise and scalar arithmetic,
// matrix×vector application and the generalized matrix product.
//
// Shape model: rows and columns are fixed at construction and held as
// immutable fields; every shape-sensitive operation validates them
// through the central validators and reports sentinel errors. The
// element type is a true type parameter (vector.Scalar), so the same
// kernels serve exact integer algebra and floating-point work.
//
// Purity: all algebraic operations (Det, Transpose, RowEchelon,
// ReducedRowEchelon, Add/Sub/Hadamard/..., Mul, MulVec) read the
// receiver and allocate a fresh result; a matrix is mutated only through
// Set/SetRow/SetCol and the Assign* bulk overwrites. Pure operations are
// therefore safe to call concurrently on a shared receiver; concurrent
// mutation requires external synchronization — the package performs no
// locking.
//
// Grid contract: a Matrix is deliberately usable as a raw 2D grid.
// At/Set give positional access, Slice takes rectangular sub-views,
// Grid exports a deep [][]T copy and EachRow iterates rows in order, so
// geometry-style consumers can treat instances as plain arrays.
//
// Elementwise kernels process rows independently; WithParallel switches
// them to a bounded fork-join over row indices (errgroup) that is
// guaranteed to produce output identical to the sequential path.
//
// Error policy: user-triggered failures are package sentinels matched
// via errors.Is, wrapped exactly once with the operation tag. Panics are
// reserved for programmer errors (unknown internal op tag, nonsensical
// option constructor arguments).
package matrix
