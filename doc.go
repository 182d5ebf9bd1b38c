// Package fixmat is a small fixed-shape dense linear-algebra toolkit:
// matrices and vectors whose dimensions are fixed at construction, with
// determinant, Gauss-Jordan row reduction, transpose, elementwise and
// generalized matrix arithmetic on top.
//
// 🚀 What is fixmat?
//
//	A deterministic, value-semantics algebra engine that brings together:
//		• Vectors: fixed-length sequences with elementwise ops and dot product
//		• Matrices: dense row-major grids of any core numeric element type
//		• Determinant: closed forms up to 3×3, cofactor expansion above
//		• Row reduction: row-echelon and reduced row-echelon (Gauss-Jordan)
//		• Arithmetic: Add/Sub/Hadamard/HadamardDiv, scalar variants, Mul, MulVec
//		• Row-parallel execution: opt-in fork-join for elementwise kernels
//
// ✨ Why choose fixmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, central validators, pure ops
//   - Generic – element type is a true type parameter (ints for exact
//     arithmetic, floats for numeric work)
//   - Deterministic – fixed loop orders; parallel output equals sequential
//
// Everything is organized under two subpackages:
//
//	matrix/ — dense Matrix[T], construction, accessors and all algebra kernels
//	vector/ — fixed-length Vector[T] and the dot product the kernels rely on
//
// Quick example:
//
//	a, _ := matrix.NewFromGrid(2, 2, [][]float64{{1, 2}, {3, 4}})
//	d, _ := a.Det() // -2
//
// Matrices behave like plain 2D grids: At/Set for positional access,
// Slice for rectangular views, Grid for a raw copy, EachRow to iterate.
//
//	go get github.com/katalvlaran/fixmat
package fixmat
