// SPDX-License-Identifier: MIT

// Package matrix_test: runnable examples for the public surface.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/vector"
)

// ExampleNewFromGrid builds a matrix from a row-major grid and prints it.
func ExampleNewFromGrid() {
	m, _ := matrix.NewFromGrid(2, 3, [][]int{{1, 2, 3}, {4, 5, 6}})
	fmt.Print(m)
	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
}

// ExampleMatrix_Det computes a 3x3 determinant via the closed form.
func ExampleMatrix_Det() {
	m, _ := matrix.NewFromGrid(3, 3, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	d, _ := m.Det()
	fmt.Println(d)
	// Output:
	// -3
}

// ExampleMatrix_ReducedRowEchelon reduces a rank-deficient matrix all the way.
func ExampleMatrix_ReducedRowEchelon() {
	m, _ := matrix.NewFromGrid(3, 3, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	rref, _ := m.ReducedRowEchelon()
	fmt.Print(rref)
	// Output:
	// [1, 0, -1]
	// [0, 1, 2]
	// [0, 0, 0]
}

// ExampleMatrix_Transpose flips a rectangular matrix.
func ExampleMatrix_Transpose() {
	m, _ := matrix.NewFromGrid(2, 3, [][]int{{1, 2, 3}, {4, 5, 6}})
	fmt.Print(m.Transpose())
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

// ExampleMul multiplies against the identity.
func ExampleMul() {
	id, _ := matrix.NewIdentity[int](2, 2)
	b, _ := matrix.NewFromGrid(2, 2, [][]int{{5, 6}, {7, 8}})
	prod, _ := matrix.Mul(id, b)
	fmt.Print(prod)
	// Output:
	// [5, 6]
	// [7, 8]
}

// ExampleMatrix_MulVec applies a square matrix to a vector row by row.
func ExampleMatrix_MulVec() {
	m, _ := matrix.NewFromGrid(2, 2, [][]int{{1, 2}, {3, 4}})
	x, _ := vector.FromSlice([]int{5, 6})
	y, _ := m.MulVec(x)
	fmt.Println(y)
	// Output:
	// [17, 39]
}

// ExampleMatrix_Hadamard performs the elementwise product, optionally
// fanning rows out across workers.
func ExampleMatrix_Hadamard() {
	a, _ := matrix.NewFromGrid(2, 2, [][]int{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromGrid(2, 2, [][]int{{10, 10}, {2, 2}})
	prod, _ := a.Hadamard(b, matrix.WithParallel())
	fmt.Print(prod)
	// Output:
	// [10, 20]
	// [6, 8]
}
