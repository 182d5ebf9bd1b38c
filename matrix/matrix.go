// SPDX-License-Identifier: MIT

// Package matrix: the Matrix type, construction, accessors and bulk
// assignment. Matrix is a concrete, row-major implementation storing
// elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fixmat/vector"
)

// Matrix is a row-major rows×cols grid of T values.
// rows and cols are fixed at construction; data holds rows*cols elements
// in row-major order. Copy semantics are explicit: Clone produces an
// independent grid, and every algebraic operation returns a fresh one.
type Matrix[T Scalar] struct {
	rows, cols int // fixed shape, set once at construction
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols Matrix initialized to the element zero value.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New[T Scalar](rows, cols int) (*Matrix[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}

	// Return initialized Matrix
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFromGrid creates a rows×cols Matrix populated from a nested slice:
// grid[i][j] lands at position (i, j).
//
// Shape policy (applied identically by AssignGrid): a grid with more
// rows than the matrix, or any row longer than cols, is a structural
// error (ErrBadShape) — never a silent truncation. Fewer rows or shorter
// rows are legal; the uncovered positions stay at the zero value.
//
// Errors: ErrBadShape (bad target shape or grid overflow).
// Complexity: O(r*c) time and memory.
func NewFromGrid[T Scalar](rows, cols int, grid [][]T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	// Validate the grid against the target shape before any write.
	if err = ValidateGrid(rows, cols, grid); err != nil {
		return nil, matrixErrorf(opFromGrid, err)
	}

	// Copy row fragments into the flat buffer.
	for i := range grid {
		copy(m.data[i*cols:], grid[i])
	}

	return m, nil
}

// NewFilled creates a rows×cols Matrix with every element set to v.
// Errors: ErrBadShape. Complexity: O(r*c).
func NewFilled[T Scalar](rows, cols int, v T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewIdentity creates a rows×cols Matrix with 1 on positions (k, k) for
// k < min(rows, cols) and 0 elsewhere. Rectangular shapes get a partial
// diagonal.
// Errors: ErrBadShape. Complexity: O(r*c).
func NewIdentity[T Scalar](rows, cols int) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	// Walk the minor diagonal up to the shorter dimension.
	n := rows
	if cols < n {
		n = cols
	}
	var one T = 1
	for k := 0; k < n; k++ {
		m.data[k*cols+k] = one
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	// Validate column index
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Compute flat offset
	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("At(%d,%d): %w", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Set(%d,%d): %w", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Row extracts row i as a fresh length-Cols vector.
// The vector copies the row; later writes to either side are independent.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	// Validate row index
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf(opRow, ErrOutOfRange)
	}

	// Copy the contiguous row fragment into a vector.
	return vector.FromSlice(m.data[i*m.cols : (i+1)*m.cols])
}

// SetRow replaces row i with the contents of v (length must equal Cols).
// Errors: ErrOutOfRange, ErrNilMatrix (nil vector), ErrDimensionMismatch.
// Complexity: O(c).
func (m *Matrix[T]) SetRow(i int, v *vector.Vector[T]) error {
	// Validate row index
	if i < 0 || i >= m.rows {
		return matrixErrorf(opRow, ErrOutOfRange)
	}
	// Validate the replacement vector's presence and length.
	if err := ValidateVec(v, m.cols); err != nil {
		return matrixErrorf(opRow, err)
	}

	// Overwrite the contiguous row fragment.
	copy(m.data[i*m.cols:(i+1)*m.cols], v.Data())

	return nil
}

// Col extracts column j as a fresh length-Rows vector.
// Errors: ErrOutOfRange. Complexity: O(r).
func (m *Matrix[T]) Col(j int) (*vector.Vector[T], error) {
	// Validate column index
	if j < 0 || j >= m.cols {
		return nil, matrixErrorf(opCol, ErrOutOfRange)
	}

	// Gather the strided column into a contiguous buffer.
	buf := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		buf[i] = m.data[i*m.cols+j]
	}

	return vector.FromSlice(buf)
}

// SetCol replaces column j with the contents of v (length must equal Rows).
// Errors: ErrOutOfRange, ErrNilMatrix (nil vector), ErrDimensionMismatch.
// Complexity: O(r).
func (m *Matrix[T]) SetCol(j int, v *vector.Vector[T]) error {
	// Validate column index
	if j < 0 || j >= m.cols {
		return matrixErrorf(opCol, ErrOutOfRange)
	}
	// Validate the replacement vector's presence and length.
	if err := ValidateVec(v, m.rows); err != nil {
		return matrixErrorf(opCol, err)
	}

	// Scatter the vector back into the strided column.
	src := v.Data()
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] = src[i]
	}

	return nil
}

// Assign overwrites every element of m with the elements of other.
// Both matrices must share the same shape; other is not aliased.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Matrix[T]) Assign(other *Matrix[T]) error {
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opAssign, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opAssign, err)
	}

	copy(m.data, other.data)

	return nil
}

// AssignGrid overwrites every element of m from a nested slice under the
// same shape policy as NewFromGrid: overflow is ErrBadShape, uncovered
// positions are reset to the zero value (full overwrite, no partial
// update).
// Errors: ErrBadShape. Complexity: O(r*c).
func (m *Matrix[T]) AssignGrid(grid [][]T) error {
	// Validate before any write so a bad grid never half-applies.
	if err := ValidateGrid(m.rows, m.cols, grid); err != nil {
		return matrixErrorf(opAssign, err)
	}

	// Reset all positions, then lay the grid fragments on top.
	var zero T
	for i := range m.data {
		m.data[i] = zero
	}
	for i := range grid {
		copy(m.data[i*m.cols:], grid[i])
	}

	return nil
}

// AssignScalar overwrites every element of m with v (scalar broadcast).
// Complexity: O(r*c).
func (m *Matrix[T]) AssignScalar(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Grid exports the matrix as a deep [][]T copy. The result does not
// alias the matrix storage, so callers may reshape or mutate it freely.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Grid() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out
}

// Slice extracts the half-open rectangular region [r0, r1)×[c0, c1) as a
// fresh matrix. Both ranges must be non-empty and within bounds.
// Errors: ErrOutOfRange. Complexity: O((r1-r0)*(c1-c0)).
func (m *Matrix[T]) Slice(r0, r1, c0, c1 int) (*Matrix[T], error) {
	// Validate both half-open ranges.
	if r0 < 0 || r1 > m.rows || r0 >= r1 {
		return nil, matrixErrorf(opSlice, ErrOutOfRange)
	}
	if c0 < 0 || c1 > m.cols || c0 >= c1 {
		return nil, matrixErrorf(opSlice, ErrOutOfRange)
	}

	// Copy the region row by row into a fresh matrix.
	out := &Matrix[T]{rows: r1 - r0, cols: c1 - c0, data: make([]T, (r1-r0)*(c1-c0))}
	for i := r0; i < r1; i++ {
		copy(out.data[(i-r0)*out.cols:], m.data[i*m.cols+c0:i*m.cols+c1])
	}

	return out, nil
}

// EachRow calls fn for every row in order, passing the row index and a
// fresh copy of the row. Mutating the passed vector does not affect m.
// Complexity: O(r*c).
func (m *Matrix[T]) EachRow(fn func(i int, row *vector.Vector[T])) {
	for i := 0; i < m.rows; i++ {
		row, _ := m.Row(i) // index is in range by construction
		fn(i, row)
	}
}

// String implements fmt.Stringer: one bracketed line per row.
// Complexity: O(r*c) for string construction.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ { // iterate over rows
		b.WriteByte('[') // open row
		for j := 0; j < m.cols; j++ { // iterate over columns
			if j > 0 {
				b.WriteString(", ") // separate values with comma
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting across facades. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
