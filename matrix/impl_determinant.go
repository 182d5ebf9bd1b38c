// SPDX-License-Identifier: MIT

// Package matrix: determinant and trace kernels for square matrices.
package matrix

// Det computes the determinant by cofactor expansion along row 0, with
// explicit closed forms for the smallest sizes to avoid recursion
// overhead. The receiver is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: n=1 returns the element; n=2 returns ad−bc; n=3 uses the
//     six-term Sarrus expansion; n>3 recurses over minors of row 0 with
//     alternating signs starting at +1.
//
// Behavior highlights:
//   - Deterministic expansion order (column 0..n-1 of row 0).
//   - Zero entries of row 0 are skipped: their minors are never built.
//
// Returns:
//   - T: the determinant in the element type's own arithmetic (exact for
//     integer elements, floating for floats).
//
// Errors:
//   - ErrNilMatrix (nil receiver), ErrNonSquare (rows != cols).
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level for the minor copies.
//     The factorial cost is intentional: the type targets small fixed
//     shapes, and no LU-based shortcut is provided.
//
// AI-Hints:
//   - Above roughly 10×10 the factorial blow-up dominates everything;
//     factorize upstream if you need determinants of larger matrices.
func (m *Matrix[T]) Det() (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}

	return m.det(), nil
}

// det is the unchecked recursive core. Callers guarantee squareness.
func (m *Matrix[T]) det() T {
	n := m.rows
	switch n {
	case 1:
		// 1×1: the single element.
		return m.data[0]
	case 2:
		// 2×2: a00*a11 − a01*a10.
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	case 3:
		// 3×3: Sarrus' rule, six explicit terms.
		return m.data[0]*m.data[4]*m.data[8] +
			m.data[1]*m.data[5]*m.data[6] +
			m.data[2]*m.data[3]*m.data[7] -
			m.data[2]*m.data[4]*m.data[6] -
			m.data[1]*m.data[3]*m.data[8] -
			m.data[0]*m.data[5]*m.data[7]
	}

	// n>3: cofactor expansion along row 0, signs +,−,+,−,...
	var zero, acc T
	for i := 0; i < n; i++ {
		a0i := m.data[i] // row 0, column i
		if a0i == zero {
			continue // zero coefficient: skip building the minor
		}
		term := a0i * m.minor(0, i).det()
		if i%2 == 0 {
			acc += term
		} else {
			acc -= term
		}
	}

	return acc
}

// minor builds the (n−1)×(n−1) matrix formed by deleting row `row` and
// column `col`. Unexported: indices are guaranteed valid by the caller.
// Complexity: O(n²).
func (m *Matrix[T]) minor(row, col int) *Matrix[T] {
	n := m.rows
	out := &Matrix[T]{rows: n - 1, cols: n - 1, data: make([]T, (n-1)*(n-1))}
	idx := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue // drop the expansion row
		}
		base := i * n
		for j := 0; j < n; j++ {
			if j == col {
				continue // drop the expansion column
			}
			out.data[idx] = m.data[base+j]
			idx++
		}
	}

	return out
}

// Trace returns the sum of the diagonal elements of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func (m *Matrix[T]) Trace() (T, error) {
	var acc T
	if err := ValidateSquareNonNil(m); err != nil {
		return acc, matrixErrorf(opTrace, err)
	}
	for k := 0; k < m.rows; k++ {
		acc += m.data[k*m.cols+k]
	}

	return acc, nil
}
