// SPDX-License-Identifier: MIT

// Package matrix: Gauss-Jordan row-reduction kernels.
// RowEchelon and ReducedRowEchelon share one elimination core that walks
// a pivot cursor (i, j) across a working clone of the receiver.
package matrix

// RowEchelon returns the row-echelon form of a square matrix: each pivot
// normalized to 1 and all entries strictly below each pivot zeroed.
// The receiver is untouched; the result is a fresh matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); clone the receiver.
//   - Stage 2: gaussJordan with below-only elimination (see that kernel
//     for the pivot-search/normalize/eliminate loop).
//
// Behavior highlights:
//   - Partial-pivot-free: the first nonzero entry below the cursor wins
//     the row swap (no magnitude search), keeping results deterministic
//     and exact for integer-friendly inputs.
//   - A column band with no usable pivot advances the cursor right; when
//     the cursor falls off the last column the partially reduced matrix
//     is returned as-is — that is the single "not fully reducible" exit.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed scan orders throughout; identical inputs yield identical output.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
//
// Notes:
//   - Normalization divides by the pivot in the element type's own
//     arithmetic; for integer elements this truncates, so prefer float
//     elements when exact unit pivots matter.
//
// AI-Hints:
//   - A full-rank input comes back with 1s on the diagonal and 0s below;
//     rank deficiency shows up as trailing all-zero rows.
func (m *Matrix[T]) RowEchelon() (*Matrix[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}

	return gaussJordan(m.Clone(), false), nil
}

// ReducedRowEchelon returns the reduced row-echelon form: row-echelon
// form with entries above each pivot zeroed as well. Idempotent — the
// RREF of an RREF is itself. The receiver is untouched.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n³), Space O(n²).
func (m *Matrix[T]) ReducedRowEchelon() (*Matrix[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opReduced, err)
	}

	return gaussJordan(m.Clone(), true), nil
}

// gaussJordan runs the elimination loop in place on out and returns it.
// full=false zeroes only below each pivot (row-echelon); full=true also
// zeroes above (reduced row-echelon).
//
// Pivot cursor (i, j) starts at (0, 0) and the loop runs while both
// indices are in range:
//  1. If out[i][j] is zero, swap up the first row below i with a nonzero
//     entry in column j. If none exists the whole band below the cursor
//     is zero in this column: advance j and retry — the advance bounds
//     the search, and j reaching the edge returns the current state.
//  2. Normalize row i by the pivot so out[i][j] becomes exactly 1.
//  3. Eliminate column j in the other rows by subtracting multiples of
//     row i. Rows whose entry is already zero are skipped.
//  4. Advance both cursor indices.
func gaussJordan[T Scalar](out *Matrix[T], full bool) *Matrix[T] {
	var zero T
	n, c := out.rows, out.cols
	i, j := 0, 0
	for i < n && j < c {
		// Step 1: secure a nonzero pivot at (i, j), swapping up if needed.
		if out.data[i*c+j] == zero {
			swapped := false
			for r := i + 1; r < n; r++ {
				if out.data[r*c+j] != zero {
					swapRows(out, i, r)
					swapped = true
					break // first nonzero row wins
				}
			}
			if !swapped {
				// Column j is zero from row i down: move the search right.
				j++
				continue // j == c ends the loop — nothing left to reduce
			}
		}

		// Step 2: normalize row i so the pivot becomes exactly 1.
		pivot := out.data[i*c+j]
		base := i * c
		for k := 0; k < c; k++ {
			out.data[base+k] /= pivot
		}

		// Step 3: eliminate column j in the remaining rows.
		lo := i + 1
		if full {
			lo = 0 // reduced form clears above the pivot too
		}
		for r := lo; r < n; r++ {
			if r == i {
				continue // never eliminate the pivot row itself
			}
			factor := out.data[r*c+j]
			if factor == zero {
				continue // already clear
			}
			rb := r * c
			for k := 0; k < c; k++ {
				out.data[rb+k] -= factor * out.data[base+k]
			}
		}

		// Step 4: advance the pivot cursor diagonally.
		i++
		j++
	}

	return out
}

// swapRows exchanges rows a and b of m in place. Indices are guaranteed
// valid by the caller. Complexity: O(c).
func swapRows[T Scalar](m *Matrix[T], a, b int) {
	ab, bb := a*m.cols, b*m.cols
	for k := 0; k < m.cols; k++ {
		m.data[ab+k], m.data[bb+k] = m.data[bb+k], m.data[ab+k]
	}
}
