// SPDX-License-Identifier: MIT

// Package matrix: transpose kernel.
package matrix

// Transpose returns a new Cols×Rows matrix in which column k of the
// receiver becomes row k of the result. The receiver is never mutated.
//
// Implementation:
//   - Single pass over the source in row-major order, scattering each
//     element to its flipped flat position: data[i*c+j] → out[j*r+i].
//
// Determinism:
//   - Fixed i→j traversal independent of data values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - Transpose is a full materialization; avoid calling it repeatedly
//     in tight loops — hoist and reuse the result.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[base+j]
		}
	}

	return out
}
