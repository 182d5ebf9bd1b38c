// SPDX-License-Identifier: MIT

// Package matrix: elementwise kernels and their public facades.
//
// Purpose:
//   - One shared binary kernel (matrix ⊕ matrix) and one scalar kernel
//     (matrix ⊕ scalar) behind the closed facade set Add/Sub/Hadamard/
//     HadamardDiv and AddScalar/SubScalar/Scale/DivScalar.
//   - Rows are computed independently of each other, so both kernels
//     offer an opt-in row-parallel path (WithParallel) whose output is
//     identical to the sequential path.
//
// Determinism & Performance:
//   - Sequential path: single flat loop 0..n-1 over the backing slice.
//   - Parallel path: bounded errgroup fork-join over row indices; each
//     worker writes a disjoint row of the result, so no synchronization
//     beyond the join is needed and the output is bit-identical.
package matrix

import "golang.org/x/sync/errgroup"

// ewBinary computes out[i,j] = op(a[i,j], b[i,j]) for a fresh result.
// Internal kernel for the four binary facades; validation, allocation
// and the sequential/parallel split live here exactly once.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func ewBinary[T Scalar](a, b *Matrix[T], op elemOp, tag string, opts []Option) (*Matrix[T], error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	// Allocate result
	out := &Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}

	// Sequential path: one deterministic flat loop.
	if !o.parallel {
		for idx := range a.data {
			out.data[idx] = applyOp(op, a.data[idx], b.data[idx])
		}

		return out, nil
	}

	// Parallel path: fork one task per row, bounded by the worker limit.
	// Each task owns a disjoint slice of the output, so results match the
	// sequential path exactly regardless of scheduling order.
	g := new(errgroup.Group)
	g.SetLimit(o.resolveWorkers())
	cols := a.cols
	for i := 0; i < a.rows; i++ {
		base := i * cols
		g.Go(func() error {
			for j := 0; j < cols; j++ {
				out.data[base+j] = applyOp(op, a.data[base+j], b.data[base+j])
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(tag, err) // unreachable today; kept for kernel symmetry
	}

	return out, nil
}

// ewScalar computes out[i,j] = op(a[i,j], k) with one fixed operand.
// Same structure, validation and parallel split as ewBinary.
func ewScalar[T Scalar](a *Matrix[T], k T, op elemOp, tag string, opts []Option) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	out := &Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}

	if !o.parallel {
		for idx := range a.data {
			out.data[idx] = applyOp(op, a.data[idx], k)
		}

		return out, nil
	}

	g := new(errgroup.Group)
	g.SetLimit(o.resolveWorkers())
	cols := a.cols
	for i := 0; i < a.rows; i++ {
		base := i * cols
		g.Go(func() error {
			for j := 0; j < cols; j++ {
				out.data[base+j] = applyOp(op, a.data[base+j], k)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// Add computes the elementwise sum C = A + B and returns a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Matrix[T]) Add(other *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return ewBinary(m, other, ewAdd, opAdd, opts)
}

// Sub computes the elementwise difference C = A − B and returns a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Matrix[T]) Sub(other *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return ewBinary(m, other, ewSub, opSub, opts)
}

// Hadamard computes the elementwise product C[i,j] = A[i,j]·B[i,j].
// Hadamard ≠ matrix multiplication; use Mul for A×B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Matrix[T]) Hadamard(other *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return ewBinary(m, other, ewMul, opHadamard, opts)
}

// HadamardDiv computes the elementwise quotient C[i,j] = A[i,j]/B[i,j].
// Division follows the element type's own semantics: float division by a
// zero entry yields ±Inf/NaN, integer division by zero panics. This is a
// documented limitation, not a guarded path.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Matrix[T]) HadamardDiv(other *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return ewBinary(m, other, ewDiv, opHadamDiv, opts)
}

// AddScalar returns a fresh matrix with k added to every element.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Matrix[T]) AddScalar(k T, opts ...Option) (*Matrix[T], error) {
	return ewScalar(m, k, ewAdd, opAddScalar, opts)
}

// SubScalar returns a fresh matrix with k subtracted from every element.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Matrix[T]) SubScalar(k T, opts ...Option) (*Matrix[T], error) {
	return ewScalar(m, k, ewSub, opSubScalar, opts)
}

// Scale returns a fresh matrix with every element multiplied by k.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Matrix[T]) Scale(k T, opts ...Option) (*Matrix[T], error) {
	return ewScalar(m, k, ewMul, opScale, opts)
}

// DivScalar returns a fresh matrix with every element divided by k.
// Division semantics are the element type's own (see HadamardDiv).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Matrix[T]) DivScalar(k T, opts ...Option) (*Matrix[T], error) {
	return ewScalar(m, k, ewDiv, opDivScalar, opts)
}
