// SPDX-License-Identifier: MIT

// Package matrix: comparison helpers.
//
// Purpose:
//   - Exact structural equality for any element type (Equal).
//   - Tolerance-based comparison for floating-point work (AllClose),
//     checking |a−b| ≤ atol + rtol·|b| per element.
package matrix

import "math"

// Equal reports whether a and b have identical shape and elements.
// Exact comparison in the element type; nil operands are never equal.
// Time: O(r*c). Space: O(1). Deterministic.
func Equal[T Scalar](a, b *Matrix[T]) bool {
	// Nil or shape disagreement can never be equal.
	if a == nil || b == nil {
		return false
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	// Flat scan with early exit on first difference.
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks elementwise |a−b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true, nil) if every element satisfies the relation.
//
// Policy:
//   - a and b must be non-nil and share a shape.
//   - rtol and atol are treated as |rtol|, |atol| (negatives normalized);
//     NaN/Inf tolerances are rejected.
//
// Errors: ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Time: O(r*c). Space: O(1). Deterministic flat scan with early exit.
//
// AI-Hints:
//   - Integer element types compare exactly under (0, 0) tolerances;
//     prefer Equal there — it avoids the float conversions.
func AllClose[T Scalar](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	// Normalize tolerances to non-negative finite values.
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opCompare, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	// Validate presence and shape equality using central validators.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opCompare, err)
	}

	// Flat scan; all arithmetic in float64 regardless of element type.
	for idx := range a.data {
		diff := math.Abs(float64(a.data[idx]) - float64(b.data[idx]))
		if diff > atol+rtol*math.Abs(float64(b.data[idx])) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
