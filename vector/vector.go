// SPDX-License-Identifier: MIT

// Package vector: the Vector type, construction, accessors and arithmetic.
// Vector is a concrete fixed-length sequence backed by a flat slice for
// performance and cache friendliness.
package vector

import (
	"fmt"
	"strings"
)

// Scalar is the set of element types the algebra operates on: any core
// integer or floating-point type. Every member supports +, -, *, / and
// comparison against its zero value, which is exactly the contract the
// kernels need. Integer division truncates per Go semantics; callers
// wanting exact rational reductions should pick a float element type.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opVecAdd   = "Add"
	opVecSub   = "Sub"
	opVecMul   = "Mul"
	opVecDiv   = "Div"
	opVecDot   = "Dot"
	opVecAt    = "At"
	opVecSet   = "Set"
	opVecBuild = "New"
)

// vectorErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching the sentinel.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vector is a fixed-length sequence of T values.
// n is the length and data holds exactly n elements.
type Vector[T Scalar] struct {
	n    int // fixed length, set once at construction
	data []T // flat backing storage, length == n
}

// New creates a zero-initialized Vector of length n.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n) time and memory.
func New[T Scalar](n int) (*Vector[T], error) {
	// Validate length
	if n <= 0 {
		return nil, vectorErrorf(opVecBuild, ErrBadLength)
	}

	// Return initialized Vector
	return &Vector[T]{n: n, data: make([]T, n)}, nil
}

// FromSlice creates a Vector holding a copy of src.
// The Vector does not alias src; later writes to either are independent.
// Complexity: O(n) time and memory.
func FromSlice[T Scalar](src []T) (*Vector[T], error) {
	// An empty source has no meaningful fixed length.
	if len(src) == 0 {
		return nil, vectorErrorf(opVecBuild, ErrBadLength)
	}
	// Copy into fresh storage to guarantee independence.
	data := make([]T, len(src))
	copy(data, src)

	return &Vector[T]{n: len(src), data: data}, nil
}

// Len returns the fixed length of the vector.
// Complexity: O(1).
func (v *Vector[T]) Len() int {
	return v.n // return stored length
}

// At retrieves the element at position i.
// Returns ErrOutOfRange unless 0 <= i < Len().
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	// Validate index
	if i < 0 || i >= v.n {
		var zero T
		return zero, vectorErrorf(opVecAt, ErrOutOfRange)
	}

	// Return stored value
	return v.data[i], nil
}

// Set assigns value x at position i.
// Returns ErrOutOfRange unless 0 <= i < Len().
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	// Validate index
	if i < 0 || i >= v.n {
		return vectorErrorf(opVecSet, ErrOutOfRange)
	}
	// Assign value
	v.data[i] = x

	return nil
}

// Clone returns a deep copy of the vector.
// Complexity: O(n) time and memory.
func (v *Vector[T]) Clone() *Vector[T] {
	// Allocate and fill fresh storage
	data := make([]T, v.n)
	copy(data, v.data)

	return &Vector[T]{n: v.n, data: data}
}

// Data returns a copy of the underlying elements as a plain slice.
// The returned slice does not alias the vector's storage.
// Complexity: O(n).
func (v *Vector[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data)

	return out
}

// binary computes out[i] = op(v[i], other[i]) for a fresh result vector.
// Internal helper shared by Add/Sub/Mul/Div; validation lives here so
// every facade keeps an identical error surface.
//
// Implementation:
//   - Stage 1: validate receiver/operand non-nil and equal lengths.
//   - Stage 2: single flat loop 0..n-1 in fixed order.
//
// Errors:
//   - ErrNilVector (nil operand), ErrDimensionMismatch (length mismatch).
//
// Complexity:
//   - Time O(n), Space O(n) for the result.
func (v *Vector[T]) binary(other *Vector[T], tag string, op func(a, b T) T) (*Vector[T], error) {
	// Validate operands
	if v == nil || other == nil {
		return nil, vectorErrorf(tag, ErrNilVector)
	}
	if v.n != other.n {
		return nil, vectorErrorf(tag, ErrDimensionMismatch)
	}

	// Apply op elementwise in deterministic order
	out := &Vector[T]{n: v.n, data: make([]T, v.n)}
	for i := 0; i < v.n; i++ {
		out.data[i] = op(v.data[i], other.data[i])
	}

	return out, nil
}

// Add returns the elementwise sum v + other as a fresh vector.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	return v.binary(other, opVecAdd, func(a, b T) T { return a + b })
}

// Sub returns the elementwise difference v - other as a fresh vector.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	return v.binary(other, opVecSub, func(a, b T) T { return a - b })
}

// Mul returns the elementwise product v ⊙ other as a fresh vector.
// This is NOT a dot product; see Dot for Σ vᵢ·otherᵢ.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector[T]) Mul(other *Vector[T]) (*Vector[T], error) {
	return v.binary(other, opVecMul, func(a, b T) T { return a * b })
}

// Div returns the elementwise quotient v ⊘ other as a fresh vector.
// Division follows the element type's own semantics: integer division
// truncates and panics on a zero divisor; float division yields ±Inf/NaN.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector[T]) Div(other *Vector[T]) (*Vector[T], error) {
	return v.binary(other, opVecDiv, func(a, b T) T { return a / b })
}

// Scale returns a fresh vector whose elements are k * v[i].
// Complexity: O(n).
func (v *Vector[T]) Scale(k T) *Vector[T] {
	out := &Vector[T]{n: v.n, data: make([]T, v.n)}
	for i := 0; i < v.n; i++ {
		out.data[i] = v.data[i] * k
	}

	return out
}

// Dot computes the inner product Σ u[i]·v[i] of two equal-length vectors.
//
// Implementation:
//   - Stage 1: validate both operands non-nil and of equal length.
//   - Stage 2: accumulate products in fixed 0..n-1 order.
//
// Behavior highlights:
//   - Deterministic accumulation order; zero u[i] entries are skipped.
//
// Inputs:
//   - u, v: non-nil vectors of identical length.
//
// Returns:
//   - T: the accumulated inner product.
//
// Errors:
//   - ErrNilVector (nil operand), ErrDimensionMismatch (length mismatch).
//
// Complexity:
//   - Time O(n), Space O(1).
//
// AI-Hints:
//   - For repeated dot products against the same vector, hoist the
//     operand out of the loop; the function allocates nothing.
func Dot[T Scalar](u, v *Vector[T]) (T, error) {
	var zero T
	// Validate operands
	if u == nil || v == nil {
		return zero, vectorErrorf(opVecDot, ErrNilVector)
	}
	if u.n != v.n {
		return zero, vectorErrorf(opVecDot, ErrDimensionMismatch)
	}

	// Accumulate in deterministic order
	acc := zero
	for i := 0; i < u.n; i++ {
		if u.data[i] == zero {
			continue // skip zero for performance
		}
		acc += u.data[i] * v.data[i]
	}

	return acc, nil
}

// String implements fmt.Stringer: elements comma-separated in brackets.
// Complexity: O(n) for string construction.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[') // open sequence
	for i := 0; i < v.n; i++ {
		if i > 0 {
			b.WriteString(", ") // separate values with comma
		}
		fmt.Fprintf(&b, "%v", v.data[i])
	}
	b.WriteByte(']') // close sequence

	return b.String()
}
