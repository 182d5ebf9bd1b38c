// SPDX-License-Identifier: MIT
// Package vector: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// vector package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap once at the outer
// boundary with fmt.Errorf("ctx: %w", ErrX) — callers still match via
// errors.Is.

var (
	// ErrBadLength is returned when a requested length is invalid (n <= 0)
	// or a source slice is nil/empty at construction.
	ErrBadLength = errors.New("vector: invalid length")

	// ErrOutOfRange indicates that a positional index is outside [0, Len).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates two operands of different lengths were
	// combined (elementwise arithmetic, Dot).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil receiver")
)
