// SPDX-License-Identifier: MIT

// Package matrix: domain types and internal operation tags.
// This file intentionally contains ONLY domain-facing type aliases and
// the closed elementwise operation enum. Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package matrix

import "github.com/katalvlaran/fixmat/vector"

// Scalar re-exports the element-type constraint so callers instantiating
// Matrix[T] don't need a separate vector import for the bound alone.
type Scalar = vector.Scalar

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opFromGrid  = "NewFromGrid"
	opAssign    = "Assign"
	opRow       = "Row"
	opCol       = "Col"
	opSlice     = "Slice"
	opDet       = "Det"
	opTrace     = "Trace"
	opEchelon   = "RowEchelon"
	opReduced   = "ReducedRowEchelon"
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opHadamDiv  = "HadamardDiv"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opMul       = "Mul"
	opMatVec    = "MulVec"
	opCompare   = "AllClose"
)

// elemOp selects the arithmetic applied by the shared elementwise kernel.
// The set is closed: the public API only ever passes the four constants
// below, so the default branch in applyOp is unreachable through the
// exported surface and treated as a programmer error (panic).
type elemOp uint8

const (
	ewAdd elemOp = iota // x + y
	ewSub               // x - y
	ewMul               // x * y (Hadamard)
	ewDiv               // x / y (Hadamard quotient)
)

// panicUnknownOp is the stable message for an out-of-set elemOp value.
const panicUnknownOp = "matrix: unknown elementwise operation tag"

// applyOp dispatches one elementwise operation. Unknown tags abort: a
// value outside the enum means a broken private caller, not bad data.
func applyOp[T Scalar](op elemOp, x, y T) T {
	switch op {
	case ewAdd:
		return x + y
	case ewSub:
		return x - y
	case ewMul:
		return x * y
	case ewDiv:
		return x / y
	default:
		panic(panicUnknownOp)
	}
}
