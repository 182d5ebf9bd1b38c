// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elementwise kernels'
// execution policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: the parallel path partitions work by row
//     index, and each row's computation is independent, so the output is
//     bit-identical to the sequential path regardless of scheduling.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallel keeps the elementwise kernels on the sequential
	// path. Parallelism is opt-in: fork-join overhead only pays off on
	// large shapes.
	DefaultParallel = false

	// DefaultWorkers is the worker-bound placeholder meaning "auto":
	// resolve to runtime.GOMAXPROCS(0) at execution time.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const panicWorkersInvalid = "matrix: WithWorkers: n must be > 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. It is intentionally unexported-in-content to prevent external
// mutation; public entry points accept `...Option` and internally
// resolve them via gatherOptions.
type Options struct {
	parallel bool // DefaultParallel; row-parallel fork-join when true
	workers  int  // DefaultWorkers; 0 ⇒ GOMAXPROCS at run time
}

// ---------- Constructors (WithX) ----------

// WithParallel switches elementwise kernels to the row-parallel path.
// Implementation:
//   - Stage 1: set parallel=true.
//
// Behavior highlights:
//   - Output is identical to the sequential path: rows are independent
//     and each worker writes a disjoint row range of the result.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Affects only Add/Sub/Hadamard/HadamardDiv and the scalar variants;
//     Det/Mul/row reduction are inherently sequential kernels.
//
// AI-Hints:
//   - Worth enabling from roughly tens of thousands of elements upward;
//     below that the goroutine fan-out dominates the arithmetic.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithSequential forces the sequential path (default).
// Complexity: O(1).
func WithSequential() Option {
	return func(o *Options) { o.parallel = false }
}

// WithWorkers bounds the number of concurrent row workers.
// Implementation:
//   - Stage 1: validate n > 0 (panic otherwise — programmer error).
//   - Stage 2: return a setter that writes n into Options.
//
// Inputs:
//   - n: positive worker bound.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Implies nothing about parallel mode; combine with WithParallel.
//
// AI-Hints:
//   - Leave unset for GOMAXPROCS; cap it when sharing the process with
//     latency-sensitive work.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Stable for a given sequence of setters (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		parallel: DefaultParallel,
		workers:  DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// resolveWorkers maps the "auto" placeholder to the runtime parallelism
// bound exactly once, at kernel launch.
func (o Options) resolveWorkers() int {
	if o.workers > 0 {
		return o.workers
	}

	return runtime.GOMAXPROCS(0)
}
