// SPDX-License-Identifier: MIT

// Package matrix_test: elementwise kernel tests, including the
// parallel-equals-sequential guarantee.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub verifies elementwise addition and subtraction.
func TestAddSub(t *testing.T) {
	a, err := matrix.NewFromGrid(2, 2, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewFromGrid(2, 2, [][]int{{10, 20}, {30, 40}})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{11, 22}, {33, 44}}, sum.Grid())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{9, 18}, {27, 36}}, diff.Grid())

	// Operands stay untouched — every facade is pure.
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.Grid())
	require.Equal(t, [][]int{{10, 20}, {30, 40}}, b.Grid())
}

// TestHadamard verifies the elementwise product and quotient.
func TestHadamard(t *testing.T) {
	a, err := matrix.NewFromGrid(2, 2, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewFromGrid(2, 2, [][]float64{{2, 2}, {0.5, 4}})
	require.NoError(t, err)

	prod, err := a.Hadamard(b) // elementwise, not A×B
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4}, {1.5, 16}}, prod.Grid())

	quot, err := a.HadamardDiv(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5, 1}, {6, 1}}, quot.Grid())
}

// TestElementwiseShapeMismatch ensures shape disagreement surfaces the sentinel.
func TestElementwiseShapeMismatch(t *testing.T) {
	a, err := matrix.New[int](2, 2)
	require.NoError(t, err)
	b, err := matrix.New[int](2, 3)
	require.NoError(t, err)

	_, err = a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Hadamard(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScalarOps verifies the scalar-broadcast facades.
func TestScalarOps(t *testing.T) {
	a, err := matrix.NewFromGrid(2, 2, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	plus, err := a.AddScalar(10)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 12}, {13, 14}}, plus.Grid())

	minus, err := a.SubScalar(1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {2, 3}}, minus.Grid())

	scaled, err := a.Scale(2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4}, {6, 8}}, scaled.Grid())
}

// TestDivScalarToIdentity pins the scaling scenario: a doubled identity
// divided by 2 is the identity again.
func TestDivScalarToIdentity(t *testing.T) {
	a, err := matrix.NewFromGrid(2, 2, [][]float64{{2, 0}, {0, 2}})
	require.NoError(t, err)
	half, err := a.DivScalar(2)
	require.NoError(t, err)

	id, err := matrix.NewIdentity[float64](2, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(id, half))
}

// TestParallelMatchesSequential guarantees the row-parallel path
// produces output identical to the sequential one, for both the binary
// and scalar kernels and across worker bounds.
func TestParallelMatchesSequential(t *testing.T) {
	// A shape big enough to actually fan out across workers.
	const rows, cols = 64, 37
	a, err := matrix.New[float64](rows, cols)
	require.NoError(t, err)
	b, err := matrix.New[float64](rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, a.Set(i, j, float64(i*cols+j)/3.0))
			require.NoError(t, b.Set(i, j, float64((i+j)%7)+1)) // keep divisors nonzero
		}
	}

	seq, err := a.Add(b)
	require.NoError(t, err)
	par, err := a.Add(b, matrix.WithParallel())
	require.NoError(t, err)
	require.True(t, matrix.Equal(seq, par)) // bit-identical output

	seq, err = a.HadamardDiv(b)
	require.NoError(t, err)
	par, err = a.HadamardDiv(b, matrix.WithParallel(), matrix.WithWorkers(3))
	require.NoError(t, err)
	require.True(t, matrix.Equal(seq, par)) // bounded workers change nothing

	seqS, err := a.Scale(1.5)
	require.NoError(t, err)
	parS, err := a.Scale(1.5, matrix.WithParallel(), matrix.WithWorkers(1))
	require.NoError(t, err)
	require.True(t, matrix.Equal(seqS, parS)) // single worker degenerates to sequential
}

// TestWithWorkersPanics ensures the option constructor rejects nonsense.
func TestWithWorkersPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithWorkers(0) })  // zero workers is a programmer error
	require.Panics(t, func() { matrix.WithWorkers(-4) }) // so is a negative bound
}

// TestAllClose exercises the tolerance-based comparison.
func TestAllClose(t *testing.T) {
	a, err := matrix.NewFromGrid(2, 2, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewFromGrid(2, 2, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})
	require.NoError(t, err)

	ok, err := matrix.AllClose(a, b, 1e-9, 1e-9)
	require.NoError(t, err)
	require.True(t, ok) // within tolerance

	far, err := matrix.NewFromGrid(2, 2, [][]float64{{1.1, 2}, {3, 4}})
	require.NoError(t, err)
	ok, err = matrix.AllClose(a, far, 1e-9, 1e-9)
	require.NoError(t, err)
	require.False(t, ok) // 0.1 apart is not close

	c, err := matrix.New[float64](2, 3)
	require.NoError(t, err)
	_, err = matrix.AllClose(a, c, 1e-9, 1e-9)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // shape must match
}
