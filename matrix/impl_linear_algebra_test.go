// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the exact linear-algebra kernels.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/hailrock/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_Square(t *testing.T) {
	a := MustInts(t, [][]int64{{2, 1}, {1, 3}})
	x, err := matrix.Solve(a, rats(3, 5))
	require.NoError(t, err)
	requireRatsEqual(t, []*big.Rat{big.NewRat(4, 5), big.NewRat(7, 5)}, x)
}

// TestSolve_OverDetermined verifies that redundant but consistent rows are accepted.
func TestSolve_OverDetermined(t *testing.T) {
	a := MustInts(t, [][]int64{{2, 1}, {1, 3}, {1, 1}})
	x, err := matrix.Solve(a, rats(4, 7, 3))
	require.NoError(t, err)
	requireRatsEqual(t, rats(1, 2), x)
}

func TestSolve_Inconsistent(t *testing.T) {
	a := MustInts(t, [][]int64{{2, 1}, {1, 3}, {1, 1}})
	_, err := matrix.Solve(a, rats(4, 7, 4))
	assert.ErrorIs(t, err, matrix.ErrInconsistent)
}

func TestSolve_Singular(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2}, {2, 4}, {3, 6}})
	_, err := matrix.Solve(a, rats(1, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve_Validation(t *testing.T) {
	t.Parallel()

	wide := MustInts(t, [][]int64{{1, 2}})
	square := MustInts(t, [][]int64{{1, 0}, {0, 1}})
	var nilDense *matrix.Dense

	tests := []struct {
		name    string
		a       matrix.Matrix
		b       []*big.Rat
		wantErr error
	}{
		{"nil interface", nil, rats(1), matrix.ErrNilMatrix},
		{"typed nil", nilDense, rats(1), matrix.ErrNilMatrix},
		{"underdetermined", wide, rats(1), matrix.ErrUnderdetermined},
		{"rhs length", square, rats(1, 2, 3), matrix.ErrDimensionMismatch},
		{"rhs nil", square, nil, matrix.ErrNilValue},
		{"rhs nil entry", square, []*big.Rat{big.NewRat(1, 1), nil}, matrix.ErrNilValue},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Solve(tc.a, tc.b)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestSolve_RowOrderIndependent checks the exact answer does not depend on
// the order in which equations are eliminated.
func TestSolve_RowOrderIndependent(t *testing.T) {
	rows := [][]int64{{0, 3, 1}, {2, 0, -1}, {1, 1, 1}, {4, 2, 0}}
	b := rats(5, 0, 4, 6)

	x1, err := matrix.Solve(MustInts(t, rows), b)
	require.NoError(t, err)

	rev := make([][]int64, len(rows))
	revB := make([]*big.Rat, len(b))
	for i := range rows {
		rev[len(rows)-1-i] = rows[i]
		revB[len(b)-1-i] = b[i]
	}
	x2, err := matrix.Solve(MustInts(t, rev), revB)
	require.NoError(t, err)

	requireRatsEqual(t, rats(1, 1, 2), x1)
	requireRatsEqual(t, x1, x2)
}

// TestSolve_HiddenMatchesDense ensures the generic path produces the same result.
func TestSolve_HiddenMatchesDense(t *testing.T) {
	a := MustInts(t, [][]int64{{2, 1}, {1, 3}})
	x1, err := matrix.Solve(a, rats(3, 5))
	require.NoError(t, err)
	x2, err := matrix.Solve(hide{a}, rats(3, 5))
	require.NoError(t, err)
	requireRatsEqual(t, x1, x2)
}

func TestSolve_DoesNotMutateInputs(t *testing.T) {
	a := MustInts(t, [][]int64{{2, 1}, {1, 3}})
	b := rats(3, 5)
	before := a.String()

	_, err := matrix.Solve(a, b)
	require.NoError(t, err)

	assert.Equal(t, before, a.String())
	requireRatsEqual(t, rats(3, 5), b)
}

// TestSolve_LargeMagnitude keeps 10^15-scale coefficients exact.
func TestSolve_LargeMagnitude(t *testing.T) {
	const big15 = 368925240582247
	a := MustInts(t, [][]int64{{big15, 1}, {1, big15}})
	x, err := matrix.Solve(a, rats(big15-1, 1-big15))
	require.NoError(t, err)
	requireRatsEqual(t, rats(1, -1), x)
}

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want int
	}{
		{"identity", [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"dependent row", [][]int64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}}, 2},
		{"zero", [][]int64{{0, 0}, {0, 0}}, 0},
		{"tall", [][]int64{{1, 1}, {2, 2}, {0, 5}}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustInts(t, tc.rows)
			r, err := matrix.Rank(m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r)

			r, err = matrix.Rank(hide{m})
			require.NoError(t, err)
			assert.Equal(t, tc.want, r, "generic path")
		})
	}

	_, err := matrix.Rank(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2}, {3, 4}, {0, -1}})
	y, err := matrix.MatVec(m, rats(1, 1))
	require.NoError(t, err)
	requireRatsEqual(t, rats(3, 7, -1), y)

	_, err = matrix.MatVec(m, rats(1, 1, 1))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(nil, rats(1))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec_Residual uses MatVec to confirm a Solve result satisfies a·x = b.
func TestMatVec_Residual(t *testing.T) {
	a := MustInts(t, [][]int64{{3, -2, 5}, {1, 1, 1}, {7, 0, -4}})
	b := rats(10, 4, -2)
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	requireRatsEqual(t, b, y)
}
