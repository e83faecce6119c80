// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Compare exact rationals with go-cmp instead of float tolerances.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/hailrock/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set copy path in kernels.
type hide struct{ matrix.Matrix }

// ratCmp makes cmp.Diff compare *big.Rat by value.
var ratCmp = cmp.Comparer(func(a, b *big.Rat) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	return m
}

// MustInts builds a *Dense from integer rows or fails the test.
func MustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromInts(rows)
	require.NoError(t, err)
	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) *big.Rat {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// rats converts integer literals into a fresh []*big.Rat.
func rats(vs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vs))
	for i, v := range vs {
		out[i] = new(big.Rat).SetInt64(v)
	}
	return out
}

// requireRatsEqual fails with a readable diff when two rational vectors differ.
func requireRatsEqual(t *testing.T, want, got []*big.Rat) {
	t.Helper()
	if diff := cmp.Diff(want, got, ratCmp); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}
