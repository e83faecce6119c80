// SPDX-License-Identifier: MIT
// Package hailstone_test contains shared fixtures for the solver tests.

package hailstone_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/hailrock/hailstone"
	"github.com/stretchr/testify/require"
)

// puzzleExample is the five-hailstone worked example from the puzzle text.
// The rock is 24, 13, 10 @ -3, 1, 2 and hits them at t = 5, 3, 4, 6, 1.
const puzzleExample = `19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
`

// ratCmp makes cmp.Diff compare *big.Rat by value.
var ratCmp = cmp.Comparer(func(a, b *big.Rat) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

// mustParse parses src or fails the test.
func mustParse(t testing.TB, src string) []hailstone.Observation {
	t.Helper()
	obs, err := hailstone.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return obs
}

// rat3 builds a [3]*big.Rat from integers.
func rat3(x, y, z int64) [3]*big.Rat {
	return [3]*big.Rat{big.NewRat(x, 1), big.NewRat(y, 1), big.NewRat(z, 1)}
}

// requireSameSolution fails with a diff when two solutions differ in any field.
func requireSameSolution(t *testing.T, want, got hailstone.Solution) {
	t.Helper()
	if diff := cmp.Diff(want, got, ratCmp); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}

// requireHitsAll checks the collision invariant for every observation.
func requireHitsAll(t *testing.T, sol hailstone.Solution, obs []hailstone.Observation) {
	t.Helper()
	require.Len(t, sol.Times, len(obs))
	for i, o := range obs {
		if diff := cmp.Diff(o.At(sol.Times[i]), sol.At(sol.Times[i]), ratCmp); diff != "" {
			t.Fatalf("observation %d not hit at t=%s (-hail +rock):\n%s", i, sol.Times[i].RatString(), diff)
		}
	}
}
