package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/hailrock/matrix"
)

// BenchmarkSolve_9x6 measures a 9×6 over-determined system with 10^15-scale
// coefficients, the shape produced by three-observation line fitting.
func BenchmarkSolve_9x6(b *testing.B) {
	const base = 287668477092999
	rows := make([][]int64, 9)
	rhs := make([]*big.Rat, 9)
	for i := range rows {
		rows[i] = make([]int64, 6)
		sum := new(big.Rat)
		for j := range rows[i] {
			v := int64((i+1)*(j+2)%7) + base*int64((i+j)%3) // deterministic, mixed magnitude
			rows[i][j] = v
			sum.Add(sum, new(big.Rat).SetInt64(v)) // x = (1,...,1)
		}
		rhs[i] = sum
	}
	a, err := matrix.NewDenseFromInts(rows)
	if err != nil {
		b.Fatalf("NewDenseFromInts: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Solve(a, rhs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
