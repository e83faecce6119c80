// Package matrix offers exact dense matrices over math/big rationals and the
// small set of linear-algebra kernels needed to solve integer systems without
// rounding error.
//
// The matrix package provides:
//
//   - Dense, a row-major *big.Rat matrix with safe, copying accessors.
//   - MatVec for residual checks (a·x − b).
//   - Rank and Solve, both driven by one deterministic Gauss–Jordan routine.
//     Solve accepts over-determined systems and reports ErrSingular or
//     ErrInconsistent instead of returning an approximate answer.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromInts([][]int64{{2, 1}, {1, 3}})
//	x, err := matrix.Solve(a, []*big.Rat{big.NewRat(3, 1), big.NewRat(5, 1)})
//	// x == [4/5, 7/5]
//
// Inputs of magnitude ~10^15 and their products are handled exactly; cost
// grows with the bit length of intermediate numerators, which stays small for
// the 6×6 and 9×6 systems used in this module.
package matrix
