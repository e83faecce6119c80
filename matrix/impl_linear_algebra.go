// SPDX-License-Identifier: MIT
// Package matrix provides exact linear-algebra kernels over *big.Rat:
// matrix-vector product, rank and Gauss–Jordan solving of square or
// over-determined systems. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used by the hailstone solver and its tests.
//   - Define operation tags for deterministic error reporting.
//
// Notes:
//   - Arithmetic is exact; there is no epsilon anywhere in this package.
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec = "MatVec"
	opRank   = "Rank"
	opSolve  = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m · x.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, m.Cols()).
//   - Stage 2: fixed i→j accumulation; zero entries of m are skipped.
//
// Inputs:
//   - m: non-nil r×c matrix.
//   - x: length-c vector without nil entries (never mutated).
//
// Returns:
//   - []*big.Rat: fresh length-r vector.
//
// Errors:
//   - ErrNilMatrix, ErrNilValue, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c) big-number operations, Space O(r).
func MatVec(m Matrix, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := d.r, d.c
	out := make([]*big.Rat, rows)
	prod := new(big.Rat)
	var i, j int
	for i = 0; i < rows; i++ {
		acc := new(big.Rat)
		for j = 0; j < cols; j++ {
			a := d.data[i*cols+j]
			if a.Sign() == 0 {
				continue
			}
			acc.Add(acc, prod.Mul(a, x[j]))
		}
		out[i] = acc
	}

	return out, nil
}

// Rank returns the row rank of m, computed by exact elimination on a copy.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)) big-number operations, Space O(r*c).
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(d.reduce(d.c)), nil
}

// Solve returns the unique x with a · x = b.
//
// Implementation:
//   - Stage 1: ValidateSystem(a, b): a non-nil, Rows ≥ Cols, len(b) == Rows.
//   - Stage 2: build the augmented matrix [a | b] and run Gauss–Jordan over
//     the first Cols columns (first non-zero pivot in row order).
//   - Stage 3: rank < Cols ⇒ ErrSingular; any remaining row reading 0 = c with
//     c ≠ 0 ⇒ ErrInconsistent; otherwise read x off the last column.
//
// Behavior highlights:
//   - Exact: the result is independent of row order for consistent full-rank input.
//   - Inputs are never mutated.
//
// Inputs:
//   - a: r×c coefficient matrix with r ≥ c.
//   - b: length-r right-hand side.
//
// Returns:
//   - []*big.Rat: fresh length-c solution.
//
// Errors:
//   - ErrNilMatrix, ErrNilValue, ErrUnderdetermined, ErrDimensionMismatch,
//     ErrSingular, ErrInconsistent.
//
// Complexity:
//   - Time O(r*c²) big-number operations, Space O(r*c).
func Solve(a Matrix, b []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	src, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	rows, cols := src.r, src.c
	aug, err := NewDense(rows, cols+1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			aug.data[i*aug.c+j].Set(src.data[i*cols+j])
		}
		aug.data[i*aug.c+cols].Set(b[i])
	}

	pivots := aug.reduce(cols)
	if len(pivots) < cols {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rank %d of %d: %w", len(pivots), cols, ErrSingular))
	}
	for i = cols; i < rows; i++ {
		if aug.data[i*aug.c+cols].Sign() != 0 {
			return nil, matrixErrorf(opSolve, fmt.Errorf("row %d: %w", i, ErrInconsistent))
		}
	}

	// Full column rank: row k carries the pivot of column k with value 1.
	x := make([]*big.Rat, cols)
	for i = 0; i < cols; i++ {
		x[i] = new(big.Rat).Set(aug.data[i*aug.c+cols])
	}

	return x, nil
}

// reduce brings m into reduced row echelon form in place, pivoting only on the
// first limit columns. It returns the pivot column of each leading row, so
// len(result) is the rank of the leading r×limit block.
//
// Pivot choice is the first non-zero entry at or below the current row, which
// keeps the procedure deterministic for a given row order.
func (m *Dense) reduce(limit int) []int {
	pivots := make([]int, 0, limit)
	factor := new(big.Rat)
	prod := new(big.Rat)
	inv := new(big.Rat)
	row := 0
	var col, k, j int
	for col = 0; col < limit && row < m.r; col++ {
		// Find pivot row.
		p := -1
		for k = row; k < m.r; k++ {
			if m.data[k*m.c+col].Sign() != 0 {
				p = k
				break
			}
		}
		if p < 0 {
			continue
		}
		m.swapRows(row, p)

		// Normalize pivot row so the pivot is exactly 1.
		base := row * m.c
		inv.Inv(m.data[base+col])
		for j = col; j < m.c; j++ {
			m.data[base+j].Mul(m.data[base+j], inv)
		}

		// Eliminate column from every other row.
		for k = 0; k < m.r; k++ {
			if k == row {
				continue
			}
			kb := k * m.c
			if m.data[kb+col].Sign() == 0 {
				continue
			}
			factor.Set(m.data[kb+col])
			for j = col; j < m.c; j++ {
				m.data[kb+j].Sub(m.data[kb+j], prod.Mul(factor, m.data[base+j]))
			}
		}

		pivots = append(pivots, col)
		row++
	}

	return pivots
}

// swapRows exchanges rows a and b by swapping cell pointers.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ab, bb := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[ab+j], m.data[bb+j] = m.data[bb+j], m.data[ab+j]
	}
}
