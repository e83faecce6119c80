// SPDX-License-Identifier: MIT

package hailstone

import (
	"fmt"
	"math/big"
)

const opCrossings = "CountCrossingsXY"

// CountCrossingsXY counts unordered pairs of observations whose paths,
// projected onto the XY plane and followed forward in time only, cross
// inside the square [lo, hi] × [lo, hi] (bounds inclusive).
//
// Paths are compared as lines, not as moving points: the two hailstones may
// reach the crossing point at different times. Parallel paths never count,
// even when they overlap. Arithmetic is exact.
//
// Complexity: O(n²) pairs, each O(1) big-number operations.
//
// Errors:
//   - ErrBadTestArea when lo > hi.
func CountCrossingsXY(obs []Observation, lo, hi int64) (int, error) {
	if lo > hi {
		return 0, hailErrorf(opCrossings, fmt.Errorf("[%d, %d]: %w", lo, hi, ErrBadTestArea))
	}
	low := new(big.Rat).SetInt64(lo)
	high := new(big.Rat).SetInt64(hi)

	count := 0
	var i, j int
	for i = 0; i < len(obs); i++ {
		for j = i + 1; j < len(obs); j++ {
			x, y, ok := crossXY(obs[i], obs[j])
			if !ok {
				continue
			}
			if x.Cmp(low) >= 0 && x.Cmp(high) <= 0 && y.Cmp(low) >= 0 && y.Cmp(high) <= 0 {
				count++
			}
		}
	}

	return count, nil
}

// crossXY returns the XY crossing point of the forward paths of a and b.
// ok is false for parallel paths or when the crossing lies in either past.
func crossXY(a, b Observation) (x, y *big.Rat, ok bool) {
	pa, va := a.Position.ints(), a.Velocity.ints()
	pb, vb := b.Position.ints(), b.Velocity.ints()

	den := det2(va, vb)
	if den.Sign() == 0 {
		return nil, nil, false
	}
	d := subInts(pb, pa)

	ta := new(big.Rat).SetFrac(det2(d, vb), den)
	tb := new(big.Rat).SetFrac(det2(d, va), den)
	if ta.Sign() < 0 || tb.Sign() < 0 {
		return nil, nil, false
	}

	p := a.At(ta)
	return p[0], p[1], true
}

// det2 returns u.X*v.Y − u.Y*v.X, the XY-plane determinant.
func det2(u, v [3]*big.Int) *big.Int {
	l := new(big.Int).Mul(u[0], v[1])
	r := new(big.Int).Mul(u[1], v[0])
	return l.Sub(l, r)
}
