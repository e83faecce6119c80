// SPDX-License-Identifier: MIT

package hailstone

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/hailrock/matrix"
)

// unknowns is the number of shared unknowns: rock position (3) + velocity (3).
const unknowns = 6

// MinObservations is the smallest input that can determine a unique rock.
const MinObservations = 3

const (
	opSolve    = "Solve"
	opValidate = "Validate"
)

// Solve finds the rock trajectory that meets every observation.
//
// Description:
//
//	For rock position P and velocity V, meeting observation i at time t_i
//	means P + V·t_i = p_i + v_i·t_i, i.e. (P − p_i) × (V − v_i) = 0.
//	Subtracting that identity for two observations i, j cancels the
//	bilinear P × V term and leaves three linear equations:
//
//	    P × (v_j − v_i) + (p_j − p_i) × V = p_j × v_j − p_i × v_i
//
// Algorithm Outline:
//  1. Reject fewer than MinObservations, or all-parallel velocities.
//  2. Visit observation pairs in the configured Ordering, keeping only
//     equations that raise the rank, until the 6×6 system is full rank.
//  3. Solve exactly over *big.Rat (matrix.Solve).
//  4. Recover t_i for every observation and validate it.
//
// Complexity:
//
//	Time   = O(n) after the pair search, which is O(1) pairs for generic input
//	         and O(n²) pairs in the worst (degenerate) case.
//	Memory = O(n) for the returned times.
//
// Errors:
//   - ErrDegenerateInput: the observations do not determine a unique rock.
//   - ErrInconsistentSolution: some observation is never hit at a valid time.
func Solve(obs []Observation, opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)

	if len(obs) < MinObservations {
		return Solution{}, hailErrorf(opSolve,
			fmt.Errorf("need at least %d observations, got %d: %w", MinObservations, len(obs), ErrDegenerateInput))
	}
	if allVelocitiesParallel(obs) {
		return Solution{}, hailErrorf(opSolve, fmt.Errorf("all velocities parallel: %w", ErrDegenerateInput))
	}

	a, b, err := buildSystem(obs, o.ordering)
	if err != nil {
		return Solution{}, hailErrorf(opSolve, err)
	}

	x, err := matrix.Solve(a, b)
	switch {
	case errors.Is(err, matrix.ErrSingular):
		return Solution{}, hailErrorf(opSolve, fmt.Errorf("%w: %w", ErrDegenerateInput, err))
	case errors.Is(err, matrix.ErrInconsistent):
		return Solution{}, hailErrorf(opSolve, fmt.Errorf("%w: %w", ErrInconsistentSolution, err))
	case err != nil:
		return Solution{}, hailErrorf(opSolve, err)
	}

	sol := Solution{
		Position: [3]*big.Rat{x[0], x[1], x[2]},
		Velocity: [3]*big.Rat{x[3], x[4], x[5]},
		Times:    make([]*big.Rat, len(obs)),
	}
	for i := range obs {
		t, err := collisionTime(sol, obs[i])
		if err != nil {
			return Solution{}, hailErrorf(opValidate, fmt.Errorf("observation %d: %w", i, err))
		}
		if t.Sign() < 0 && !o.allowPast {
			return Solution{}, hailErrorf(opValidate,
				fmt.Errorf("observation %d: negative time %s: %w", i, t.RatString(), ErrInconsistentSolution))
		}
		sol.Times[i] = t
	}

	return sol, nil
}

// allVelocitiesParallel reports whether every pair of velocities is parallel.
func allVelocitiesParallel(obs []Observation) bool {
	var i, j int
	for i = 0; i < len(obs); i++ {
		for j = i + 1; j < len(obs); j++ {
			if !obs[i].Velocity.Parallel(obs[j].Velocity) {
				return false
			}
		}
	}
	return true
}

// pairSequence lists observation pairs (i<j) in the order given by ord.
func pairSequence(n int, ord Ordering) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	var i, j int
	for j = 1; j < n; j++ {
		for i = 0; i < j; i++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	if ord == ReversePairs {
		for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
			pairs[l], pairs[r] = pairs[r], pairs[l]
		}
	}
	return pairs
}

// pairEquations returns the three linear equations contributed by (i, j):
// coefficient rows over [Px Py Pz Vx Vy Vz] and their right-hand sides.
func pairEquations(oi, oj Observation) ([3][unknowns]*big.Int, [3]*big.Int) {
	pi, vi := oi.Position.ints(), oi.Velocity.ints()
	pj, vj := oj.Position.ints(), oj.Velocity.ints()
	d := subInts(vj, vi) // P × d
	e := subInts(pj, pi) // e × V
	rhs := subInts(crossInts(pj, vj), crossInts(pi, vi))

	neg := func(x *big.Int) *big.Int { return new(big.Int).Neg(x) }
	zero := func() *big.Int { return new(big.Int) }

	rows := [3][unknowns]*big.Int{
		{zero(), d[2], neg(d[1]), zero(), neg(e[2]), e[1]},
		{neg(d[2]), zero(), d[0], e[2], zero(), neg(e[0])},
		{d[1], neg(d[0]), zero(), neg(e[1]), e[0], zero()},
	}
	return rows, rhs
}

// buildSystem accumulates independent equations until the system reaches
// full rank. The result is always 6×6.
func buildSystem(obs []Observation, ord Ordering) (*matrix.Dense, []*big.Rat, error) {
	coeffs := make([][unknowns]*big.Int, 0, unknowns)
	rhs := make([]*big.Rat, 0, unknowns)

	for _, p := range pairSequence(len(obs), ord) {
		rows, vals := pairEquations(obs[p[0]], obs[p[1]])
		for k := range rows {
			grows, err := raisesRank(coeffs, rows[k])
			if err != nil {
				return nil, nil, err
			}
			if !grows {
				continue
			}
			coeffs = append(coeffs, rows[k])
			rhs = append(rhs, new(big.Rat).SetInt(vals[k]))
			if len(coeffs) == unknowns {
				a, err := denseFromRows(coeffs)
				return a, rhs, err
			}
		}
	}

	return nil, nil, fmt.Errorf("rank %d of %d after all pairs: %w", len(coeffs), unknowns, ErrDegenerateInput)
}

// raisesRank reports whether appending row to kept increases its rank.
// kept is always linearly independent, so its rank equals len(kept).
func raisesRank(kept [][unknowns]*big.Int, row [unknowns]*big.Int) (bool, error) {
	m, err := denseFromRows(append(kept[:len(kept):len(kept)], row))
	if err != nil {
		return false, err
	}
	r, err := matrix.Rank(m)
	if err != nil {
		return false, err
	}
	return r == len(kept)+1, nil
}

func denseFromRows(rows [][unknowns]*big.Int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(rows), unknowns)
	if err != nil {
		return nil, err
	}
	v := new(big.Rat)
	var i, j int
	for i = 0; i < len(rows); i++ {
		for j = 0; j < unknowns; j++ {
			if err = m.Set(i, j, v.SetInt(rows[i][j])); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// collisionTime recovers t with sol.At(t) == o.At(t).
//
// Per axis k, (p_k − P_k) = (V_k − v_k)·t. Axes with V_k == v_k carry no
// information about t but require p_k == P_k. If every axis is such, the two
// paths coincide for all t and the collision is reported at t = 0.
func collisionTime(sol Solution, o Observation) (*big.Rat, error) {
	var t *big.Rat
	relPos, relVel, cand := new(big.Rat), new(big.Rat), new(big.Rat)
	for k := 0; k < 3; k++ {
		relPos.SetInt64(o.Position.component(k))
		relPos.Sub(relPos, sol.Position[k])
		relVel.SetInt64(o.Velocity.component(k))
		relVel.Sub(sol.Velocity[k], relVel)

		if relVel.Sign() == 0 {
			if relPos.Sign() != 0 {
				return nil, fmt.Errorf("axis %d: parallel and offset by %s: %w", k, relPos.RatString(), ErrInconsistentSolution)
			}
			continue
		}
		cand.Quo(relPos, relVel)
		if t == nil {
			t = new(big.Rat).Set(cand)
			continue
		}
		if t.Cmp(cand) != 0 {
			return nil, fmt.Errorf("axis %d: time %s disagrees with %s: %w", k, cand.RatString(), t.RatString(), ErrInconsistentSolution)
		}
	}
	if t == nil {
		t = new(big.Rat)
	}
	return t, nil
}
