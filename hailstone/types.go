// SPDX-License-Identifier: MIT

// Package hailstone defines the data model: integer vectors, observations of
// moving hailstones and the solved rock trajectory.
package hailstone

import (
	"fmt"
	"math/big"
)

// Vec3 is an integer 3D vector. Arithmetic that can overflow int64 at the
// ~10^15 input scale (cross products, sums of products) is done in *big.Int.
type Vec3 struct {
	X, Y, Z int64
}

// String renders "x, y, z", the input-file notation.
func (v Vec3) String() string {
	return fmt.Sprintf("%d, %d, %d", v.X, v.Y, v.Z)
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// ints returns the components as fresh *big.Int values.
func (v Vec3) ints() [3]*big.Int {
	return [3]*big.Int{big.NewInt(v.X), big.NewInt(v.Y), big.NewInt(v.Z)}
}

// component returns the k-th component (0=X, 1=Y, 2=Z).
func (v Vec3) component(k int) int64 {
	switch k {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Parallel reports whether v × o == 0. A zero vector is parallel to everything.
func (v Vec3) Parallel(o Vec3) bool {
	c := crossInts(v.ints(), o.ints())
	return c[0].Sign() == 0 && c[1].Sign() == 0 && c[2].Sign() == 0
}

// crossInts returns a × b computed exactly.
func crossInts(a, b [3]*big.Int) [3]*big.Int {
	l, r := new(big.Int), new(big.Int)
	var out [3]*big.Int
	out[0] = new(big.Int).Sub(l.Mul(a[1], b[2]), r.Mul(a[2], b[1]))
	out[1] = new(big.Int).Sub(l.Mul(a[2], b[0]), r.Mul(a[0], b[2]))
	out[2] = new(big.Int).Sub(l.Mul(a[0], b[1]), r.Mul(a[1], b[0]))
	return out
}

// subInts returns a − b.
func subInts(a, b [3]*big.Int) [3]*big.Int {
	return [3]*big.Int{
		new(big.Int).Sub(a[0], b[0]),
		new(big.Int).Sub(a[1], b[1]),
		new(big.Int).Sub(a[2], b[2]),
	}
}

// Observation is one hailstone: a starting position and a constant velocity
// per unit time. Values are immutable once constructed.
type Observation struct {
	Position Vec3
	Velocity Vec3
}

// String renders "px, py, pz @ vx, vy, vz", the form accepted by ParseLine.
func (o Observation) String() string {
	return o.Position.String() + " @ " + o.Velocity.String()
}

// At returns the exact position at time t.
func (o Observation) At(t *big.Rat) [3]*big.Rat {
	var out [3]*big.Rat
	for k := 0; k < 3; k++ {
		p := new(big.Rat).SetInt64(o.Position.component(k))
		v := new(big.Rat).SetInt64(o.Velocity.component(k))
		out[k] = p.Add(p, v.Mul(v, t))
	}
	return out
}

// Solution is the thrown rock: an exact position and velocity, plus the
// collision time with every observation passed to Solve (same order).
//
// Invariant: Position + Velocity*Times[i] == obs[i].Position + obs[i].Velocity*Times[i].
type Solution struct {
	Position [3]*big.Rat
	Velocity [3]*big.Rat
	Times    []*big.Rat
}

// At returns the rock's exact position at time t.
func (s Solution) At(t *big.Rat) [3]*big.Rat {
	var out [3]*big.Rat
	for k := 0; k < 3; k++ {
		step := new(big.Rat).Mul(s.Velocity[k], t)
		out[k] = step.Add(step, s.Position[k])
	}
	return out
}

// PositionSum returns x + y + z of the rock's starting position.
func (s Solution) PositionSum() *big.Rat { return sum3(s.Position) }

// VelocitySum returns vx + vy + vz of the rock's velocity.
func (s Solution) VelocitySum() *big.Rat { return sum3(s.Velocity) }

// TruncatedPositionSum truncates each position component toward zero and sums
// the resulting integers. For integral solutions it equals PositionSum.
func (s Solution) TruncatedPositionSum() *big.Int {
	total := new(big.Int)
	q := new(big.Int)
	for _, c := range s.Position {
		total.Add(total, q.Quo(c.Num(), c.Denom()))
	}
	return total
}

// String renders "px, py, pz @ vx, vy, vz" with rationals in lowest terms.
func (s Solution) String() string {
	return fmt.Sprintf("%s, %s, %s @ %s, %s, %s",
		s.Position[0].RatString(), s.Position[1].RatString(), s.Position[2].RatString(),
		s.Velocity[0].RatString(), s.Velocity[1].RatString(), s.Velocity[2].RatString())
}

func sum3(v [3]*big.Rat) *big.Rat {
	out := new(big.Rat)
	for _, c := range v {
		out.Add(out, c)
	}
	return out
}
