// Package hailstone finds the single straight trajectory that collides with
// every one of a set of hailstones moving at constant velocity.
//
// What is solved?
//
//	Each hailstone i starts at p_i and moves with velocity v_i. We want one
//	rock, thrown from P with velocity V, such that for every i there is a
//	time t_i ≥ 0 with P + V·t_i = p_i + v_i·t_i. Three hailstones in
//	general position fix the answer uniquely.
//
// Key features:
//   - exact arithmetic (math/big) at the 10^15 coordinate scale;
//   - linear reformulation solved with the matrix package;
//   - every collision time returned and validated;
//   - a forward-path XY crossing counter (CountCrossingsXY);
//   - a parser for "px, py, pz @ vx, vy, vz" input.
//
// Usage:
//
//	import "github.com/katalvlaran/hailrock/hailstone"
//
//	sol, err := hailstone.Solve(hailstone.SampleObservations())
//	if err != nil {
//	  // errors.Is(err, hailstone.ErrDegenerateInput) or ErrInconsistentSolution
//	}
//	fmt.Println(sol.PositionSum().RatString())
//
// See example_test.go for runnable walkthroughs.
package hailstone
