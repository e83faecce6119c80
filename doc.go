// Package hailrock finds the one throw that hits every hailstone.
//
// What is in here?
//
//	Given hailstones that move in straight lines at constant integer
//	velocity, find a rock position and velocity such that the rock meets
//	each hailstone at some moment t ≥ 0. The answer is computed exactly,
//	with no floating point and no external solver.
//
// Packages:
//
//	hailstone/    data model, parser, Solve, XY crossing counter
//	matrix/       exact *big.Rat dense matrices (Solve, Rank, MatVec)
//	cmd/hailrock  prints the three result lines for the reference input
//
// Quick example:
//
//	sol, err := hailstone.Solve(hailstone.SampleObservations())
//	// sol.PositionSum() == 757031940316991
//
//	go get github.com/katalvlaran/hailrock
package hailrock
