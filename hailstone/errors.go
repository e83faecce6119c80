// SPDX-License-Identifier: MIT

package hailstone

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; messages carry the "hailstone:" prefix.
var (
	// ErrDegenerateInput is returned when the observations cannot pin down a
	// unique trajectory: fewer than three of them, all velocities parallel, or
	// a rank-deficient linear system.
	ErrDegenerateInput = errors.New("hailstone: degenerate input")

	// ErrInconsistentSolution is returned when the solved trajectory fails
	// validation: contradictory collision times, a negative time, or an
	// observation the rock never meets.
	ErrInconsistentSolution = errors.New("hailstone: inconsistent solution")

	// ErrBadFormat marks an input line that is not "px, py, pz @ vx, vy, vz".
	ErrBadFormat = errors.New("hailstone: bad input format")

	// ErrBadTestArea is returned by CountCrossingsXY when lo > hi.
	ErrBadTestArea = errors.New("hailstone: test area lower bound exceeds upper bound")
)

// hailErrorf wraps err with an operation tag, keeping errors.Is working.
func hailErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
