// SPDX-License-Identifier: MIT

// Package matrix: public Matrix interface over exact rationals.
// Errors live in errors.go, validators in validators.go.
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of exact rational values.
//
// Ownership:
//   - At returns a fresh *big.Rat; mutating it never affects the matrix.
//   - Set copies v; the caller may reuse v afterwards.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1) plus the copy of the value.
	At(i, j int) (*big.Rat, error)

	// Set assigns a copy of v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNilValue if v is nil.
	// Complexity: O(1) plus the copy of the value.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
