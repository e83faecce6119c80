// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with an operation tag through
// matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> singular -> inconsistent.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// or when row literals passed to a constructor are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., MatVec with len(x) != Cols, or Solve with len(b) != Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilValue indicates that a nil *big.Rat was passed where a value is required.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrUnderdetermined signals that Solve received fewer equations than unknowns.
	ErrUnderdetermined = errors.New("matrix: fewer rows than columns")

	// ErrSingular is returned when elimination finds a column without a pivot,
	// i.e. the coefficient matrix does not have full column rank.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInconsistent is returned when an over-determined system reduces to a
	// row 0 = c with c != 0 (no exact solution exists).
	ErrInconsistent = errors.New("matrix: inconsistent system")
)
