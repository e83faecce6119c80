// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinels wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil, has length n and holds no nil entries.
// Time: O(n). Space: O(1).
func ValidateVecLen(x []*big.Rat, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilValue)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for i := range x {
		if x[i] == nil {
			return validatorErrorf(fmt.Sprintf("ValidateVecLen[%d]", i), ErrNilValue)
		}
	}

	return nil
}

// ValidateTall checks that m has at least as many rows as columns, which is
// the minimum for a unique solution of m·x = b.
//
// Assumes m is not nil.
// Errors: ErrUnderdetermined.
// Complexity: O(1).
func ValidateTall(m Matrix) error {
	if m.Rows() < m.Cols() {
		return validatorErrorf("ValidateTall", ErrUnderdetermined)
	}

	return nil
}

// ValidateSystem is the composite guard for Solve: NotNil → Tall → len(b) == Rows.
func ValidateSystem(a Matrix, b []*big.Rat) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateTall(a); err != nil {
		return err
	}

	return ValidateVecLen(b, a.Rows())
}
