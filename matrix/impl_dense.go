// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *big.Rat with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Never alias caller values: At hands out copies, Set stores copies.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in kernels (see impl_linear_algebra.go): operate on data directly.
//   - Use NewDenseFromInts for literal integer systems; it avoids one Rat allocation per Set call.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//     Every cell is a non-nil *big.Rat owned exclusively by the matrix.
type Dense struct {
	r, c int        // row and column counts (>0)
	data []*big.Rat // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate the buffer and fill it with fresh zero rationals.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	buf := make([]*big.Rat, rows*cols)
	for idx := range buf {
		buf[idx] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromInts builds a Dense from integer row literals.
//
// Inputs:
//   - rows: non-empty, rectangular (every row has the same non-zero length).
//
// Errors:
//   - ErrBadShape for empty or ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	d, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewDenseFromInts: row %d: %w", i, ErrBadShape)
		}
		for j = 0; j < cols; j++ {
			d.data[i*cols+j].SetInt64(rows[i][j])
		}
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf converts (row,col) into a flat offset, or fails with ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
//
// Errors:
//   - ErrNilMatrix when the receiver is nil.
//   - ErrOutOfRange when indices are outside [0,Rows)×[0,Cols).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	if m == nil {
		return nil, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
//
// Errors:
//   - ErrNilMatrix when the receiver is nil.
//   - ErrNilValue when v is nil.
//   - ErrOutOfRange when indices are outside [0,Rows)×[0,Cols).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy; no cell is shared with the receiver.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

// cloneDense is the typed variant of Clone used by kernels.
func (m *Dense) cloneDense() *Dense {
	buf := make([]*big.Rat, len(m.data))
	for idx, v := range m.data {
		buf[idx] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String renders the matrix row by row, e.g. "[1, 1/2]\n[0, 3]\n".
// Integral values print without a denominator.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// denseOf returns a private *Dense copy of any Matrix so kernels can work on
// the flat buffer without touching the caller's matrix.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v *big.Rat
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if v == nil {
				return nil, denseErrorf(ctxAt, i, j, ErrNilValue)
			}
			out.data[i*out.c+j].Set(v)
		}
	}

	return out, nil
}
