// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an
// operation tag) and tests match them via errors.Is.
// No exported function panics on user-triggered error conditions; panics are
// reserved for nonsensical Option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping.
// Wrap with matrixErrorf(op, err) at the detection site; callers still use
// errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> storage mismatch -> index -> NaN/Inf -> singular pivot.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates that declared dimensions disagree with the
	// backing storage (row count or a row length), or that two operands differ.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index (or range) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a row is asked to be descaled by a zero pivot.
	ErrSingular = errors.New("matrix: zero pivot")
)

// Operation tags for uniform error wrapping.
const (
	opSwapRows   = "SwapRows"
	opDescaleRow = "DescaleRow"
	opReduceRows = "ReduceRows"
	opReduce     = "Reduce"
	opRREF       = "RREF"
	opRREFRows   = "RREFRows"
	opRank       = "Rank"
	opFromRows   = "NewDenseFromRows"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
