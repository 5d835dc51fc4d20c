// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape checks performed at the
//    boundary, before any elimination kernel runs.
//  - Return plain sentinel errors (wrapped with a validator tag) so call
//    sites can wrap uniformly with their operation tag.
//
// Note:
//  - Kernels in rref.go never validate; everything they rely on is checked here.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures rows >= 1 and cols >= 1.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateRowStorage ensures a holds exactly rows rows of exactly cols entries.
// Dimensions are checked first, so a non-positive count never reaches the
// storage scan.
// Complexity: O(rows).
func ValidateRowStorage(rows, cols int, a [][]float64) error {
	if err := ValidateDims(rows, cols); err != nil {
		return err
	}
	if len(a) != rows {
		return validatorErrorf("ValidateRowStorage", fmt.Errorf("got %d rows, want %d: %w", len(a), rows, ErrDimensionMismatch))
	}
	for i := range a {
		if len(a[i]) != cols {
			return validatorErrorf("ValidateRowStorage", fmt.Errorf("row %d has %d entries, want %d: %w", i, len(a[i]), cols, ErrDimensionMismatch))
		}
	}

	return nil
}

// ValidateRowIndex ensures 0 <= i < m.Rows().
func ValidateRowIndex(m *Dense, i int) error {
	if m == nil {
		return validatorErrorf("ValidateRowIndex", ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return validatorErrorf("ValidateRowIndex", fmt.Errorf("row %d of %d: %w", i, m.r, ErrOutOfRange))
	}

	return nil
}
