// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Provide a single, canonical source of truth for shape/nil/index checks.
//   - Keep operators and codecs minimal by delegating guard logic here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap once more with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are both non-negative.
// Zero-sized shapes are legal for sparse storage (nothing to store).
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// MaxDenseCells caps rows*cols for anything that materialises every cell
// (Dense, ToDense, FromView, ToGonum): 2^28 cells, 2 GiB of int64.
// Sparse storage has no such cap.
const MaxDenseCells = 1 << 28

// ValidateDenseShape is ValidateShape plus the MaxDenseCells cap. The product is
// checked by division, so shapes whose rows*cols overflows int are rejected too.
// Complexity: O(1).
func ValidateDenseShape(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if rows != 0 && cols > MaxDenseCells/rows {
		return validatorErrorf(fmt.Sprintf("ValidateDenseShape(%d,%d): more than %d cells", rows, cols, MaxDenseCells),
			ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b View) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape
// used by Add and Sub.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible is the composite NotNil(a) → NotNil(b) → a.Cols()==b.Rows().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// inBounds reports whether (row, col) addresses a cell of a rows×cols shape.
func inBounds(rows, cols, row, col int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}
