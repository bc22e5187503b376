// Package matrix: shared validation checks.
// Each validator returns a sentinel wrapped with its own tag so call sites
// can match with errors.Is and still read where the check failed.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateBinary checks that every cell of m is exactly 0 or 1.
// Assumes m is non-nil.
// Complexity: O(r*c).
func ValidateBinary(m *Dense) error {
	for idx, v := range m.data {
		if v != 0 && v != 1 {
			i, j := idx/m.c, idx%m.c
			return validatorErrorf("ValidateBinary", fmt.Errorf("cell (%d,%d)=%g: %w", i, j, v, ErrNonBinary))
		}
	}

	return nil
}

// ValidateNoNaN checks that no cell of m is NaN. Infinities are allowed.
// Assumes m is non-nil.
// Complexity: O(r*c).
func ValidateNoNaN(m *Dense) error {
	for idx, v := range m.data {
		if math.IsNaN(v) {
			return validatorErrorf("ValidateNoNaN", fmt.Errorf("cell (%d,%d): %w", idx/m.c, idx%m.c, ErrNaN))
		}
	}

	return nil
}
