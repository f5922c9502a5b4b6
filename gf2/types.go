package gf2

import (
	"errors"
	"fmt"
)

// Vector is a single GF(2) row: every entry must be 0 or 1.
type Vector []byte

// Matrix is a GF(2) matrix stored row-major. All rows must share the
// same length (checked by validateRectangular wherever shape matters).
type Matrix [][]byte

// Sentinel errors for gf2 operations.
var (
	// ErrNilMatrix indicates a nil Matrix was passed where one is required.
	ErrNilMatrix = errors.New("gf2: nil matrix")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrRaggedMatrix indicates a Matrix whose rows have differing lengths.
	ErrRaggedMatrix = errors.New("gf2: ragged matrix (rows of differing length)")

	// ErrIndexOutOfRange indicates a row/column index outside a matrix's bounds.
	ErrIndexOutOfRange = errors.New("gf2: index out of range")
)

// gf2Errorf tags err with the operation name that produced it, matching
// the teacher's wrap-with-tag convention for validator errors.
func gf2Errorf(op string, err error) error {
	return fmt.Errorf("gf2.%s: %w", op, err)
}

// validateRectangular checks that every row of m has the same length.
// A nil or zero-row matrix is considered rectangular (vacuously).
func validateRectangular(m Matrix) error {
	if len(m) == 0 {
		return nil
	}
	cols := len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return ErrRaggedMatrix
		}
	}
	return nil
}
