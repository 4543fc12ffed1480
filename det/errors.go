// SPDX-License-Identifier: MIT
// Package det: sentinel error set.
// Every public entry point returns one of these sentinels, optionally wrapped
// with an operation tag. Tests MUST match them via errors.Is.

package det

import (
	"errors"
	"fmt"
)

// ERROR FAMILIES
// --------------
// Shape: ErrBadShape is the root; ErrEmptyMatrix, ErrNonSquare and
// ErrRaggedRows wrap it, so errors.Is(err, ErrBadShape) matches any of them.
// Type: ErrNonNumeric (untyped input only).
// Index: ErrOutOfRange (Minor/Cofactor).
// Policy: ErrTooLarge, ErrStrategyUnsupported (options).

var (
	// ErrBadShape is the root of every shape violation.
	ErrBadShape = errors.New("det: invalid shape")

	// ErrEmptyMatrix is returned for a matrix with zero rows or zero columns.
	ErrEmptyMatrix = fmt.Errorf("%w: empty matrix", ErrBadShape)

	// ErrNonSquare is returned when rows agree in length but that length
	// differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrBadShape)

	// ErrRaggedRows is returned when rows differ in length from each other.
	ErrRaggedRows = fmt.Errorf("%w: ragged rows", ErrBadShape)

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("det: index out of range")

	// ErrNonNumeric indicates an element that is not a Go numeric kind.
	ErrNonNumeric = errors.New("det: non-numeric element")

	// ErrTooLarge is returned when the matrix order exceeds WithMaxOrder.
	ErrTooLarge = errors.New("det: matrix order exceeds configured limit")

	// ErrStrategyUnsupported is returned when the selected strategy cannot
	// serve the element type (e.g. StrategyLU on integers).
	ErrStrategyUnsupported = errors.New("det: strategy unsupported for element type")
)

// detErrorf wraps err with the operation tag.
func detErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Operation tags used in wrapped errors.
const (
	opDeterminant    = "Determinant"
	opDeterminantLU  = "DeterminantLU"
	opDeterminantAny = "DeterminantAny"
	opMinor          = "Minor"
	opCofactor       = "Cofactor"
)
