// SPDX-License-Identifier: MIT
// Package: det
//
// Purpose:
//   - Single source of truth for shape checks shared by every kernel.
//   - Return plain sentinels; call sites wrap them with their op tag.
//
// Determinism & Performance:
//   - Pure, allocation-free, O(n) over rows.

package det

// validateSquare returns the order n of m, or a shape sentinel.
//
// Order of checks (documented, enforced in tests):
// no rows → ragged → zero width → non-square. Rows of unequal length are
// ragged even when one of them is empty; [][]T{{}} and [][]T{{}, {}} are empty.
func validateSquare[T any](m [][]T) (int, error) {
	n := len(m)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}

	// Rows must agree with each other before we compare against n.
	width := len(m[0])
	for i := 1; i < n; i++ {
		if len(m[i]) != width {
			return 0, ErrRaggedRows
		}
	}
	if width == 0 {
		return 0, ErrEmptyMatrix
	}
	if width != n {
		return 0, ErrNonSquare
	}

	return n, nil
}

// validateIndex checks 0 <= row, col < n.
func validateIndex(n, row, col int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateOrder enforces the WithMaxOrder guard.
func validateOrder(n int, o Options) error {
	if o.maxOrder > 0 && n > o.maxOrder {
		return ErrTooLarge
	}

	return nil
}
