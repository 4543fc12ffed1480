// SPDX-License-Identifier: MIT

package det

// Determinant computes det(m) by recursive Laplace expansion along row 0.
// Implementation:
//   - Stage 1: validate shape (empty → ragged → non-square) and options.
//   - Stage 2: dispatch on strategy; cofactor path runs serial or parallel.
//
// Behavior highlights:
//   - 1×1 and 2×2 are explicit base cases.
//   - Terms are summed in ascending column order in every mode.
//   - m is never modified; each recursive call receives a fresh minor.
//
// Inputs:
//   - m: square matrix of order n ≥ 1.
//   - opts: WithStrategy, WithParallel, WithMaxOrder.
//
// Returns:
//   - T: the determinant; exact for integer T (no division is performed).
//
// Errors:
//   - ErrEmptyMatrix, ErrRaggedRows, ErrNonSquare (all match ErrBadShape).
//   - ErrTooLarge when WithMaxOrder is exceeded.
//   - ErrStrategyUnsupported for StrategyLU on integer T.
//
// Complexity:
//   - Cofactor: Time O(n!), Space O(n^2) per recursion level.
//   - LU: Time O(n^3), Space O(n^2).
func Determinant[T Number](m [][]T, opts ...Option) (T, error) {
	n, err := validateSquare(m)
	if err != nil {
		return 0, detErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	if err = validateOrder(n, o); err != nil {
		return 0, detErrorf(opDeterminant, err)
	}

	if o.strategy == StrategyLU {
		return determinantViaLU(m)
	}
	if o.parallel > 0 && n > 2 {
		return expandParallel(m, o.parallel), nil
	}

	return expand(m), nil
}

// expand is the unchecked recursive kernel. m must be square with n ≥ 1.
func expand[T Number](m [][]T) T {
	switch len(m) {
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}

	var total T
	for j, a := range m[0] {
		term := a * expand(minorOf(m, 0, j))
		if j%2 == 0 {
			total += term
		} else {
			total -= term
		}
	}

	return total
}

// determinantViaLU routes float element types through DeterminantLU.
func determinantViaLU[T Number](m [][]T) (T, error) {
	if !isFloat[T]() {
		return 0, detErrorf(opDeterminant, ErrStrategyUnsupported)
	}

	n := len(m)
	f := make([][]float64, n)
	for i := range m {
		f[i] = make([]float64, n)
		for j, v := range m[i] {
			f[i][j] = float64(v)
		}
	}
	d, err := DeterminantLU(f)
	if err != nil {
		return 0, detErrorf(opDeterminant, err)
	}

	return T(d), nil
}

// isFloat reports whether T is a floating-point type.
// 1/2 truncates to 0 for every integer kind and stays 0.5 for floats.
func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}
