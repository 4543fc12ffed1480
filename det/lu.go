// SPDX-License-Identifier: MIT

package det

import "math"

// zeroPivot marks an exactly-zero pivot column; elimination stops there and
// the determinant is 0.
const zeroPivot = 0.0

// DeterminantLU computes det(m) by LU elimination with partial pivoting.
// Implementation:
//   - Stage 1: validate m (non-empty, square); copy it into flat row-major storage.
//   - Stage 2: for k=0..n-1 pick the row with the largest |a[i][k]|, i ≥ k,
//     swap it into place (flipping the sign), and eliminate below it.
//   - Stage 3: det = sign · Π U[k][k].
//
// Behavior highlights:
//   - m is never modified.
//   - Singular input returns 0, nil: a zero pivot column is a result, not an error.
//
// Inputs:
//   - m: square float64 matrix of order n ≥ 1.
//
// Errors:
//   - ErrEmptyMatrix, ErrRaggedRows, ErrNonSquare (all match ErrBadShape).
//
// Determinism:
//   - Fixed k→i→j loop order; ties in pivot magnitude keep the lowest row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Results agree with Determinant up to floating-point rounding; use
//     Determinant on integer matrices when an exact value is required.
func DeterminantLU(m [][]float64) (float64, error) {
	n, err := validateSquare(m)
	if err != nil {
		return 0, detErrorf(opDeterminantLU, err)
	}

	// Private working copy, row-major.
	a := make([]float64, n*n)
	var i, j, k int // loop iterators
	for i = 0; i < n; i++ {
		copy(a[i*n:(i+1)*n], m[i])
	}

	det := 1.0
	var p int // pivot row
	var best, v, f float64
	var baseK, baseI int
	for k = 0; k < n; k++ {
		// Partial pivot: largest magnitude in column k at or below row k.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == zeroPivot {
			return 0, nil
		}
		if p != k {
			swapRowsFlat(a, n, p, k)
			det = -det
		}

		baseK = k * n
		det *= a[baseK+k]

		// Eliminate below the pivot; columns < k are already zero.
		for i = k + 1; i < n; i++ {
			baseI = i * n
			f = a[baseI+k] / a[baseK+k]
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[baseI+j] -= f * a[baseK+j]
			}
		}
	}

	return det, nil
}

// swapRowsFlat exchanges rows r and s of an n-column flat matrix in place.
func swapRowsFlat(a []float64, n, r, s int) {
	rr, ss := a[r*n:(r+1)*n], a[s*n:(s+1)*n]
	for j := range rr {
		rr[j], ss[j] = ss[j], rr[j]
	}
}
