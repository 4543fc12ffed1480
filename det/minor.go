// SPDX-License-Identifier: MIT

package det

// Minor returns the (n-1)×(n-1) submatrix of m obtained by deleting row and col.
// Implementation:
//   - Stage 1: validate m is non-empty and square, then validate indices.
//   - Stage 2: copy every surviving element into fresh storage.
//
// Inputs:
//   - m: square matrix of order n ≥ 2.
//   - row, col: indices in [0, n).
//
// Returns:
//   - [][]T: a structural copy; it shares no backing array with m.
//
// Errors:
//   - ErrEmptyMatrix, ErrRaggedRows, ErrNonSquare (all match ErrBadShape).
//   - ErrBadShape for n == 1 (a 1×1 matrix has no minor).
//   - ErrOutOfRange for invalid indices.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Minor[T Number](m [][]T, row, col int) ([][]T, error) {
	n, err := validateSquare(m)
	if err != nil {
		return nil, detErrorf(opMinor, err)
	}
	if n == 1 {
		return nil, detErrorf(opMinor, ErrBadShape)
	}
	if err = validateIndex(n, row, col); err != nil {
		return nil, detErrorf(opMinor, err)
	}

	return minorOf(m, row, col), nil
}

// Cofactor returns (-1)^(row+col) · det(Minor(m, row, col)).
// A 1×1 matrix has the single cofactor 1 at (0,0) by convention.
//
// Errors: same as Minor and Determinant; WithMaxOrder is checked against the
// order of m, not of its minor.
func Cofactor[T Number](m [][]T, row, col int, opts ...Option) (T, error) {
	n, err := validateSquare(m)
	if err != nil {
		return 0, detErrorf(opCofactor, err)
	}
	if err = validateIndex(n, row, col); err != nil {
		return 0, detErrorf(opCofactor, err)
	}
	if err = validateOrder(n, gatherOptions(opts...)); err != nil {
		return 0, detErrorf(opCofactor, err)
	}
	if n == 1 {
		return 1, nil
	}

	d, err := Determinant(minorOf(m, row, col), opts...)
	if err != nil {
		return 0, detErrorf(opCofactor, err)
	}
	if (row+col)%2 == 1 {
		d = -d
	}

	return d, nil
}

// minorOf is the unchecked kernel behind Minor.
// Caller guarantees m is square with n ≥ 2 and indices are in range.
//
// All rows of the result live in one flat allocation; each row slice is
// capped so an append on it can never spill into its neighbour.
func minorOf[T any](m [][]T, row, col int) [][]T {
	n := len(m)
	k := n - 1
	data := make([]T, k*k)
	out := make([][]T, k)

	var i, r int // source row, destination row
	var base int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		base = r * k
		copy(data[base:base+col], m[i][:col])
		copy(data[base+col:base+k], m[i][col+1:])
		out[r] = data[base : base+k : base+k]
		r++
	}

	return out
}
