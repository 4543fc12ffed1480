// SPDX-License-Identifier: MIT

package det

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
)

// int64Headroom bounds the permanent estimate below which the int64 kernel
// is safe. One bit of margin absorbs float64 rounding in fitsInt64.
const int64Headroom = float64(1 << 62)

// DeterminantAny computes the determinant of an untyped matrix, such as one
// decoded from JSON into [][]any.
// Implementation:
//   - Stage 1: validate shape (same sentinels as Determinant).
//   - Stage 2: classify every element; any non-numeric value fails fast.
//   - Stage 3: all-integer input runs the exact int64 kernel when no
//     intermediate can overflow, and a math/big expansion otherwise (rounded
//     once to float64); anything else runs in float64. Options are forwarded
//     to Determinant; the math/big path honors WithMaxOrder only.
//
// Accepted element kinds: every Go int/uint/float kind and json.Number.
// A uint above math.MaxInt64 or a json.Number that is not an int64 moves the
// whole matrix to the float64 path.
//
// Errors:
//   - ErrEmptyMatrix, ErrRaggedRows, ErrNonSquare (all match ErrBadShape).
//   - ErrNonNumeric, wrapped with the offending position.
//   - Any error from Determinant for the chosen path.
func DeterminantAny(m [][]any, opts ...Option) (float64, error) {
	n, err := validateSquare(m)
	if err != nil {
		return 0, detErrorf(opDeterminantAny, err)
	}

	ints := make([][]int64, n)
	floats := make([][]float64, n)
	exact := gatherOptions(opts...).strategy == StrategyCofactor
	var (
		i, j  int
		iv    int64
		fv    float64
		isInt bool
	)
	for i = 0; i < n; i++ {
		ints[i] = make([]int64, n)
		floats[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			iv, fv, isInt, err = classify(m[i][j])
			if err != nil {
				return 0, detErrorf(opDeterminantAny, fmt.Errorf("element (%d,%d) of type %T: %w", i, j, m[i][j], err))
			}
			ints[i][j], floats[i][j] = iv, fv
			exact = exact && isInt
		}
	}

	if exact {
		if err = validateOrder(n, gatherOptions(opts...)); err != nil {
			return 0, detErrorf(opDeterminantAny, err)
		}
		if !fitsInt64(ints) {
			return expandBigFloat(ints), nil
		}
		d, err := Determinant(ints, opts...)
		if err != nil {
			return 0, detErrorf(opDeterminantAny, err)
		}
		return float64(d), nil
	}

	d, err := Determinant(floats, opts...)
	if err != nil {
		return 0, detErrorf(opDeterminantAny, err)
	}

	return d, nil
}

// classify returns v as int64 (when it is an integer that fits) and float64.
func classify(v any) (int64, float64, bool, error) {
	switch x := v.(type) {
	case int:
		return int64(x), float64(x), true, nil
	case int8:
		return int64(x), float64(x), true, nil
	case int16:
		return int64(x), float64(x), true, nil
	case int32:
		return int64(x), float64(x), true, nil
	case int64:
		return x, float64(x), true, nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int64(x), float64(x), true, nil
	case uint16:
		return int64(x), float64(x), true, nil
	case uint32:
		return int64(x), float64(x), true, nil
	case uint64:
		return fromUint(x)
	case float32:
		return 0, float64(x), false, nil
	case float64:
		return 0, x, false, nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, float64(n), true, nil
		}
		f, err := x.Float64()
		if err != nil {
			return 0, 0, false, ErrNonNumeric
		}
		return 0, f, false, nil
	default:
		return 0, 0, false, ErrNonNumeric
	}
}

// fromUint keeps u on the exact path only when it fits in int64.
func fromUint(u uint64) (int64, float64, bool, error) {
	if u > math.MaxInt64 {
		return 0, float64(u), false, nil
	}

	return int64(u), float64(u), true, nil
}

// fitsInt64 reports whether cofactor expansion of m stays inside int64.
// Every product and partial sum the expansion forms, at any depth, is bounded
// by perm(|m|) ≤ Π_i Σ_j |m[i][j]|.
func fitsInt64(m [][]int64) bool {
	bound := 1.0
	for _, row := range m {
		var s float64
		for _, v := range row {
			s += math.Abs(float64(v))
		}
		bound *= s
		if bound >= int64Headroom {
			return false
		}
	}

	return true
}

// expandBigFloat runs the exact expansion in math/big and rounds once.
func expandBigFloat(m [][]int64) float64 {
	b := make([][]*big.Int, len(m))
	for i, row := range m {
		b[i] = make([]*big.Int, len(row))
		for j, v := range row {
			b[i][j] = big.NewInt(v)
		}
	}
	f, _ := new(big.Float).SetInt(expandBig(b)).Float64()

	return f
}

// expandBig mirrors expand over *big.Int. Minors share the parent's
// *big.Int values, which are only read.
func expandBig(m [][]*big.Int) *big.Int {
	switch len(m) {
	case 1:
		return new(big.Int).Set(m[0][0])
	case 2:
		ad := new(big.Int).Mul(m[0][0], m[1][1])
		bc := new(big.Int).Mul(m[0][1], m[1][0])
		return ad.Sub(ad, bc)
	}

	total, term := new(big.Int), new(big.Int)
	for j, a := range m[0] {
		term.Mul(a, expandBig(minorOf(m, 0, j)))
		if j%2 == 0 {
			total.Add(total, term)
		} else {
			total.Sub(total, term)
		}
	}

	return total
}
