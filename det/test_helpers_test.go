// SPDX-License-Identifier: MIT

package det_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// identity returns I_n.
func identity[T int | int64 | float64](n int) [][]T {
	m := make([][]T, n)
	for i := range m {
		m[i] = make([]T, n)
		m[i][i] = 1
	}

	return m
}

// randomInts returns an n×n matrix with entries in [-9, 9].
func randomInts(rng *rand.Rand, n int) [][]int64 {
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
		for j := range m[i] {
			m[i][j] = int64(rng.Intn(19) - 9)
		}
	}

	return m
}

// randomFloats returns an n×n matrix with entries in [-1, 1).
func randomFloats(rng *rand.Rand, n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = 2*rng.Float64() - 1
		}
	}

	return m
}

// cloneRows deep-copies m.
func cloneRows[T any](m [][]T) [][]T {
	out := make([][]T, len(m))
	for i := range m {
		out[i] = append([]T(nil), m[i]...)
	}

	return out
}

// swapped returns a copy of m with rows r and s exchanged.
func swapped[T any](m [][]T, r, s int) [][]T {
	out := cloneRows(m)
	out[r], out[s] = out[s], out[r]

	return out
}

// scaled returns a copy of m with row r multiplied by k.
func scaled(m [][]int64, r int, k int64) [][]int64 {
	out := cloneRows(m)
	for j := range out[r] {
		out[r][j] *= k
	}

	return out
}

// gonumDet is the reference determinant used for cross-checks.
func gonumDet(t *testing.T, m [][]float64) float64 {
	t.Helper()
	n := len(m)
	flat := make([]float64, 0, n*n)
	for _, row := range m {
		flat = append(flat, row...)
	}

	return mat.Det(mat.NewDense(n, n, flat))
}

// toFloats converts an integer matrix for float kernels.
func toFloats(m [][]int64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = make([]float64, len(m[i]))
		for j, v := range m[i] {
			out[i][j] = float64(v)
		}
	}

	return out
}

// knownFourByFour is a 4×4 integer matrix with det = 18.
var knownFourByFour = [][]int64{
	{1, 4, 2, 3},
	{0, 1, 4, 4},
	{-1, 0, 4, 4},
	{2, 0, 4, 1},
}
