// SPDX-License-Identifier: MIT

package det_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvdet/det"
)

// ExampleDeterminant expands a 4×4 integer matrix along row 0.
//
// Scenario:
//
//	| 1 4 2 3 |
//	| 0 1 4 4 |
//	|-1 0 4 4 |
//	| 2 0 4 1 |
//
// Integer input keeps the result exact: no division is ever performed.
func ExampleDeterminant() {
	m := [][]int{
		{1, 4, 2, 3},
		{0, 1, 4, 4},
		{-1, 0, 4, 4},
		{2, 0, 4, 1},
	}
	d, err := det.Determinant(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output: 18
}

// ExampleDeterminant_nonSquare shows the shape error family.
func ExampleDeterminant_nonSquare() {
	_, err := det.Determinant([][]int{{1, 2, 3}, {4, 5, 6}})
	fmt.Println(err)
	fmt.Println(errors.Is(err, det.ErrBadShape))
	// Output:
	// Determinant: det: invalid shape: matrix is not square
	// true
}

// ExampleDeterminant_parallel fans the top-level minors out on two goroutines.
func ExampleDeterminant_parallel() {
	m := [][]int64{
		{2, -3, 1},
		{2, 0, -1},
		{1, 4, 5},
	}
	d, _ := det.Determinant(m, det.WithParallel(2), det.WithMaxOrder(8))
	fmt.Println(d)
	// Output: 49
}

// ExampleMinor removes row 1 and column 1.
func ExampleMinor() {
	m := [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	sub, _ := det.Minor(m, 1, 1)
	fmt.Println(sub)
	// Output: [[1 3] [7 9]]
}

// ExampleCofactor prints the cofactor matrix of a 2×2 input.
func ExampleCofactor() {
	m := [][]int{{1, 2}, {3, 4}}
	for i := range m {
		row := make([]int, len(m))
		for j := range m[i] {
			row[j], _ = det.Cofactor(m, i, j)
		}
		fmt.Println(row)
	}
	// Output:
	// [4 -3]
	// [-2 1]
}

// ExampleDeterminantLU uses pivoting elimination on a float matrix.
func ExampleDeterminantLU() {
	m := [][]float64{
		{0, 2, 1},
		{0, 0, 3},
		{4, 0, 0},
	}
	d, _ := det.DeterminantLU(m)
	fmt.Printf("%.1f\n", d)
	// Output: 24.0
}

// ExampleDeterminantAny decodes a matrix from JSON and validates element types.
func ExampleDeterminantAny() {
	dec := json.NewDecoder(strings.NewReader(`[[1,2],[3,4]]`))
	dec.UseNumber()
	var m [][]any
	if err := dec.Decode(&m); err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := det.DeterminantAny(m)
	fmt.Println(d)

	_, err := det.DeterminantAny([][]any{{1, "two"}, {3, 4}})
	fmt.Println(errors.Is(err, det.ErrNonNumeric))
	// Output:
	// -2
	// true
}
