// SPDX-License-Identifier: MIT

// Package det: element constraint and strategy selector.
package det

// Number is the set of element types the engine accepts.
// Every operation the cofactor kernel needs (+, -, *) is defined for all of
// them; no division is ever performed on a Number.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Strategy selects the kernel used by Determinant.
type Strategy int

const (
	// StrategyCofactor expands recursively along row 0 (Laplace).
	// Exact for integer element types. Time O(n!).
	StrategyCofactor Strategy = iota

	// StrategyLU eliminates with partial pivoting in float64. Time O(n^3).
	// Only valid for float element types.
	StrategyLU
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyCofactor:
		return "cofactor"
	case StrategyLU:
		return "lu"
	default:
		return "unknown"
	}
}
