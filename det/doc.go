// Package det computes determinants of small square matrices by recursive
// cofactor (Laplace) expansion, with an O(n³) elimination kernel alongside.
//
// 🚀 What is cofactor expansion?
//
//	det(A) = Σ_j (−1)^j · a[0][j] · det(M(0,j))
//
//	where M(0,j) is the minor of A: A with row 0 and column j deleted.
//	Base cases: det([[a]]) = a, det([[a,b],[c,d]]) = a·d − b·c.
//
// ✨ Key features:
//   - generic over every Go integer and float type (Number)
//   - exact on integers: only +, −, · are used, never division
//   - input is read-only; every minor is a fresh structural copy
//   - optional bounded fan-out of the top-level minors (WithParallel)
//   - DeterminantLU: partial-pivoting elimination for larger float matrices
//   - DeterminantAny: untyped [][]any input (e.g. decoded JSON) with type checks
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvdet/det"
//
//	d, err := det.Determinant([][]int{
//	  {1, 4, 2, 3},
//	  {0, 1, 4, 4},
//	  {-1, 0, 4, 4},
//	  {2, 0, 4, 1},
//	})
//	// d == 18
//
//	d, err = det.Determinant(big, det.WithParallel(4), det.WithMaxOrder(10))
//
// Errors:
//
//	Shape violations (empty, ragged, non-square) all match ErrBadShape via
//	errors.Is. Untyped input with a non-numeric element yields ErrNonNumeric.
//
// Performance:
//
//   - Determinant (cofactor): Time O(n!), fine up to n ≈ 10.
//   - DeterminantLU:          Time O(n³), Memory O(n²).
//
// See example_test.go for runnable walkthroughs.
package det
