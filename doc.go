// Package lvdet is a small numeric playground around one classic routine:
// the determinant of a square matrix.
//
// 🚀 What is lvdet?
//
//	A zero-cgo, generics-based library that brings together:
//		• Cofactor (Laplace) expansion: exact, recursive, textbook
//		• Minor & cofactor extraction without aliasing the input
//		• LU elimination with partial pivoting for larger float inputs
//		• Untyped input checking for data decoded at runtime
//
// Under the hood, everything lives in one subpackage:
//
//	det/ — Determinant, Minor, Cofactor, DeterminantLU, DeterminantAny
//
// Quick ASCII example:
//
//	| 1 2 |
//	| 3 4 |  →  1·4 − 2·3 = −2
//
//	go get github.com/katalvlaran/lvdet
package lvdet
