// Package genmat is a small toolkit for generic two-dimensional matrices
// whose multiplication and exponentiation are parameterized over an
// abstract algebraic structure — a (combine, reduce, identity) triple.
//
// 🚀 What is genmat?
//
//	A type-parameterized matrix container with pluggable semiring algebra:
//		• Dense[T]: row-major storage with safe, bounds-checked accessors
//		• Entrywise ops: Map, Zip, Transpose, Submatrix extraction
//		• Semiring[T]: combine/reduce/identity triples with a per-type registry
//		• MulFunc / MulSemiring / Mul: generic fold-based multiplication
//		• PowSemiring / Pow: exponentiation by repeated squaring, O(log e)
//		• grid: coordinate validity and Conn4/Conn8 neighbor queries
//
// ✨ Why choose genmat?
//
//   - One multiplication kernel serves ordinary arithmetic, boolean
//     reachability, and tropical (min-plus) shortest paths alike
//   - Rock-solid guarantees — sentinel errors, no panics on user input,
//     freshly allocated results with no hidden aliasing
//   - Pure Go library core — no cgo, no hidden deps
//
// Everything lives under two subpackages:
//
//	matrix/ — Dense[T], entrywise ops, semiring registry, Mul & Pow
//	grid/   — neighbor/validity queries over matrix coordinates
//
// Quick taste:
//
//	m, _ := matrix.FromRows([][]int{{1, 1}, {0, 1}})
//	p, _ := matrix.Pow(m, 10) // [[1,10],[0,1]] under the integer binding
//
// See the package docs of matrix and grid for details.
package genmat
