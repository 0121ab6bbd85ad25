// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared across the package.
// Errors live in errors.go; the Dense implementation lives in dense.go.
package matrix

// Matrix represents a two-dimensional mutable array of T values.
// It is the contract between the algebra kernels (Mul, Pow, Map, Zip,
// Transpose) and any backing store; Dense is the canonical implementation.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}

// Number constrains the element types covered by the built-in arithmetic
// semiring binding: every integer kind plus the two float kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
