// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or a flattening source whose length does not equal
	// rows*cols). Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) or a submatrix
	// region is outside valid bounds. Public indexers (At/Set) MUST return
	// this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Zip over different shapes, or multiplication where
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (exponentiation).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged indicates a row-of-rows construction or parse source whose
	// rows have differing lengths; matrices are rectangular by invariant.
	ErrRagged = errors.New("matrix: rows have differing lengths")

	// ErrBadExponent is returned by exponentiation for exponents below 1.
	// Exponent 0 is deliberately undefined: a multiplicative identity
	// matrix is not derivable from a (combine, reduce, identity) triple
	// for arbitrary semirings.
	ErrBadExponent = errors.New("matrix: exponent must be >= 1")

	// ErrNoSemiring is returned by the registry-bound entry points when no
	// binding is registered for the element type.
	ErrNoSemiring = errors.New("matrix: no semiring registered for element type")

	// ErrNilOp indicates a Semiring (or explicit triple) with a nil Combine
	// or Reduce function.
	ErrNilOp = errors.New("matrix: nil semiring operation")

	// ErrSyntax is returned by typed parsing when a token cannot be
	// converted to the element type.
	ErrSyntax = errors.New("matrix: malformed input")
)
