// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exponentiation of a square matrix by repeated squaring, built atop
//     the generic multiplication kernel.
//
// Recursion structure (e >= 1):
//   - e == 1       → the operand itself (no copy; the result aliases m).
//   - e odd,  > 1  → m × m^(e-1).
//   - e even       → H × H where H = m^(e/2).
//
// The number of multiplications is O(log e) and the recursion depth is
// bounded by the exponent's bit length. Every multiplication uses the same
// triple as the entry call. Exponent 0 is deliberately rejected: a generic
// multiplicative identity matrix is not constructible from a
// (combine, reduce, identity) triple alone.

package matrix

// PowSemiring raises square matrix m to the e-th power (e >= 1) under the
// explicitly supplied semiring.
//
// Implementation:
//   - Stage 1: validate m non-nil and square, e >= 1, and the triple's
//     operations present — all before any multiplication, so a violation
//     produces no partial computation.
//   - Stage 2: recurse by squaring; each level performs at most one
//     multiplication plus one recursive call.
//
// For e == 1 the returned Matrix is m itself; every other path returns a
// freshly allocated Dense and never mutates m.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadExponent, ErrNilOp.
// Complexity: O(R^3 * log e) combine/reduce evaluations for an R×R matrix.
func PowSemiring[T any](m Matrix[T], e int, s Semiring[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if e < 1 {
		return nil, matrixErrorf(opPow, ErrBadExponent)
	}
	if !s.valid() {
		return nil, matrixErrorf(opPow, ErrNilOp)
	}

	return powRec(m, e, s)
}

// Pow raises square matrix m to the e-th power (e >= 1) under the default
// semiring registered for T; fails with ErrNoSemiring when T is unbound.
// Errors: ErrNoSemiring, ErrNilMatrix, ErrNonSquare, ErrBadExponent.
func Pow[T any](m Matrix[T], e int) (Matrix[T], error) {
	s, ok := Lookup[T]()
	if !ok {
		return nil, matrixErrorf(opPow, ErrNoSemiring)
	}

	return PowSemiring(m, e, s)
}

// powRec is the recursion core. Preconditions (square m, e >= 1, valid s)
// are enforced by PowSemiring and hold on every level.
func powRec[T any](m Matrix[T], e int, s Semiring[T]) (Matrix[T], error) {
	// Base case: m^1 is m itself.
	if e == 1 {
		return m, nil
	}

	// Odd exponent: m × m^(e-1).
	if e%2 == 1 {
		rest, err := powRec(m, e-1, s)
		if err != nil {
			return nil, err
		}
		return MulSemiring(m, rest, s)
	}

	// Even exponent: square the half power, reusing it for both operands.
	half, err := powRec(m, e/2, s)
	if err != nil {
		return nil, err
	}

	return MulSemiring(half, half, s)
}
