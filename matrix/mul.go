// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Generic matrix multiplication as a strict left fold over a
//     (combine, reduce, identity) triple.
//
// Determinism:
//   - Every cell P(i,j) is the fold of combine(A(i,k), B(k,j)) for k
//     ascending 0..K-1, seeded at identity. The fold order is part of the
//     contract — reduce and combine need not be commutative — so both the
//     Dense fast path and the interface fallback use the same i→j→k loop
//     and no re-association is ever applied.

package matrix

import "fmt"

// MulFunc computes the product of a (R×K) and b (K×C) under an explicit
// operation triple, producing a fresh R×C matrix with
//
//	P(i,j) = reduce(...reduce(reduce(identity, combine(a(i,0), b(0,j))),
//	         combine(a(i,1), b(1,j)))..., combine(a(i,K-1), b(K-1,j)))
//
// i.e. a strict left fold with k ascending. Operand element types may
// differ (T, U), combine may produce a third type V, and the accumulator
// type W is independent again; the common case is T = U = V = W.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) — a.Cols() must equal b.Rows(),
//     checked before any allocation so a violation performs no partial
//     computation. Nil operation functions fail with ErrNilOp.
//   - Stage 2: allocate Dense[W](R, C).
//   - Stage 3: Dense/Dense fast path over the flat buffers; otherwise the
//     interface fallback via At. Both fold in the same fixed order.
//
// Errors: ErrNilMatrix, ErrNilOp, ErrDimensionMismatch.
// Complexity: O(R*K*C) combine/reduce evaluations; O(R*C) space.
func MulFunc[T, U, V, W any](
	a Matrix[T],
	b Matrix[U],
	combine func(T, U) V,
	reduce func(W, V) W,
	identity W,
) (*Dense[W], error) {
	// Validate operands and inner dimensions via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if combine == nil || reduce == nil {
		return nil, matrixErrorf(opMul, ErrNilOp)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := New[W](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators, fixed i→j→k order
		acc     W   // per-cell accumulator
	)

	// Fast path: both operands are *Dense — fold over the flat buffers.
	// a layout: i*inner + k; b layout: k*cols + j.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[U]); okB {
			var baseA, baseR int
			for i = 0; i < rows; i++ {
				baseA = i * inner
				baseR = i * cols
				for j = 0; j < cols; j++ {
					acc = identity
					for k = 0; k < inner; k++ { // strict left fold, k ascending
						acc = reduce(acc, combine(da.data[baseA+k], db.data[k*cols+j]))
					}
					res.data[baseR+j] = acc
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface path, same fold order.
	var av T
	var bv U
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = identity
			for k = 0; k < inner; k++ { // strict left fold, k ascending
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc = reduce(acc, combine(av, bv))
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// MulSemiring computes a × b under the explicitly supplied semiring.
// An explicit triple always takes precedence over the registry.
// Errors: ErrNilMatrix, ErrNilOp, ErrDimensionMismatch.
// Complexity: O(R*K*C).
func MulSemiring[T any](a, b Matrix[T], s Semiring[T]) (*Dense[T], error) {
	if !s.valid() {
		return nil, matrixErrorf(opMul, ErrNilOp)
	}

	return MulFunc(a, b, s.Combine, s.Reduce, s.Identity)
}

// Mul computes a × b under the default semiring registered for T.
// This is the convenience entry point mirroring ordinary multiplication
// syntax for common element types; it fails with ErrNoSemiring when no
// binding exists for T.
// Errors: ErrNoSemiring, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(R*K*C).
func Mul[T any](a, b Matrix[T]) (*Dense[T], error) {
	s, ok := Lookup[T]()
	if !ok {
		return nil, matrixErrorf(opMul, ErrNoSemiring)
	}

	return MulFunc(a, b, s.Combine, s.Reduce, s.Identity)
}
