// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Entrywise kernels over Matrix[T]: Map (unary), Zip (binary), Transpose.
//   - Each kernel validates first, allocates exactly one fresh Dense result,
//     and never mutates its operands.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on the Dense fast path; i→j fallback).
//   - Dense fast paths operate on the flat row-major buffers directly.
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "fmt"

// ---------- operation tags for error wrapping ----------

const (
	opMap       = "Map"
	opZip       = "Zip"
	opTranspose = "Transpose"
	opMul       = "Mul"
	opPow       = "Pow"
)

// matrixErrorf attaches an operation tag to a sentinel error.
// The result formats as "<tag>: <underlying>" and still matches errors.Is.
// Callers must pass a non-nil err. Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Map returns a new matrix of the same shape with f applied to every
// element. Every element is visited exactly once; the traversal order is
// row-major on the implemented paths but is not part of the contract, so f
// should be pure. The element type may change (T -> A).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate Dense[A](rows, cols).
//   - Stage 2: Dense fast path — single flat loop 0..n-1; otherwise
//     fall back to At with fixed i→j order.
//
// Errors: ErrNilMatrix, ErrNilOp (nil f).
// Complexity: O(r*c) time, O(r*c) space for the result.
func Map[T, A any](m Matrix[T], f func(T) A) (*Dense[A], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	if f == nil {
		return nil, matrixErrorf(opMap, ErrNilOp)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := New[A](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	// Fast path: *Dense source → single flat loop.
	if d, ok := m.(*Dense[T]); ok {
		for idx := range d.data { // deterministic 0..n-1
			res.data[idx] = f(d.data[idx])
		}
		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMap, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = f(v)
		}
	}

	return res, nil
}

// Zip combines two matrices of identical shape entrywise:
// result(i,j) = f(a(i,j), b(i,j)) for every valid (i, j).
// Operand element types may differ and the result type is independent of
// both. A fresh Dense is allocated; operands are never mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b) — detected before any output
//     allocation, so a mismatch produces no partial result.
//   - Stage 2: Dense/Dense fast path — single flat loop; otherwise At/At
//     fallback in fixed i→j order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNilOp (nil f).
// Complexity: O(r*c) time, O(r*c) space.
func Zip[T, U, V any](a Matrix[T], b Matrix[U], f func(T, U) V) (*Dense[V], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opZip, err)
	}
	if f == nil {
		return nil, matrixErrorf(opZip, ErrNilOp)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := New[V](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opZip, err)
	}

	// Fast path: both *Dense → single flat loop over both buffers.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[U]); okB {
			for idx := range da.data { // deterministic 0..n-1
				res.data[idx] = f(da.data[idx], db.data[idx])
			}
			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av T
	var bv U
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opZip, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opZip, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped:
// result(j,i) = m(i,j). The source is validated non-nil and never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate Dense(cols, rows).
//   - Stage 2: Dense fast path maps data[i*cols+j] → res.data[j*rows+i];
//     fallback uses At in fixed i→j order.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(r*c) space.
func Transpose[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := New[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path for Dense → Dense.
	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
