// Package matrix provides a generic two-dimensional container, Dense[T],
// together with entrywise operations and a multiplication/exponentiation
// engine generalized over a semiring-like triple (combine, reduce, identity).
//
// The package provides:
//
//   - Dense[T] — row-major storage with safe, bounds-checked accessors,
//     row views, column extraction and submatrix copies.
//   - Map / Zip / Transpose — entrywise kernels producing fresh matrices.
//   - Semiring[T] — a (Combine, Reduce, Identity) triple, plus a per-type
//     registry supplying default triples for the built-in numeric and
//     boolean element types.
//   - MulFunc / MulSemiring / Mul — generic multiplication as a strict
//     left fold, correct for non-commutative operation pairs.
//   - PowSemiring / Pow — exponentiation by repeated squaring in O(log e)
//     multiplications.
//   - ParseRunes / ParseFunc / ParseInts — matrices from character grids.
//
// All user-facing failures are sentinel errors matched via errors.Is;
// no operation panics on bad input, produces partial results, or mutates
// its operands.
package matrix
