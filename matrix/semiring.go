// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Define Semiring[T], the (combine, reduce, identity) triple that
//     generalizes matrix multiplication, and the per-element-type registry
//     that supplies a default triple to Mul and Pow.
//
// Design:
//   - The registry is an explicit table keyed by the concrete element type:
//     one binding per type, looked up at the call site that needs a default.
//     Explicit-triple entry points (MulSemiring, PowSemiring, MulFunc) never
//     consult it and always take precedence.
//   - Registration is open: external packages may bind their own element
//     types (min-plus, tropical, interval arithmetic, ...) without touching
//     this package. Last registration wins, so built-ins can be replaced.

package matrix

import (
	"math"
	"reflect"
	"sync"
)

// Semiring bundles the operation pair and identity used by multiplication:
// Combine plays the role of element multiplication, Reduce the role of
// addition, and Identity is Reduce's identity element.
//
// Correctness precondition (not mechanically checkable): Reduce must be
// associative and satisfy Reduce(Identity, v) == v for all v. Combine and
// Reduce need not be commutative — the kernels fold strictly left-to-right.
type Semiring[T any] struct {
	// Combine merges one element of the left operand with one element of
	// the right operand ("times").
	Combine func(a, b T) T
	// Reduce folds a combined value into the running accumulator ("plus").
	Reduce func(acc, v T) T
	// Identity seeds the accumulator; it must be Reduce's identity element.
	Identity T
}

// valid reports whether both operations are present.
func (s Semiring[T]) valid() bool {
	return s.Combine != nil && s.Reduce != nil
}

// registry maps a concrete element type to its Semiring[T], stored as any
// and re-asserted on lookup. Guarded by regMu; never iterated, so map
// ordering cannot leak into results.
var (
	regMu    sync.RWMutex
	registry = make(map[reflect.Type]any)
)

// typeKey resolves the registry key for element type T.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register binds s as the default semiring for element type T.
// Later registrations for the same type overwrite earlier ones, so callers
// may replace the built-in bindings. Safe for concurrent use.
// Complexity: O(1).
func Register[T any](s Semiring[T]) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[typeKey[T]()] = s
}

// Lookup returns the default semiring registered for element type T and
// whether one exists. Safe for concurrent use. Complexity: O(1).
func Lookup[T any]() (Semiring[T], bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	v, ok := registry[typeKey[T]()]
	if !ok {
		var zero Semiring[T]
		return zero, false
	}

	return v.(Semiring[T]), true
}

// Arithmetic returns the ordinary numeric semiring for T:
// Combine = *, Reduce = +, Identity = 0. This is the triple behind standard
// matrix multiplication over numbers.
func Arithmetic[T Number]() Semiring[T] {
	return Semiring[T]{
		Combine:  func(a, b T) T { return a * b },
		Reduce:   func(acc, v T) T { return acc + v },
		Identity: 0,
	}
}

// Boolean returns the logical semiring:
// Combine = AND, Reduce = OR, Identity = false. Multiplication under this
// triple computes relation composition (k-step reachability).
func Boolean() Semiring[bool] {
	return Semiring[bool]{
		Combine:  func(a, b bool) bool { return a && b },
		Reduce:   func(acc, v bool) bool { return acc || v },
		Identity: false,
	}
}

// MinPlus returns the tropical semiring over float64:
// Combine = +, Reduce = min, Identity = +Inf. Matrix powers under this
// triple yield shortest path lengths of bounded hop count.
// Not registered by default; pass it explicitly or Register it.
func MinPlus() Semiring[float64] {
	return Semiring[float64]{
		Combine:  func(a, b float64) float64 { return a + b },
		Reduce:   math.Min,
		Identity: math.Inf(1),
	}
}

// Built-in bindings: every integer kind and both float kinds bind the
// arithmetic triple; bool binds the logical triple.
func init() {
	Register(Arithmetic[int]())
	Register(Arithmetic[int8]())
	Register(Arithmetic[int16]())
	Register(Arithmetic[int32]())
	Register(Arithmetic[int64]())
	Register(Arithmetic[uint]())
	Register(Arithmetic[uint8]())
	Register(Arithmetic[uint16]())
	Register(Arithmetic[uint32]())
	Register(Arithmetic[uint64]())
	Register(Arithmetic[uintptr]())
	Register(Arithmetic[float32]())
	Register(Arithmetic[float64]())
	Register(Boolean())
}
