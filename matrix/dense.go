// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy row views (Row) and copy-based submatrix extraction (Submatrix).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(1); Column: O(r);
//     Submatrix: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"        // method tag used in error wrappers
	ctxSet    = "Set"       // method tag used in error wrappers
	ctxRow    = "Row"       // method tag used in error wrappers
	ctxSetRow = "SetRow"    // method tag used in error wrappers
	ctxColumn = "Column"    // method tag used in error wrappers
	ctxSub    = "Submatrix" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an underlying error with Dense method context.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T values.
//   - r,c hold dimensions (rows, cols); both are >= 0 and fixed for life.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Each Dense exclusively owns its backing buffer: no two instances ever
// share storage, so mutating one can never be observed through another.
type Dense[T any] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// New creates an r×c matrix of zero values using row-major storage.
// Stage 1 (Validate): reject negative dimensions with ErrBadShape;
// zero-sized shapes (0×c, r×0) are legal and yield an empty buffer.
// Stage 2 (Prepare): allocate flat backing slice (zero-filled by make).
// Stage 3 (Finalize): return new Dense.
// Complexity: O(r*c) time and memory.
func New[T any](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to fill.
// Validation is identical to New. Complexity: O(r*c).
func NewFilled[T any](rows, cols int, fill T) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	// Deterministic flat fill 0..n-1.
	for idx := range m.data {
		m.data[idx] = fill
	}

	return m, nil
}

// FromSlice creates an r×c matrix by copying a row-major flattening source.
// Requires len(data) == rows*cols; the input slice is never retained, so
// later mutation of data does not affect the matrix.
// Complexity: O(r*c).
func FromSlice[T any](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice(%d,%d,len=%d): %w", rows, cols, len(data), ErrBadShape)
	}
	buf := make([]T, len(data)) // own an independent buffer
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// FromRows creates a matrix by deep-copying a slice of rows.
// Every row must have the same length (rectangular invariant); a jagged
// input fails with ErrRagged before any allocation of the result.
// An empty input yields a legal 0×0 matrix.
// Complexity: O(r*c).
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{r: 0, c: 0, data: make([]T, 0)}, nil
	}
	cols := len(rows[0])
	// Rectangularity check first: no partial result on failure.
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), cols, ErrRagged)
		}
	}

	m := &Dense[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i]) // deep copy row i
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether the matrix has as many rows as columns.
// Complexity: O(1).
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel error.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// The only in-place mutators on Dense are Set and SetRow.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns the backing slice for row i as a READ-ONLY view.
// The returned slice shares storage with the matrix: writing through it
// would be visible in the matrix, so treat it as a weak reference and use
// Set/SetRow for mutation. The slice is capacity-clipped, so appending to
// it cannot overwrite the following row.
// Complexity: O(1); no copy.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// SetRow overwrites row i with vals, which must have exactly Cols()
// elements (ErrDimensionMismatch otherwise). vals is copied, not retained.
// Complexity: O(c).
func (m *Dense[T]) SetRow(i int, vals []T) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return fmt.Errorf("Dense.%s(%d): got %d values, want %d: %w", ctxSetRow, i, len(vals), m.c, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals) // whole-row write

	return nil
}

// Column returns a freshly materialized copy of column j, reading entry
// (i, j) for i in [0, Rows()). Mutating the result never affects the matrix.
// Complexity: O(r) time and memory.
func (m *Dense[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ { // deterministic top-to-bottom read
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Submatrix copies the inclusive rectangular region with top-left (r0, c0)
// and bottom-right (r1, c1) into a fresh matrix.
// Stage 1 (Validate): corners must be in bounds and correctly ordered,
// else ErrOutOfRange — checked before any allocation.
// Stage 2 (Execute): row-by-row copy into an independent buffer.
// Complexity: O((r1-r0+1)*(c1-c0+1)).
func (m *Dense[T]) Submatrix(r0, c0, r1, c1 int) (*Dense[T], error) {
	if r0 < 0 || c0 < 0 || r1 >= m.r || c1 >= m.c || r0 > r1 || c0 > c1 {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxSub, r0, c0, r1, c1, ErrOutOfRange)
	}
	rows, cols := r1-r0+1, c1-c0+1
	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i := 0; i < rows; i++ {
		src := (r0+i)*m.c + c0 // source offset of row slice start
		copy(out.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Independence: mutations on the copy do not affect the original.
// The returned dynamic type is *Dense[T].
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy elements

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Do visits each element (i, j) in row-major order and calls f(i, j, v):
// all columns of row 0, then row 1, and so on, every element exactly once.
// Visiting stops early when f returns false. Read-only with respect to the
// callback; no allocations.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String implements fmt.Stringer: one "[a, b, c]" line per row.
// Values are rendered with %v. Intended for logs and debugging, not hot paths.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
