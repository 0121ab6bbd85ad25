package grid

import (
	"fmt"

	"github.com/katalvlaran/genmat/matrix"
)

// InBounds reports whether (r, c) lies within m's declared dimensions.
// A nil matrix has no valid coordinates.
// Complexity: O(1).
func InBounds[T any](m matrix.Matrix[T], r, c int) bool {
	if m == nil {
		return false
	}

	return r >= 0 && r < m.Rows() && c >= 0 && c < m.Cols()
}

// Index maps (r, c) to its row-major position: r*Cols + c.
// Returns ErrOutOfRange for invalid coordinates.
// Complexity: O(1).
func Index[T any](m matrix.Matrix[T], r, c int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !InBounds(m, r, c) {
		return 0, fmt.Errorf("Index(%d,%d): %w", r, c, ErrOutOfRange)
	}

	return r*m.Cols() + c, nil
}

// Coordinate converts a row-major position back to its (row, col) pair.
// Complexity: O(1).
func Coordinate[T any](m matrix.Matrix[T], idx int) (Coord, error) {
	if m == nil {
		return Coord{}, ErrNilMatrix
	}
	if idx < 0 || idx >= m.Rows()*m.Cols() {
		return Coord{}, fmt.Errorf("Coordinate(%d): %w", idx, ErrOutOfRange)
	}

	return Coord{Row: idx / m.Cols(), Col: idx % m.Cols()}, nil
}

// Neighbors returns the in-bounds neighbors of (r, c) under the given
// connectivity, in the fixed order of Offsets. The center cell itself must
// be valid (ErrOutOfRange otherwise); off-grid neighbors are clipped.
// Complexity: O(1) — at most eight candidates.
func Neighbors[T any](m matrix.Matrix[T], r, c int, conn Connectivity) ([]Coord, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !InBounds(m, r, c) {
		return nil, fmt.Errorf("Neighbors(%d,%d): %w", r, c, ErrOutOfRange)
	}

	offsets := Offsets(conn)
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		nr, nc := r+d[0], c+d[1]
		if !InBounds(m, nr, nc) {
			continue // clip off-grid candidates
		}
		out = append(out, Coord{Row: nr, Col: nc})
	}

	return out, nil
}

// Find scans m in row-major order (rows ascending, then columns) and
// returns the coordinate of the first cell equal to v, or ok=false when no
// cell matches.
// Complexity: O(r*c).
func Find[T comparable](m matrix.Matrix[T], v T) (Coord, bool) {
	if m == nil {
		return Coord{}, false
	}
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cur, err := m.At(i, j)
			if err != nil {
				return Coord{}, false // non-Dense implementations may fail At; treat as no match
			}
			if cur == v {
				return Coord{Row: i, Col: j}, true
			}
		}
	}

	return Coord{}, false
}
