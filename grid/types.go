// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/genmat.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("grid: matrix is nil")
	// ErrOutOfRange indicates a coordinate or index outside the matrix bounds.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Coord identifies a single matrix cell by row and column.
type Coord struct {
	Row, Col int
}

// Offsets returns the (dRow, dCol) neighbor offsets for the connectivity,
// in a fixed order so traversals stay deterministic.
// Complexity: O(1).
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
