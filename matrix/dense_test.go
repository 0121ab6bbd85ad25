// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genmat/matrix"
)

// TestNewRejectsNegativeDimensions ensures New fails with ErrBadShape on
// negative rows or columns, while zero-sized shapes remain legal.
func TestNewRejectsNegativeDimensions(t *testing.T) {
	_, err := matrix.New[int](-1, 5) // negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New[int](5, -1) // negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.New[int](0, 3) // zero rows are allowed
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
}

// TestRowsColsShape verifies the dimension queries.
func TestRowsColsShape(t *testing.T) {
	m, err := matrix.New[string](3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.False(t, m.IsSquare())

	sq, err := matrix.New[string](2, 2)
	require.NoError(t, err)
	require.True(t, sq.IsSquare())
}

// TestNewFilled verifies every element equals the fill value.
func TestNewFilled(t *testing.T) {
	m, err := matrix.NewFilled(2, 3, 7)
	require.NoError(t, err)
	requireCells(t, [][]int{{7, 7, 7}, {7, 7, 7}}, m)
}

// TestFromSlice verifies the flattening constructor and its length check.
func TestFromSlice(t *testing.T) {
	m, err := matrix.FromSlice(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	requireCells(t, [][]int{{1, 2}, {3, 4}}, m)

	_, err = matrix.FromSlice(2, 2, []int{1, 2, 3}) // wrong length
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromSliceDoesNotRetainInput ensures later mutation of the source
// slice is invisible to the matrix (each matrix owns its backing store).
func TestFromSliceDoesNotRetainInput(t *testing.T) {
	src := []int{1, 2, 3, 4}
	m, err := matrix.FromSlice(2, 2, src)
	require.NoError(t, err)

	src[0] = 99 // mutate the source after construction

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

// TestFromRowsRejectsRagged ensures jagged input fails with ErrRagged.
func TestFromRowsRejectsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

// TestAtSetOutOfBounds ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.New[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.New[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestRowIsView ensures Row returns a live view: later Set calls are
// visible through a previously fetched row slice.
func TestRowIsView(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, row)

	require.NoError(t, m.Set(1, 0, 30))
	require.Equal(t, []int{30, 4}, row) // view reflects the write

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRow validates the whole-row setter and its length check.
func TestSetRow(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})

	require.NoError(t, m.SetRow(0, []int{9, 8}))
	requireCells(t, [][]int{{9, 8}, {3, 4}}, m)

	err := m.SetRow(0, []int{1}) // wrong width
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = m.SetRow(5, []int{1, 2}) // bad index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestColumnMaterializes ensures Column copies: mutating the result does
// not touch the matrix.
func TestColumnMaterializes(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, col)

	col[0] = 99 // mutate the copy

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	_, err = m.Column(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSubmatrix verifies inclusive-region extraction and bounds handling.
func TestSubmatrix(t *testing.T) {
	m := mustFromRows(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, err := m.Submatrix(0, 1, 1, 2) // rows 0..1, cols 1..2, inclusive
	require.NoError(t, err)
	requireCells(t, [][]int{{2, 3}, {5, 6}}, sub)

	// Extracted copy is independent of the source.
	require.NoError(t, sub.Set(0, 0, 99))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	_, err = m.Submatrix(0, 0, 3, 1) // region exceeds the source
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Submatrix(1, 1, 0, 0) // inverted corners
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone returns a deep copy with no shared storage.
func TestCloneIndependence(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // original remains unchanged

	cl, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cl)
}

// TestDoRowMajorOrder verifies Do visits every element exactly once in
// row-major order and honors early stop.
func TestDoRowMajorOrder(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})

	var seen []int
	m.Do(func(i, j int, v int) bool {
		seen = append(seen, v)
		return true
	})
	require.Equal(t, []int{1, 2, 3, 4}, seen)

	seen = seen[:0]
	m.Do(func(i, j int, v int) bool {
		seen = append(seen, v)
		return len(seen) < 3 // stop after the third element
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestStringOutput checks that String formats the matrix row per line.
func TestStringOutput(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
