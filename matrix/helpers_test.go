package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genmat/matrix"
)

// mustFromRows builds a matrix from rows and fails the test on error.
func mustFromRows[T any](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// requireCells asserts every cell of got equals want, element for element.
func requireCells[T any](t *testing.T, want [][]T, got matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "row %d", i)
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

// opaque hides the concrete *Dense type behind the Matrix interface so
// kernels take their generic fallback path instead of the Dense fast path.
type opaque[T any] struct {
	inner matrix.Matrix[T]
}

func (o opaque[T]) Rows() int               { return o.inner.Rows() }
func (o opaque[T]) Cols() int               { return o.inner.Cols() }
func (o opaque[T]) At(i, j int) (T, error)  { return o.inner.At(i, j) }
func (o opaque[T]) Set(i, j int, v T) error { return o.inner.Set(i, j, v) }
func (o opaque[T]) Clone() matrix.Matrix[T] { return opaque[T]{inner: o.inner.Clone()} }
