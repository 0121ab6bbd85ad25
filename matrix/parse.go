// Package matrix: parsing matrices from character grids.
//
// Input is a newline-separated block of rows. Rectangularity is enforced
// (ErrRagged) and an empty input is rejected (ErrBadShape) before any
// result is built, matching the construction-time invariant of Dense.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	opParse = "Parse"

	_lineSep = "\n"
	_crChar  = "\r"
)

// splitGrid breaks s into its non-terminal lines, tolerating a trailing
// newline and CRLF endings. Interior blank lines are kept and will fail
// the rectangularity check downstream.
func splitGrid(s string) []string {
	s = strings.TrimRight(s, _lineSep)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, _lineSep)
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], _crChar)
	}

	return lines
}

// ParseRunes reads a character grid into a Dense[rune], one matrix row per
// input line, one element per rune.
// Errors: ErrBadShape (empty input), ErrRagged (uneven line lengths).
// Complexity: O(r*c).
func ParseRunes(s string) (*Dense[rune], error) {
	lines := splitGrid(s)
	if len(lines) == 0 {
		return nil, matrixErrorf(opParse, ErrBadShape)
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line) // rune-aware split; multi-byte cells stay single elements
	}

	m, err := FromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}

// ParseFunc reads a character grid and converts every rune cell through
// conv, producing a Dense[T]. A conversion failure surfaces as ErrSyntax
// with the offending coordinate; no partial matrix is returned.
// Errors: ErrBadShape, ErrRagged, ErrNilOp (nil conv), ErrSyntax.
// Complexity: O(r*c).
func ParseFunc[T any](s string, conv func(r rune) (T, error)) (*Dense[T], error) {
	if conv == nil {
		return nil, matrixErrorf(opParse, ErrNilOp)
	}
	cells, err := ParseRunes(s)
	if err != nil {
		return nil, err
	}

	res, err := New[T](cells.r, cells.c)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	for idx, r := range cells.data { // deterministic 0..n-1
		v, convErr := conv(r)
		if convErr != nil {
			return nil, fmt.Errorf("%s: cell (%d,%d) %q: %v: %w",
				opParse, idx/cells.c, idx%cells.c, r, convErr, ErrSyntax)
		}
		res.data[idx] = v
	}

	return res, nil
}

// ParseInts reads a grid of whitespace-separated integer tokens, one
// matrix row per input line.
// Errors: ErrBadShape (empty), ErrRagged (uneven token counts),
// ErrSyntax (non-integer token).
// Complexity: O(r*c) over tokens.
func ParseInts(s string) (*Dense[int], error) {
	lines := splitGrid(s)
	if len(lines) == 0 {
		return nil, matrixErrorf(opParse, ErrBadShape)
	}

	rows := make([][]int, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%s: row %d is empty: %w", opParse, i, ErrBadShape)
		}
		row := make([]int, len(fields))
		for j, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%s: cell (%d,%d) %q: %w", opParse, i, j, tok, ErrSyntax)
			}
			row[j] = v
		}
		rows[i] = row
	}

	m, err := FromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}
