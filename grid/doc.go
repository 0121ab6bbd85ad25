// Package grid provides coordinate utilities over matrix.Matrix values:
// validity checks, row-major index mapping, and four- or eight-connected
// neighbor queries (Conn4 or Conn8).
//
// It treats a matrix purely as a 2D coordinate space; nothing here reads
// element semantics except Find, which scans for a value in row-major
// order. Grounding matrices as grids is useful for maze/terrain search
// feeds and for pretty-printers that need neighborhood context.
package grid
