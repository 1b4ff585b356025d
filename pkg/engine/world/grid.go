// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based maze.
package world

import "math/bits"

const wordBits = 64

// CellKind classifies a cell by its position and wall bit
type CellKind int

// Cell kinds; every in-bounds cell is exactly one of these
const (
	InteriorPassage CellKind = iota
	InteriorWall
	BorderWall
	BorderExit
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case InteriorPassage:
		return "InteriorPassage"
	case InteriorWall:
		return "InteriorWall"
	case BorderWall:
		return "BorderWall"
	case BorderExit:
		return "BorderExit"
	default:
		return "Unknown"
	}
}

// Grid is a bit-packed maze map, one bit per cell, 1 = wall.
// Bits are stored MSB-first so a row of up to 64 cells reads like a
// binary literal with column 0 on the left.
type Grid struct {
	words  []uint64
	stride int
	rows   int
	cols   int
}

// NewGrid creates a new grid with the given dimensions, all cells passage
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// LoadRows builds a grid from literal row words, one word per row, where the
// most significant of the cols low bits is column 0
func LoadRows(rows []uint64, cols int) *Grid {
	g := NewGrid(len(rows), cols)
	for row, word := range rows {
		for col := 0; col < cols; col++ {
			g.Set(row, col, word&(1<<uint(cols-1-col)) != 0)
		}
	}
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.stride = (cols + wordBits - 1) / wordBits
	g.words = make([]uint64, rows*g.stride)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is strictly inside the outer ring
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

func (g *Grid) locate(row, col int) (int, uint64) {
	return row*g.stride + col/wordBits, 1 << uint(wordBits-1-col%wordBits)
}

// Get returns the wall bit at the position; out of bounds reads as false
func (g *Grid) Get(row, col int) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	idx, mask := g.locate(row, col)
	return g.words[idx]&mask != 0
}

// Set sets or clears the wall bit at the position; out of bounds is a no-op
func (g *Grid) Set(row, col int, wall bool) {
	if !g.IsValidPosition(row, col) {
		return
	}
	idx, mask := g.locate(row, col)
	if wall {
		g.words[idx] |= mask
	} else {
		g.words[idx] &^= mask
	}
}

// Carve clears the wall bit at the position
func (g *Grid) Carve(row, col int) {
	g.Set(row, col, false)
}

// Clear turns every cell into passage
func (g *Grid) Clear() {
	for i := range g.words {
		g.words[i] = 0
	}
}

// Fill turns every cell into wall
func (g *Grid) Fill() {
	for row := 0; row < g.rows; row++ {
		for w := 0; w < g.stride; w++ {
			g.words[row*g.stride+w] = ^uint64(0)
		}
		// keep padding bits past the last column clear
		if tail := g.cols % wordBits; tail != 0 {
			g.words[row*g.stride+g.stride-1] = ^uint64(0) << uint(wordBits-tail)
		}
	}
}

// RowBits returns a row as a right-aligned word, column 0 in the highest bit.
// Only the first 64 columns are represented.
func (g *Grid) RowBits(row int) uint64 {
	if row < 0 || row >= g.rows {
		return 0
	}
	n := g.cols
	if n > wordBits {
		n = wordBits
	}
	return g.words[row*g.stride] >> uint(wordBits-n)
}

// WallCount returns the number of wall cells
func (g *Grid) WallCount() int {
	n := 0
	for _, w := range g.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// CopyFrom overwrites g with the contents of other; dimensions must match
func (g *Grid) CopyFrom(other *Grid) bool {
	if other == nil || other.rows != g.rows || other.cols != g.cols {
		return false
	}
	copy(g.words, other.words)
	return true
}

// Classify returns the kind of an in-bounds cell
func (g *Grid) Classify(row, col int) CellKind {
	wall := g.Get(row, col)
	if g.IsOnPerimeter(row, col) {
		if wall {
			return BorderWall
		}
		return BorderExit
	}
	if wall {
		return InteriorWall
	}
	return InteriorPassage
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, wall bool)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.Get(row, col))
		}
	}
}
