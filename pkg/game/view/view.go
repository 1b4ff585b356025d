// Package view samples the maze around a cell from the walker's point of view.
package view

import (
	"scanmaze/pkg/engine/world"
)

// Snapshot is the set of wall segments visible from one cell
type Snapshot struct {
	FrontLeft  bool
	Front      bool
	FrontRight bool
	BackLeft   bool
	Back       bool
	BackRight  bool
	Exit       bool
}

// Opaque reports whether nothing beyond this cell can be seen
func (s Snapshot) Opaque() bool {
	return s.Front || s.Back
}

// Segment identifies one of the six sampled cells
type Segment int

const (
	FrontLeft Segment = iota
	Front
	FrontRight
	BackLeft
	Back
	BackRight
)

// offset is a cell position relative to the sampled cell, expressed as steps
// ahead along the heading and steps to the right of it
type offset struct {
	ahead int
	right int
}

// segments is the canonical offset table. Headings rotate it by projecting
// ahead and right onto the grid axes.
var segments = [...]offset{
	FrontLeft:  {0, -1},
	Front:      {0, 0},
	FrontRight: {0, 1},
	BackLeft:   {1, -1},
	Back:       {1, 0},
	BackRight:  {1, 1},
}

// Cell returns the grid position of a segment for a heading
func Cell(heading world.Direction, row, col int, seg Segment) world.Point {
	o := segments[seg]
	fr, fc := heading.Delta()
	rr, rc := heading.TurnRight().Delta()
	return world.Point{
		Row: row + o.ahead*fr + o.right*rr,
		Col: col + o.ahead*fc + o.right*rc,
	}
}

// Ahead returns the cell depth steps forward of (row, col)
func Ahead(heading world.Direction, row, col, depth int) world.Point {
	return world.Point{Row: row, Col: col}.Step(heading, depth)
}

// IsWall reports whether a cell blocks sight. Cells outside the grid do.
func IsWall(grid *world.Grid, p world.Point) bool {
	if !grid.IsValidPosition(p.Row, p.Col) {
		return true
	}
	return grid.Get(p.Row, p.Col)
}

// Look samples the six segments around (row, col) facing heading
func Look(grid *world.Grid, heading world.Direction, row, col int) Snapshot {
	wall := func(seg Segment) bool {
		return IsWall(grid, Cell(heading, row, col, seg))
	}

	s := Snapshot{
		FrontLeft:  wall(FrontLeft),
		Front:      wall(Front),
		FrontRight: wall(FrontRight),
		BackLeft:   wall(BackLeft),
		Back:       wall(Back),
		BackRight:  wall(BackRight),
	}

	// An exit needs an open path onto the outer ring
	forward := Cell(heading, row, col, Back)
	s.Exit = !s.Front && !s.Back && grid.IsOnPerimeter(forward.Row, forward.Col)
	return s
}

// LookAt samples the view depth cells ahead of (row, col)
func LookAt(grid *world.Grid, heading world.Direction, row, col, depth int) Snapshot {
	p := Ahead(heading, row, col, depth)
	return Look(grid, heading, p.Row, p.Col)
}
