package generator

import (
	"scanmaze/pkg/engine/world"
)

// FixedGenerator loads a hand-drawn layout instead of carving one
type FixedGenerator struct {
	Rows  []uint64
	Cols  int
	Start world.Point
}

// Basement is the hand-drawn 16x8 layout the panel shipped with
var Basement = &FixedGenerator{
	Rows: []uint64{
		0b1111111111110111,
		0b1100000011110111,
		0b1111101110000001,
		0b1111101111010111,
		0b1000001111000001,
		0b1101101111110111,
		0b1000000000000111,
		0b1111111111111111,
	},
	Cols:  16,
	Start: world.Point{Row: 3, Col: 12},
}

// Name returns the name of this generator
func (g *FixedGenerator) Name() string {
	return "Fixed Layout"
}

// Generate resizes grid to the layout and copies it in. start is used when it
// lands on a passage, otherwise the layout's own start is used.
func (g *FixedGenerator) Generate(grid *world.Grid, start world.Point) Layout {
	if grid.Rows() != len(g.Rows) || grid.Cols() != g.Cols {
		grid.Build(len(g.Rows), g.Cols)
	}
	grid.CopyFrom(world.LoadRows(g.Rows, g.Cols))

	layout := Layout{Start: g.Start}
	if grid.IsPlayablePosition(start.Row, start.Col) && !grid.Get(start.Row, start.Col) {
		layout.Start = start
	}

	// first border opening in reading order
	found := false
	grid.ForEachCell(func(row, col int, wall bool) {
		if !found && !wall && grid.IsOnPerimeter(row, col) {
			layout.Exit = world.Point{Row: row, Col: col}
			found = true
		}
	})

	return layout
}
