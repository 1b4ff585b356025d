package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scanmaze/pkg/engine/world"
)

func TestLook_AllWalls(t *testing.T) {
	grid := world.NewGrid(7, 7)
	grid.Fill()

	for _, dir := range world.AllDirections() {
		s := Look(grid, dir, 3, 3)
		assert.Equal(t, Snapshot{
			FrontLeft: true, Front: true, FrontRight: true,
			BackLeft: true, Back: true, BackRight: true,
		}, s, dir.String())
		assert.True(t, s.Opaque())
	}
}

func TestCell_RotatesWithHeading(t *testing.T) {
	tests := []struct {
		heading world.Direction
		seg     Segment
		want    world.Point
	}{
		{world.North, FrontLeft, world.Point{Row: 5, Col: 4}},
		{world.North, Back, world.Point{Row: 4, Col: 5}},
		{world.North, BackRight, world.Point{Row: 4, Col: 6}},
		{world.East, FrontLeft, world.Point{Row: 4, Col: 5}},
		{world.East, Back, world.Point{Row: 5, Col: 6}},
		{world.East, BackRight, world.Point{Row: 6, Col: 6}},
		{world.South, FrontLeft, world.Point{Row: 5, Col: 6}},
		{world.South, Back, world.Point{Row: 6, Col: 5}},
		{world.South, BackLeft, world.Point{Row: 6, Col: 6}},
		{world.West, FrontLeft, world.Point{Row: 6, Col: 5}},
		{world.West, Back, world.Point{Row: 5, Col: 4}},
		{world.West, BackRight, world.Point{Row: 4, Col: 4}},
		{world.West, Front, world.Point{Row: 5, Col: 5}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Cell(tt.heading, 5, 5, tt.seg), "%s seg %d", tt.heading, tt.seg)
	}
}

func TestLook_OutOfBoundsIsWall(t *testing.T) {
	grid := world.NewGrid(5, 5)
	s := Look(grid, world.North, 0, 2)
	assert.True(t, s.Back)
	assert.True(t, s.BackLeft)
	assert.False(t, s.Front)
	assert.False(t, s.Exit)
}

func TestLook_ExitStraightAhead(t *testing.T) {
	grid := world.NewGrid(5, 5)
	grid.Fill()
	grid.Carve(1, 2)
	grid.Carve(1, 3)
	grid.Carve(1, 4)

	s := Look(grid, world.East, 1, 3)
	assert.True(t, s.Exit)
	assert.False(t, s.Front)
	assert.False(t, s.Back)
	assert.True(t, s.FrontLeft)
	assert.True(t, s.FrontRight)

	// Two cells back the exit is not yet the forward cell
	assert.False(t, Look(grid, world.East, 1, 2).Exit)
	// Sideways at the border there is only wall ahead
	assert.False(t, Look(grid, world.North, 1, 3).Exit)
}

func TestLook_BorderWallIsNotExit(t *testing.T) {
	grid := world.NewGrid(5, 5)
	grid.Fill()
	grid.Carve(1, 3)

	s := Look(grid, world.East, 1, 3)
	assert.True(t, s.Back)
	assert.False(t, s.Exit)
}

func TestLookAt_UsesDepth(t *testing.T) {
	grid := world.NewGrid(7, 7)
	grid.Fill()
	for row := 1; row <= 5; row++ {
		grid.Carve(row, 3)
	}

	assert.False(t, LookAt(grid, world.North, 5, 3, 2).Front)
	assert.False(t, LookAt(grid, world.North, 5, 3, 3).Back)
	assert.True(t, LookAt(grid, world.North, 5, 3, 4).Back, "row 0 is the border")
	assert.Equal(t, world.Point{Row: 3, Col: 3}, Ahead(world.North, 5, 3, 2))
}
