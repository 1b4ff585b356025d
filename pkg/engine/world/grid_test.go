package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_GetSetRoundTrip(t *testing.T) {
	g := NewGrid(3, 70)
	g.Set(1, 0, true)
	g.Set(1, 63, true)
	g.Set(1, 64, true)
	g.Set(2, 69, true)

	assert.True(t, g.Get(1, 0))
	assert.True(t, g.Get(1, 63))
	assert.True(t, g.Get(1, 64))
	assert.True(t, g.Get(2, 69))
	assert.False(t, g.Get(1, 1))
	assert.Equal(t, 4, g.WallCount())

	g.Carve(1, 64)
	assert.False(t, g.Get(1, 64))
}

func TestGrid_OutOfBoundsIsSafe(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill()

	assert.False(t, g.Get(-1, 0), "out of bounds reads default to no bit")
	assert.False(t, g.Get(0, 4))

	assert.NotPanics(t, func() { g.Set(10, 10, false) })
	assert.Equal(t, 16, g.WallCount())
}

func TestGrid_FillKeepsPaddingClear(t *testing.T) {
	g := NewGrid(2, 5)
	g.Fill()
	assert.Equal(t, 10, g.WallCount())
	assert.Equal(t, uint64(0b11111), g.RowBits(0))

	g.Clear()
	assert.Zero(t, g.WallCount())
}

func TestGrid_LoadRowsMatchesLiteral(t *testing.T) {
	g := LoadRows([]uint64{
		0b11111,
		0b10001,
		0b10101,
		0b10001,
		0b11011,
	}, 5)

	require.Equal(t, 5, g.Rows())
	require.Equal(t, 5, g.Cols())
	assert.True(t, g.Get(0, 0))
	assert.False(t, g.Get(1, 1))
	assert.True(t, g.Get(2, 2))
	assert.False(t, g.Get(4, 2))
	assert.Equal(t, uint64(0b10101), g.RowBits(2))
}

func TestGrid_ClassifyPartitionsEveryCell(t *testing.T) {
	g := LoadRows([]uint64{
		0b11111,
		0b10000,
		0b10101,
		0b10001,
		0b11111,
	}, 5)

	counts := map[CellKind]int{}
	g.ForEachCell(func(row, col int, wall bool) {
		counts[g.Classify(row, col)]++
	})

	assert.Equal(t, 1, counts[BorderExit])
	assert.Equal(t, 15, counts[BorderWall])
	assert.Equal(t, 1, counts[InteriorWall])
	assert.Equal(t, 8, counts[InteriorPassage])
	assert.Equal(t, BorderExit, g.Classify(1, 4))
}

func TestGrid_Perimeter(t *testing.T) {
	g := NewGrid(5, 6)
	assert.True(t, g.IsOnPerimeter(0, 3))
	assert.True(t, g.IsOnPerimeter(2, 5))
	assert.False(t, g.IsOnPerimeter(2, 2))
	assert.False(t, g.IsOnPerimeter(-1, 2))
	assert.True(t, g.IsPlayablePosition(3, 4))
}

func TestGrid_CopyFrom(t *testing.T) {
	a := NewGrid(3, 3)
	a.Fill()
	b := NewGrid(3, 3)
	require.True(t, b.CopyFrom(a))
	assert.Equal(t, 9, b.WallCount())
	assert.False(t, b.CopyFrom(NewGrid(2, 3)))
}

func TestNewGrid_PanicsOnBadDimensions(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 3) })
}
