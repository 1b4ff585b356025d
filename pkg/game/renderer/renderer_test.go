package renderer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/engine/world"
	"scanmaze/pkg/game/generator"
	"scanmaze/pkg/game/state"
)

// testCanvas is an in-memory Canvas that counts pixel writes
type testCanvas struct {
	w, h   int
	pix    []bool
	sets   int
	shows  int
	refuse bool
}

func newTestCanvas(w, h int) *testCanvas {
	return &testCanvas{w: w, h: h, pix: make([]bool, w*h)}
}

func (c *testCanvas) Begin() bool { return !c.refuse }
func (c *testCanvas) Clear()      { c.pix = make([]bool, c.w*c.h) }
func (c *testCanvas) Show()       { c.shows++ }
func (c *testCanvas) Width() int  { return c.w }
func (c *testCanvas) Height() int { return c.h }

func (c *testCanvas) SetPixel(x, y int, on bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		panic("pixel out of bounds")
	}
	c.sets++
	c.pix[y*c.w+x] = on
}

func (c *testCanvas) lit(x, y int) bool {
	return c.pix[y*c.w+x]
}

func (c *testCanvas) count() int {
	n := 0
	for _, on := range c.pix {
		if on {
			n++
		}
	}
	return n
}

func TestPerspective_Corners16(t *testing.T) {
	p := NewPerspective(16, 16, 3)
	require.Equal(t, 2, p.Inset)

	assert.Equal(t, Quad{{0, 0}, {15, 0}, {15, 15}, {0, 15}}, p.Corners(8))
	assert.Equal(t, Quad{{2, 2}, {14, 2}, {14, 14}, {2, 14}}, p.Corners(6))
	assert.Equal(t, Quad{{8, 8}, {8, 8}, {8, 8}, {8, 8}}, p.Corners(-3))

	outs, ins := p.Layers(1, 1)
	assert.Equal(t, p.Corners(7), outs)
	assert.Equal(t, p.Corners(5), ins)

	outs, _ = p.Layers(0, 1)
	assert.Equal(t, p.Corners(8), outs, "outermost frame ignores zoom")
}

func TestPerspective_Shear(t *testing.T) {
	p := NewPerspective(16, 16, 3)

	q := Quad{{2, 0}, {14, 0}, {14, 15}, {2, 15}}
	p.Shear(&q, state.RotationRight, 5)
	assert.Equal(t, Quad{{0, 0}, {9, 0}, {9, 15}, {0, 15}}, q)

	q = Quad{{2, 0}, {14, 0}, {14, 15}, {2, 15}}
	p.Shear(&q, state.RotationLeft, 5)
	assert.Equal(t, Quad{{7, 0}, {16, 0}, {16, 15}, {7, 15}}, q)
}

func TestDrawLine(t *testing.T) {
	c := newTestCanvas(8, 8)
	DrawLine(c, Point{0, 0}, Point{3, 3})
	assert.Equal(t, 4, c.count())
	assert.True(t, c.lit(2, 2))

	c = newTestCanvas(8, 8)
	DrawLine(c, Point{-2, 1}, Point{2, 1})
	assert.Equal(t, 3, c.count(), "off-canvas samples are skipped")

	c = newTestCanvas(8, 8)
	DrawLine(c, Point{5, 5}, Point{5, 5})
	assert.Equal(t, 1, c.count())

	c = newTestCanvas(8, 8)
	DrawLine(c, Point{0, 0}, Point{7, 2})
	assert.Equal(t, 8, c.count(), "one pixel per step of the longer axis")
}

func TestFillRect_Clipped(t *testing.T) {
	c := newTestCanvas(8, 8)
	FillRect(c, Point{6, 6}, Point{9, -1})
	assert.Equal(t, 2*7, c.count())
}

func TestRender_Idempotent(t *testing.T) {
	grid := world.NewGrid(16, 16)
	layout := generator.NewBacktracker(rand.New(rand.NewSource(11))).Generate(grid, generator.DefaultStart)

	for _, dir := range world.AllDirections() {
		p := &state.Player{Row: layout.Start.Row, Col: layout.Start.Col, Heading: dir}
		c := newTestCanvas(16, 16)
		r := NewWallRenderer(c, 3)

		require.True(t, r.Render(grid, p))
		first := append([]bool(nil), c.pix...)
		require.True(t, r.Render(grid, p))
		assert.Equal(t, first, c.pix, dir.String())
		assert.Equal(t, 2, c.shows)
	}
}

func TestRender_SkipsWhileSwapPending(t *testing.T) {
	grid := world.NewGrid(7, 7)
	grid.Fill()
	frames := matrix.NewFrameStore(matrix.Geometry16x16)
	r := NewWallRenderer(frames, 3)
	p := &state.Player{Row: 3, Col: 3, Heading: world.North}

	require.True(t, r.Render(grid, p))
	assert.True(t, frames.Pending())
	before := frames.DrawRows()

	assert.False(t, r.Render(grid, &state.Player{Row: 1, Col: 1}))
	assert.Equal(t, before, frames.DrawRows())
	assert.Equal(t, 1, r.Frames())
}

func TestRender_FrontWallIsSingleRectangle(t *testing.T) {
	grid := world.NewGrid(7, 7)
	grid.Fill()
	c := newTestCanvas(16, 16)
	r := NewWallRenderer(c, 3)

	r.Render(grid, &state.Player{Row: 3, Col: 3, Heading: world.North})

	// The screen-edge outline and nothing else
	assert.Equal(t, 60, c.count())
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			edge := x == 0 || x == 15 || y == 0 || y == 15
			assert.Equal(t, edge, c.lit(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestRender_ExitFillsInnerRectangle(t *testing.T) {
	grid := world.NewGrid(5, 5)
	grid.Fill()
	for col := 1; col < 5; col++ {
		grid.Carve(1, col)
	}
	c := newTestCanvas(16, 16)
	r := NewWallRenderer(c, 3)

	r.Render(grid, &state.Player{Row: 1, Col: 3, Heading: world.East})

	for y := 2; y <= 14; y++ {
		for x := 2; x <= 14; x++ {
			require.True(t, c.lit(x, y), "(%d,%d)", x, y)
		}
	}
	// Two side-wall triplets around the fill
	assert.True(t, c.lit(0, 0))
	assert.True(t, c.lit(1, 1))
	assert.True(t, c.lit(15, 0))
	assert.True(t, c.lit(15, 15))
	assert.True(t, c.lit(0, 15))
	// No outer rectangle
	assert.False(t, c.lit(8, 0))
	assert.False(t, c.lit(0, 8))
	assert.Equal(t, 169+7, c.count())
}

func TestRender_ExitFramedEvenWithOpenSides(t *testing.T) {
	grid := world.NewGrid(5, 5)
	grid.Fill()
	for col := 1; col < 5; col++ {
		grid.Carve(1, col)
	}
	grid.Carve(0, 3)
	grid.Carve(2, 3)
	c := newTestCanvas(16, 16)
	r := NewWallRenderer(c, 3)

	r.Render(grid, &state.Player{Row: 1, Col: 3, Heading: world.East})

	assert.True(t, c.lit(0, 0))
	assert.True(t, c.lit(1, 1))
	assert.True(t, c.lit(15, 0))
	assert.True(t, c.lit(0, 15))
	assert.True(t, c.lit(15, 15))
	assert.Equal(t, 169+7, c.count())
}

func TestRender_BackWallStopsDepthLoop(t *testing.T) {
	grid := world.NewGrid(7, 7)
	grid.Fill()
	grid.Carve(5, 3)
	grid.Carve(4, 3)
	c := newTestCanvas(16, 16)
	r := NewWallRenderer(c, 3)

	r.Render(grid, &state.Player{Row: 5, Col: 3, Heading: world.North})

	assert.True(t, c.lit(4, 4), "back wall at depth one")
	assert.True(t, c.lit(12, 12))
	assert.False(t, c.lit(6, 6), "nothing drawn past the back wall")
	assert.False(t, c.lit(8, 8))
	// Side walls of the first cell
	assert.True(t, c.lit(1, 1))
	assert.True(t, c.lit(2, 8))
}
