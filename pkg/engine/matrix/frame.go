// Package matrix drives a row-scanned monochrome LED matrix: a double-buffered
// frame store, the periodic scan engine that shifts rows out to the hardware,
// and a software panel that reconstructs the image from the shifted words.
package matrix

import (
	"fmt"
	"sync/atomic"
)

// Geometry describes a physical matrix
type Geometry struct {
	Name        string
	Rows        int
	Cols        int
	BlankCycles int // off ticks between row switches, for panels that need settle time
}

// Supported panels
var (
	Geometry16x16 = Geometry{Name: "16x16", Rows: 16, Cols: 16, BlankCycles: 0}
	Geometry8x8   = Geometry{Name: "8x8", Rows: 8, Cols: 8, BlankCycles: 2}
)

// GeometryByName returns a supported geometry
func GeometryByName(name string) (Geometry, error) {
	switch name {
	case Geometry16x16.Name:
		return Geometry16x16, nil
	case Geometry8x8.Name:
		return Geometry8x8, nil
	default:
		return Geometry{}, fmt.Errorf("unknown matrix geometry %q", name)
	}
}

// Mask returns the word mask for one hardware-width word
func (g Geometry) Mask() uint32 {
	width := g.Cols
	if g.Rows > width {
		width = g.Rows
	}
	if width >= 32 {
		return ^uint32(0)
	}
	return 1<<uint(width) - 1
}

// BlankData is the all-off level for both row data and row select (active low)
func (g Geometry) BlankData() uint32 {
	return g.Mask()
}

// FrameStore holds the draw buffer written by the renderer and the display
// buffer read by the scan engine. The swap-pending flag is the only state
// shared between the two contexts.
type FrameStore struct {
	geom    Geometry
	draw    []uint32
	display []uint32
	pending atomic.Bool
}

// NewFrameStore creates an empty frame store for the geometry
func NewFrameStore(geom Geometry) *FrameStore {
	return &FrameStore{
		geom:    geom,
		draw:    make([]uint32, geom.Rows),
		display: make([]uint32, geom.Rows),
	}
}

// Geometry returns the panel geometry
func (f *FrameStore) Geometry() Geometry {
	return f.geom
}

// Width returns the number of pixel columns
func (f *FrameStore) Width() int {
	return f.geom.Cols
}

// Height returns the number of pixel rows
func (f *FrameStore) Height() int {
	return f.geom.Rows
}

// Begin reports whether the draw buffer may be written. It returns false
// while the previous frame is still waiting to be swapped in.
func (f *FrameStore) Begin() bool {
	return !f.pending.Load()
}

// Clear zeroes the draw buffer
func (f *FrameStore) Clear() {
	for i := range f.draw {
		f.draw[i] = 0
	}
}

// SetPixel sets one pixel of the draw buffer; out of bounds is a no-op
func (f *FrameStore) SetPixel(x, y int, on bool) {
	if x < 0 || x >= f.geom.Cols || y < 0 || y >= f.geom.Rows {
		return
	}
	if on {
		f.draw[y] |= 1 << uint(x)
	} else {
		f.draw[y] &^= 1 << uint(x)
	}
}

// Pixel reads one pixel of the draw buffer
func (f *FrameStore) Pixel(x, y int) bool {
	if x < 0 || x >= f.geom.Cols || y < 0 || y >= f.geom.Rows {
		return false
	}
	return f.draw[y]&(1<<uint(x)) != 0
}

// SetRow replaces a whole draw buffer row
func (f *FrameStore) SetRow(row int, data uint32) {
	if row < 0 || row >= f.geom.Rows {
		return
	}
	f.draw[row] = data
}

// DrawRow returns a draw buffer row
func (f *FrameStore) DrawRow(row int) uint32 {
	if row < 0 || row >= f.geom.Rows {
		return 0
	}
	return f.draw[row]
}

// DrawRows returns a copy of the draw buffer
func (f *FrameStore) DrawRows() []uint32 {
	out := make([]uint32, len(f.draw))
	copy(out, f.draw)
	return out
}

// Show hands the draw buffer to the scan engine at its next safe point
func (f *FrameStore) Show() {
	f.pending.Store(true)
}

// Pending reports whether a frame is waiting to be swapped in
func (f *FrameStore) Pending() bool {
	return f.pending.Load()
}

// swap copies draw into display and clears the flag; scan context only
func (f *FrameStore) swap() bool {
	if !f.pending.Load() {
		return false
	}
	copy(f.display, f.draw)
	f.pending.Store(false)
	return true
}

// displayRow reads the display buffer; scan context only
func (f *FrameStore) displayRow(row int) uint32 {
	return f.display[row]
}
