package matrix

import "sync"

// Image is a decoded monochrome frame, one word per row, bit x = column x
type Image struct {
	Width  int
	Height int
	Rows   []uint32
}

// Lit reports whether the pixel is on
func (img Image) Lit(x, y int) bool {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return false
	}
	return img.Rows[y]&(1<<uint(x)) != 0
}

// LitCount returns the number of lit pixels
func (img Image) LitCount() int {
	n := 0
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.Lit(x, y) {
				n++
			}
		}
	}
	return n
}

// Panel is a software LED matrix behind the shift registers. It decodes the
// two most recent words on each latch rising edge and keeps a row lit for one
// scan cycle, which is what the eye sees on the real panel.
type Panel struct {
	geom Geometry

	mu      sync.RWMutex
	data    uint32
	sel     uint32
	latch   bool
	latches uint64
	rows    []uint32
	stamps  []uint64
}

// NewPanel creates a dark panel for the geometry
func NewPanel(geom Geometry) *Panel {
	return &Panel{
		geom:   geom,
		latch:  true,
		rows:   make([]uint32, geom.Rows),
		stamps: make([]uint64, geom.Rows),
	}
}

// Transfer shifts one word in; the previous word moves to the data register
func (p *Panel) Transfer(word uint32) {
	p.mu.Lock()
	p.data = p.sel
	p.sel = word
	p.mu.Unlock()
}

// SetLatch drives the latch line; a rising edge updates the outputs
func (p *Panel) SetLatch(high bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rising := high && !p.latch
	p.latch = high
	if !rising {
		return
	}

	p.latches++
	mask := p.geom.Mask()
	selected := ^p.sel & mask
	for row := 0; row < p.geom.Rows; row++ {
		if selected&(1<<uint(row)) == 0 {
			continue
		}
		p.rows[row] = ^p.data & mask
		p.stamps[row] = p.latches
	}
}

// window is the number of latches in one full scan cycle
func (p *Panel) window() uint64 {
	return uint64(p.geom.Rows * (p.geom.BlankCycles + 1))
}

// Snapshot returns the rows that were driven during the last scan cycle
func (p *Panel) Snapshot() Image {
	p.mu.RLock()
	defer p.mu.RUnlock()

	img := Image{Width: p.geom.Cols, Height: p.geom.Rows, Rows: make([]uint32, p.geom.Rows)}
	colMask := uint32(1)<<uint(p.geom.Cols) - 1
	for row := range p.rows {
		if p.stamps[row] == 0 || p.latches-p.stamps[row] >= p.window() {
			continue
		}
		img.Rows[row] = p.rows[row] & colMask
	}
	return img
}

// Lit reports whether a pixel is currently lit
func (p *Panel) Lit(x, y int) bool {
	return p.Snapshot().Lit(x, y)
}

// Latches returns the number of latch strobes seen
func (p *Panel) Latches() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latches
}
