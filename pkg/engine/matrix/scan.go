package matrix

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// DefaultScanRate is the frame clock the scan engine is designed around
const DefaultScanRate = 8000

// ShiftRegister is the serial link to the row and column drivers.
// Each tick transfers the row data word followed by the row select word,
// then strobes the latch low then high.
type ShiftRegister interface {
	Transfer(word uint32)
	SetLatch(high bool)
}

// ScanStats holds scan engine counters
type ScanStats struct {
	Ticks  uint64
	Cycles uint64
	Swaps  uint64
}

// Scanner walks the matrix rows on a fixed period. It owns the display
// buffer and the row cursor; nothing else may touch them.
type Scanner struct {
	frames *FrameStore
	out    ShiftRegister
	geom   Geometry

	line  int
	blank int

	enabled atomic.Bool

	ticks  atomic.Uint64
	cycles atomic.Uint64
	swaps  atomic.Uint64

	running atomic.Bool
}

// NewScanner creates a scan engine for the frame store; output starts disabled
func NewScanner(frames *FrameStore, out ShiftRegister) *Scanner {
	return &Scanner{
		frames: frames,
		out:    out,
		geom:   frames.Geometry(),
	}
}

// SetEnabled switches the display output on or off. Safe from any goroutine.
func (s *Scanner) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

// Enabled reports whether the display output is on
func (s *Scanner) Enabled() bool {
	return s.enabled.Load()
}

// Line returns the current row cursor. Only meaningful while stopped.
func (s *Scanner) Line() int {
	return s.line
}

// Stats returns a snapshot of the scan counters
func (s *Scanner) Stats() ScanStats {
	return ScanStats{
		Ticks:  s.ticks.Load(),
		Cycles: s.cycles.Load(),
		Swaps:  s.swaps.Load(),
	}
}

// Tick performs one frame-clock step: shift out one row (or a blank), latch
// it, advance the cursor and swap in a pending frame at the wraparound
func (s *Scanner) Tick() {
	s.ticks.Add(1)

	mask := s.geom.Mask()
	rowData := s.geom.BlankData()
	rowSelect := s.geom.BlankData()
	if s.enabled.Load() && s.blank == 0 {
		rowData = ^s.frames.displayRow(s.line) & mask
		rowSelect = ^(uint32(1) << uint(s.line)) & mask
	}

	s.out.Transfer(rowData)
	s.out.Transfer(rowSelect)
	s.out.SetLatch(false)
	s.out.SetLatch(true)

	if s.blank == 0 {
		s.line = (s.line + 1) % s.geom.Rows
		s.blank = s.geom.BlankCycles
		if s.line == 0 {
			s.cycles.Add(1)
		}
	} else {
		s.blank--
	}

	// swap only at the start of a fresh cycle so a refresh never mixes frames
	if s.line == 0 && s.blank == s.geom.BlankCycles && s.frames.Pending() {
		if s.frames.swap() {
			s.swaps.Add(1)
		}
	}
}

// Run ticks the scanner at hz until ctx is cancelled
func (s *Scanner) Run(ctx context.Context, hz int) {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer s.running.Store(false)

	if hz <= 0 {
		hz = DefaultScanRate
	}
	period := time.Second / time.Duration(hz)

	log.Printf("[SCAN] [INFO] scanning %s matrix at %d Hz", s.geom.Name, hz)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			st := s.Stats()
			log.Printf("[SCAN] [INFO] stopped after %d ticks, %d cycles, %d swaps", st.Ticks, st.Cycles, st.Swaps)
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}
