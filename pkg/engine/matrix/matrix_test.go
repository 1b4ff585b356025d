package matrix

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a ShiftRegister that keeps every latched word pair
type recorder struct {
	words   []uint32
	latched [][2]uint32
	latch   bool
}

func (r *recorder) Transfer(word uint32) {
	r.words = append(r.words, word)
}

func (r *recorder) SetLatch(high bool) {
	if high && !r.latch && len(r.words) >= 2 {
		n := len(r.words)
		r.latched = append(r.latched, [2]uint32{r.words[n-2], r.words[n-1]})
	}
	r.latch = high
}

func ticks(s *Scanner, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestFrameStore_SetPixelBounds(t *testing.T) {
	f := NewFrameStore(Geometry16x16)
	f.SetPixel(3, 2, true)
	f.SetPixel(-1, 0, true)
	f.SetPixel(16, 0, true)
	f.SetPixel(0, 16, true)

	assert.Equal(t, uint32(1<<3), f.DrawRow(2))
	assert.True(t, f.Pixel(3, 2))
	assert.False(t, f.Pixel(16, 0))

	f.SetPixel(3, 2, false)
	assert.Zero(t, f.DrawRow(2))
}

func TestFrameStore_BeginRefusesWhilePending(t *testing.T) {
	f := NewFrameStore(Geometry8x8)
	require.True(t, f.Begin())
	f.Show()
	assert.True(t, f.Pending())
	assert.False(t, f.Begin())

	assert.True(t, f.swap())
	assert.True(t, f.Begin())
	assert.False(t, f.swap(), "nothing to swap")
}

func TestScanner_EmitsActiveLowRows(t *testing.T) {
	f := NewFrameStore(Geometry16x16)
	out := &recorder{}
	s := NewScanner(f, out)
	s.SetEnabled(true)

	f.SetRow(0, 0b101)
	f.Show()
	ticks(s, 16)
	require.Equal(t, uint64(1), s.Stats().Swaps)

	out.latched = nil
	ticks(s, 2)
	require.Len(t, out.latched, 2)
	assert.Equal(t, [2]uint32{0xFFFA, 0xFFFE}, out.latched[0])
	assert.Equal(t, [2]uint32{0xFFFF, 0xFFFD}, out.latched[1])
}

func TestScanner_DisabledEmitsBlank(t *testing.T) {
	f := NewFrameStore(Geometry8x8)
	out := &recorder{}
	s := NewScanner(f, out)

	f.SetRow(0, 0xFF)
	f.Show()
	ticks(s, 30)

	for _, pair := range out.latched {
		assert.Equal(t, [2]uint32{0xFF, 0xFF}, pair)
	}
	assert.Equal(t, uint64(1), s.Stats().Swaps, "swaps continue while output is off")
}

func TestScanner_SwapsOnlyAtWraparound16(t *testing.T) {
	f := NewFrameStore(Geometry16x16)
	s := NewScanner(f, &recorder{})
	s.SetEnabled(true)

	f.Show()
	ticks(s, 15)
	assert.True(t, f.Pending(), "mid-cycle must not swap")
	s.Tick()
	assert.False(t, f.Pending())
	assert.Equal(t, 0, s.Line())
}

func TestScanner_SwapWaitsForBlanking8x8(t *testing.T) {
	f := NewFrameStore(Geometry8x8)
	s := NewScanner(f, &recorder{})
	s.SetEnabled(true)

	f.Show()
	// eight rows, each followed by two blank ticks except the swap point
	ticks(s, 21)
	assert.True(t, f.Pending())
	s.Tick()
	assert.False(t, f.Pending())
	assert.Equal(t, uint64(1), s.Stats().Cycles)
}

func TestScanner_MidCycleShowWaitsForNextCycle(t *testing.T) {
	f := NewFrameStore(Geometry16x16)
	s := NewScanner(f, &recorder{})
	s.SetEnabled(true)

	ticks(s, 5)
	f.Show()
	ticks(s, 10)
	assert.True(t, f.Pending())
	s.Tick()
	assert.False(t, f.Pending())
}

func TestPanel_ReconstructsFrame(t *testing.T) {
	for _, geom := range []Geometry{Geometry16x16, Geometry8x8} {
		t.Run(geom.Name, func(t *testing.T) {
			f := NewFrameStore(geom)
			p := NewPanel(geom)
			s := NewScanner(f, p)
			s.SetEnabled(true)

			f.SetPixel(0, 0, true)
			f.SetPixel(geom.Cols-1, geom.Rows-1, true)
			f.SetPixel(2, 3, true)
			f.Show()

			cycle := geom.Rows * (geom.BlankCycles + 1)
			ticks(s, 2*cycle)

			img := p.Snapshot()
			assert.Equal(t, 3, img.LitCount())
			assert.True(t, img.Lit(0, 0))
			assert.True(t, img.Lit(2, 3))
			assert.True(t, img.Lit(geom.Cols-1, geom.Rows-1))

			s.SetEnabled(false)
			ticks(s, cycle)
			assert.Zero(t, p.Snapshot().LitCount(), "disabled panel goes dark")
		})
	}
}

func TestScanner_RunStopsOnCancel(t *testing.T) {
	f := NewFrameStore(Geometry8x8)
	s := NewScanner(f, NewPanel(Geometry8x8))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx, 2000)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.NotZero(t, s.Stats().Ticks)
}

func TestGeometryByName(t *testing.T) {
	g, err := GeometryByName("8x8")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF), g.BlankData())

	_, err = GeometryByName("32x32")
	assert.Error(t, err)
}
