package indicator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLED struct {
	mu     sync.Mutex
	states []bool
}

func (l *recordingLED) Set(on bool) {
	l.mu.Lock()
	l.states = append(l.states, on)
	l.mu.Unlock()
}

func (l *recordingLED) snapshot() []bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]bool(nil), l.states...)
}

func TestPattern(t *testing.T) {
	p := Pattern(3)
	require.Len(t, p, 8)
	assert.Equal(t, Pulse{On: true, Duration: LongBlink}, p[0])
	assert.Equal(t, Pulse{On: false, Duration: BlinkGap}, p[1])
	for i := 2; i < len(p); i += 2 {
		assert.Equal(t, Pulse{On: true, Duration: ShortBlink}, p[i])
	}
	assert.Equal(t, LongBlink+4*BlinkGap+3*ShortBlink, Duration(p))

	assert.Len(t, Pattern(0), 2, "command zero is one long blink")
	assert.Len(t, Pattern(200), 2+2*MaxShortBlinks)
}

func TestBlinker_PlaysPattern(t *testing.T) {
	led := &recordingLED{}
	b := NewBlinker(led)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Run(ctx)

	b.Play([]Pulse{{On: true, Duration: time.Millisecond}, {On: false, Duration: time.Millisecond}})
	require.Eventually(t, func() bool { return b.Played() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, []bool{true, false, false}, led.snapshot())
}

func TestBlinker_NewPatternReplaces(t *testing.T) {
	led := &recordingLED{}
	b := NewBlinker(led)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Run(ctx)

	b.Play([]Pulse{{On: true, Duration: time.Hour}})
	require.Eventually(t, func() bool { return len(led.snapshot()) == 1 }, time.Second, time.Millisecond)

	b.Play([]Pulse{{On: false, Duration: time.Millisecond}})
	require.Eventually(t, func() bool { return b.Played() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, []bool{true, false, false}, led.snapshot())
}

func TestBlinker_StopsDark(t *testing.T) {
	state := &StateLED{}
	b := NewBlinker(state)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()

	b.Play([]Pulse{{On: true, Duration: time.Hour}})
	require.Eventually(t, state.Lit, time.Second, time.Millisecond)

	cancel()
	<-done
	assert.False(t, state.Lit())
}

func TestMultiLED(t *testing.T) {
	a, b := &StateLED{}, &StateLED{}
	MultiLED{a, b}.Set(true)
	assert.True(t, a.Lit())
	assert.True(t, b.Lit())
}
