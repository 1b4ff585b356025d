// Package indicator blinks a status LED to acknowledge received commands.
package indicator

import (
	"context"
	"sync/atomic"
	"time"
)

// Blink timings
const (
	LongBlink      = 600 * time.Millisecond
	ShortBlink     = 150 * time.Millisecond
	BlinkGap       = 150 * time.Millisecond
	MaxShortBlinks = 16
)

// Pulse is one LED state held for a duration
type Pulse struct {
	On       bool
	Duration time.Duration
}

// Pattern returns one long blink followed by one short blink per unit of the
// command value, capped at MaxShortBlinks
func Pattern(cmd byte) []Pulse {
	n := min(int(cmd), MaxShortBlinks)
	pulses := make([]Pulse, 0, 2+2*n)
	pulses = append(pulses, Pulse{On: true, Duration: LongBlink}, Pulse{On: false, Duration: BlinkGap})
	for i := 0; i < n; i++ {
		pulses = append(pulses, Pulse{On: true, Duration: ShortBlink}, Pulse{On: false, Duration: BlinkGap})
	}
	return pulses
}

// Duration returns the total play time of a pattern
func Duration(pulses []Pulse) time.Duration {
	var d time.Duration
	for _, p := range pulses {
		d += p.Duration
	}
	return d
}

// LED is anything that can be switched on and off
type LED interface {
	Set(on bool)
}

// StateLED is an LED that only remembers its state, for backends to draw
type StateLED struct {
	lit atomic.Bool
}

// Set switches the LED
func (l *StateLED) Set(on bool) {
	l.lit.Store(on)
}

// Lit reports whether the LED is on
func (l *StateLED) Lit() bool {
	return l.lit.Load()
}

// MultiLED drives several LEDs together
type MultiLED []LED

// Set switches every LED
func (m MultiLED) Set(on bool) {
	for _, l := range m {
		l.Set(on)
	}
}

// Blinker plays pulse patterns on an LED from its own goroutine. A new
// pattern replaces the one in flight.
type Blinker struct {
	led      LED
	patterns chan []Pulse
	played   atomic.Uint64
}

// NewBlinker creates a blinker for led; call Run to start it
func NewBlinker(led LED) *Blinker {
	return &Blinker{
		led:      led,
		patterns: make(chan []Pulse, 1),
	}
}

// Notify blinks the pattern for a received command
func (b *Blinker) Notify(cmd byte) {
	b.Play(Pattern(cmd))
}

// Play queues a pattern without blocking, dropping any queued one
func (b *Blinker) Play(pulses []Pulse) {
	for {
		select {
		case b.patterns <- pulses:
			return
		default:
		}
		select {
		case <-b.patterns:
		default:
		}
	}
}

// Played returns the number of patterns played to completion
func (b *Blinker) Played() uint64 {
	return b.played.Load()
}

// Run plays patterns until ctx is cancelled, leaving the LED off
func (b *Blinker) Run(ctx context.Context) {
	defer b.led.Set(false)

	for {
		select {
		case <-ctx.Done():
			return
		case pulses := <-b.patterns:
			for {
				next, ok := b.play(ctx, pulses)
				if !ok {
					return
				}
				if next == nil {
					b.played.Add(1)
					break
				}
				pulses = next
			}
		}
	}
}

// play runs one pattern. It returns a replacement pattern if one arrived, or
// false if ctx ended.
func (b *Blinker) play(ctx context.Context, pulses []Pulse) ([]Pulse, bool) {
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for _, p := range pulses {
		b.led.Set(p.On)
		timer.Reset(p.Duration)

		select {
		case <-ctx.Done():
			return nil, false
		case next := <-b.patterns:
			return next, true
		case <-timer.C:
		}
	}
	b.led.Set(false)
	return nil, true
}
