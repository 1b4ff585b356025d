package indicator

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 880.0
)

// BeepLED sounds a tone on the speaker while lit, like a buzzer wired in
// parallel with the status LED
type BeepLED struct {
	mu   sync.Mutex
	ctrl *beep.Ctrl
}

// NewBeepLED initializes the speaker and starts a paused tone
func NewBeepLED() (*BeepLED, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	tone, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return nil, fmt.Errorf("create tone: %w", err)
	}

	l := &BeepLED{
		ctrl: &beep.Ctrl{Streamer: tone, Paused: true},
	}
	speaker.Play(l.ctrl)
	return l, nil
}

// Set starts or stops the tone
func (l *BeepLED) Set(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	speaker.Lock()
	l.ctrl.Paused = !on
	speaker.Unlock()
}

// Close stops playback
func (l *BeepLED) Close() {
	speaker.Clear()
}
