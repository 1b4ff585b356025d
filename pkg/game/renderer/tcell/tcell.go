// Package tcell shows the panel through a tcell screen, which handles
// terminal setup, resize and key decoding for us.
package tcell

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"scanmaze/pkg/engine/input"
	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/game/renderer"
)

const (
	// RefreshRate is how often the screen is repainted
	RefreshRate = 30

	runeLit  = '●'
	runeDark = '·'
)

// dynamicGet is used for runtime translation key lookups
var dynamicGet = gotext.Get

// Backend draws LEDs as runes on a tcell screen
type Backend struct {
	screen tcell.Screen

	styleLit    tcell.Style
	styleDark   tcell.Style
	styleLabel  tcell.Style
	styleValue  tcell.Style
	styleOff    tcell.Style
	styleSubtle tcell.Style
}

// New creates a backend on the controlling terminal
func New() *Backend {
	return NewWithScreen(nil)
}

// NewWithScreen creates a backend on screen; nil opens the terminal in Run
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{
		screen:      screen,
		styleLit:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		styleDark:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		styleLabel:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
		styleValue:  tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
		styleOff:    tcell.StyleDefault.Foreground(tcell.ColorMaroon).Bold(true),
		styleSubtle: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
}

// Name returns the backend name
func (b *Backend) Name() string {
	return "tcell"
}

// Run paints the panel until ctx is cancelled or the operator quits
func (b *Backend) Run(ctx context.Context, src renderer.Source) error {
	if b.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		b.screen = screen
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer b.screen.Fini()

	b.screen.HideCursor()
	b.screen.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / RefreshRate)
	defer ticker.Stop()

	debouncer := &input.Debouncer{Window: 30 * time.Millisecond}

	for {
		select {
		case <-ctx.Done():
			// unblock PollEvent
			b.screen.PostEvent(tcell.NewEventInterrupt(nil))
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				code := KeyCode(ev)
				if code == "" {
					continue
				}
				raw := input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: ev.When()}
				accepted, ok := debouncer.Accept(raw)
				if !ok {
					continue
				}
				intent := input.MapToIntent(accepted)
				src.Dispatch(intent)
				if intent.Action == input.ActionQuit {
					cancel()
				}
			case *tcell.EventResize:
				b.screen.Sync()
			}

		case <-ticker.C:
			b.Draw(src.Frame(), src.Status())
			b.screen.Show()
		}
	}
}

// KeyCode maps a tcell key event onto the key names used by the bindings
func KeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return string(unicode.ToLower(r))
	}
	return ""
}

// Draw writes the panel and status lines into the screen buffer
func (b *Backend) Draw(img matrix.Image, s renderer.Status) {
	b.screen.Clear()

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.Lit(x, y) {
				b.screen.SetContent(x*2, y, runeLit, nil, b.styleLit)
			} else {
				b.screen.SetContent(x*2, y, runeDark, nil, b.styleDark)
			}
		}
	}

	row := img.Height + 1
	col := 0
	col = b.put(col, row, dynamicGet("STATUS_MAZE")+" ", b.styleLabel)
	col = b.put(col, row, fmt.Sprintf("%d ", s.Maze), b.styleValue)
	col = b.put(col, row, s.MazeID+"  ", b.styleSubtle)
	col = b.put(col, row, dynamicGet("STATUS_EXITS")+" ", b.styleLabel)
	col = b.put(col, row, fmt.Sprintf("%d  ", s.Exits), b.styleValue)
	col = b.put(col, row, dynamicGet("STATUS_HEADING")+" ", b.styleLabel)
	col = b.put(col, row, dynamicGet(s.Heading)+"  ", b.styleValue)
	col = b.put(col, row, dynamicGet("STATUS_DISPLAY")+" ", b.styleLabel)
	if s.Display {
		col = b.put(col, row, dynamicGet("STATUS_ON")+"  ", b.styleValue)
	} else {
		col = b.put(col, row, dynamicGet("STATUS_OFF")+"  ", b.styleOff)
	}
	if s.Indicator {
		b.screen.SetContent(col, row, runeLit, nil, b.styleValue)
	} else {
		b.screen.SetContent(col, row, runeDark, nil, b.styleDark)
	}

	b.put(0, row+1, s.Message, b.styleSubtle)
	b.put(0, row+2, dynamicGet("HELP_LINE"), b.styleSubtle)
}

// put writes text at (col, row) and returns the column after it
func (b *Backend) put(col, row int, text string, style tcell.Style) int {
	for _, r := range strings.TrimRight(text, "\n") {
		b.screen.SetContent(col, row, r, nil, style)
		col++
	}
	return col
}
