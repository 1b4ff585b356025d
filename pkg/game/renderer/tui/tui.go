package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"scanmaze/pkg/engine/input"
	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/engine/terminal"
	"scanmaze/pkg/game/renderer"
)

// LED icons
const (
	IconLit   = "●"
	IconDark  = "·"
	IconBlank = " "
)

// RefreshRate is how often the terminal is repainted
const RefreshRate = 30

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based panel backend
type TUIRenderer struct {
	colorLit       color.Style
	colorDark      color.Style
	colorLabel     color.Style
	colorValue     color.Style
	colorOff       color.Style
	colorIndicator color.Style
	colorSubtle    color.Style

	out io.Writer
	in  io.Reader
}

// New creates a new TUI backend on stdout and stdin
func New() *TUIRenderer {
	t := &TUIRenderer{out: os.Stdout, in: os.Stdin}
	t.Init()
	return t
}

// Init initializes the color styles
func (t *TUIRenderer) Init() {
	t.colorLit = color.Style{color.FgLightRed, color.OpBold}
	t.colorDark = color.Style{color.FgGray}
	t.colorLabel = color.Style{color.FgBlue}
	t.colorValue = color.Style{color.FgMagenta, color.OpBold}
	t.colorOff = color.Style{color.FgRed, color.OpBold}
	t.colorIndicator = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Name returns the backend name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Run paints the panel until ctx is cancelled or the operator quits
func (t *TUIRenderer) Run(ctx context.Context, src renderer.Source) error {
	img := src.Frame()
	if !terminal.Fits(img.Width*2, img.Height, 4) {
		return fmt.Errorf("%s", dynamicGet("TERMINAL_TOO_SMALL"))
	}

	restore, err := terminal.MakeRaw()
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go t.readKeys(ctx, cancel, src)

	// Hide the cursor while painting; show it again on the way out
	fmt.Fprint(t.out, "\x1b[?25l\x1b[2J")
	defer fmt.Fprint(t.out, "\x1b[?25h\r\n")

	ticker := time.NewTicker(time.Second / RefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fmt.Fprint(t.out, "\x1b[H"+t.FormatFrame(src.Frame(), src.Status()))
		}
	}
}

// readKeys turns terminal key presses into intents
func (t *TUIRenderer) readKeys(ctx context.Context, cancel context.CancelFunc, src renderer.Source) {
	keys := input.NewKeyReader(t.in)
	debouncer := &input.Debouncer{Window: 30 * time.Millisecond}

	for ctx.Err() == nil {
		code, err := keys.ReadKey()
		if err != nil {
			log.Printf("[TUI] [WARN] key reader stopped: %v", err)
			return
		}

		raw := input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: time.Now()}
		ev, ok := debouncer.Accept(raw)
		if !ok {
			continue
		}

		intent := input.MapToIntent(ev)
		src.Dispatch(intent)
		if intent.Action == input.ActionQuit {
			cancel()
			return
		}
	}
}

// FormatFrame renders the panel and status lines as one raw-mode string
func (t *TUIRenderer) FormatFrame(img matrix.Image, s renderer.Status) string {
	var b strings.Builder

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.Lit(x, y) {
				b.WriteString(t.colorLit.Sprint(IconLit))
			} else {
				b.WriteString(t.colorDark.Sprint(IconDark))
			}
			b.WriteString(IconBlank)
		}
		b.WriteString("\x1b[K\r\n")
	}

	b.WriteString("\x1b[K\r\n")
	b.WriteString(t.FormatStatus(s))
	b.WriteString("\x1b[K\r\n")
	b.WriteString(t.colorSubtle.Sprint(s.Message))
	b.WriteString("\x1b[K\r\n")
	b.WriteString(t.colorSubtle.Sprint(dynamicGet("HELP_LINE")))
	b.WriteString("\x1b[K")
	return b.String()
}

// FormatStatus renders the status line
func (t *TUIRenderer) FormatStatus(s renderer.Status) string {
	display := t.colorValue.Sprint(dynamicGet("STATUS_ON"))
	if !s.Display {
		display = t.colorOff.Sprint(dynamicGet("STATUS_OFF"))
	}
	led := t.colorDark.Sprint(IconDark)
	if s.Indicator {
		led = t.colorIndicator.Sprint(IconLit)
	}

	return fmt.Sprintf("%s %s %s  %s %s  %s %s  %s %s  %s",
		t.colorLabel.Sprint(dynamicGet("STATUS_MAZE")), t.colorValue.Sprint(s.Maze), t.colorSubtle.Sprint(s.MazeID),
		t.colorLabel.Sprint(dynamicGet("STATUS_EXITS")), t.colorValue.Sprint(s.Exits),
		t.colorLabel.Sprint(dynamicGet("STATUS_HEADING")), t.colorValue.Sprint(dynamicGet(s.Heading)),
		t.colorLabel.Sprint(dynamicGet("STATUS_DISPLAY")), display,
		led)
}
