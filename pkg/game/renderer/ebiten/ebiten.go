package ebiten

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"scanmaze/pkg/engine/input"
	"scanmaze/pkg/game/renderer"
)

// New creates a new Ebiten panel backend
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		ledSize:      minLEDSize,
		debouncer:    &input.Debouncer{Window: 30 * time.Millisecond},
	}
}

// Name returns the backend name
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Run opens the window and blocks until it is closed, ctx is cancelled or
// the operator quits. Ebiten requires this on the main goroutine.
func (e *EbitenRenderer) Run(ctx context.Context, src renderer.Source) error {
	if err := e.loadFonts(); err != nil {
		return err
	}

	e.ctx, e.cancel = context.WithCancel(ctx)
	defer e.cancel()
	e.src = src

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("scanmaze")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
