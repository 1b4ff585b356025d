// Package ebiten shows the LED panel in a desktop window using Ebiten.
package ebiten

import (
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"scanmaze/pkg/engine/input"
	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/game/renderer"
)

// renderSnapshot holds a consistent copy of the panel and status for drawing.
// Update refreshes it; Draw only reads it.
type renderSnapshot struct {
	valid  bool
	frame  matrix.Image
	status renderer.Status
}

// EbitenRenderer is the windowed panel backend
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Pixel pitch of one LED, recomputed from the window size
	ledSize int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource

	// Cached font face (recreated when the LED size changes)
	cachedUIFontSize float64
	cachedMonoFace   *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Set by Run
	ctx       context.Context
	cancel    context.CancelFunc
	src       renderer.Source
	debouncer *input.Debouncer

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
