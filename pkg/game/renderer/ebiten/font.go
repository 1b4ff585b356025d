package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts parses the bundled monospace font
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	e.monoFontSource = src
	return nil
}

// getUIFontSize returns the font size for the status lines, scaled with the LEDs
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.ledSize) / 32.0
	return max(size, minFontSize)
}

// getMonoFontFace returns a cached monospace font face
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedMonoFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoFace
}

// invalidateFontCache clears cached font faces (call when the LED size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
}
