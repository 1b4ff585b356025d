package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// drawColoredText draws already-translated text at (x, y), top-left anchored
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	face := e.getMonoFontFace()

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawColoredTextSegments draws segments left to right and returns the end x
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int) int {
	for _, seg := range segments {
		e.drawColoredText(screen, seg.text, x, y, seg.color)
		x += int(e.getTextWidth(seg.text))
	}
	return x
}

// getTextWidth returns the rendered width of str
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getMonoFontFace(), 0)
	return w
}
