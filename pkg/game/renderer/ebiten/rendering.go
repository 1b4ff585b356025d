package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/game/renderer"
)

// dynamicGet is used for runtime translation key lookups
var dynamicGet = gotext.Get

// ledLayout fits a cols x rows LED board into the window above the status
// area and returns the LED pitch and the board's top-left corner
func ledLayout(windowWidth, windowHeight, cols, rows int) (size, x, y int) {
	if cols <= 0 || rows <= 0 {
		return minLEDSize, panelMargin, panelMargin
	}

	availW := windowWidth - 2*panelMargin
	availH := windowHeight - statusAreaHeight - 2*panelMargin
	size = max(min(availW/cols, availH/rows), minLEDSize)

	x = max((windowWidth-size*cols)/2, 0)
	y = panelMargin
	return size, x, y
}

// Draw renders the panel window (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.valid || e.monoFontSource == nil {
		return
	}

	size, x, y := ledLayout(e.windowWidth, e.windowHeight, snap.frame.Width, snap.frame.Height)
	if size != e.ledSize {
		e.ledSize = size
		e.invalidateFontCache()
	}

	e.drawPanel(screen, snap.frame, x, y)

	statusY := y + size*snap.frame.Height + panelMargin
	e.drawStatusBar(screen, snap.status, panelMargin, statusY)
}

// drawPanel draws the board and one disc per LED
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, img matrix.Image, x, y int) {
	size := float32(e.ledSize)
	w := size * float32(img.Width)
	h := size * float32(img.Height)

	vector.DrawFilledRect(screen, float32(x)-2, float32(y)-2, w+4, h+4, colorPanelBorder, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), w, h, colorPanel, false)

	radius := size * ledFill
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			cx := float32(x) + size*float32(col) + size/2
			cy := float32(y) + size*float32(row) + size/2
			clr := colorLEDDark
			if img.Lit(col, row) {
				clr = colorLEDLit
			}
			vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
		}
	}
}

// drawStatusBar draws the status, last message and key help lines
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, s renderer.Status, x, y int) {
	lineHeight := int(e.getUIFontSize() * 1.6)

	display := textSegment{gotext.Get("STATUS_ON"), colorValue}
	if !s.Display {
		display = textSegment{gotext.Get("STATUS_OFF"), colorOff}
	}

	end := e.drawColoredTextSegments(screen, []textSegment{
		{gotext.Get("STATUS_MAZE") + " ", colorLabel},
		{fmt.Sprintf("%d ", s.Maze), colorValue},
		{s.MazeID + "  ", colorSubtle},
		{gotext.Get("STATUS_EXITS") + " ", colorLabel},
		{fmt.Sprintf("%d  ", s.Exits), colorValue},
		{gotext.Get("STATUS_HEADING") + " ", colorLabel},
		{dynamicGet(s.Heading) + "  ", colorValue},
		{gotext.Get("STATUS_DISPLAY") + " ", colorLabel},
		display,
	}, x, y)

	// status LED
	r := float32(e.getUIFontSize() / 2)
	cx := float32(end) + 3*r
	cy := float32(y) + r
	if s.Indicator {
		vector.DrawFilledCircle(screen, cx, cy, r, e.getPulsingIndicatorColor(), true)
	} else {
		vector.DrawFilledCircle(screen, cx, cy, r, colorIndicatorOff, true)
	}

	e.drawColoredText(screen, s.Message, x, y+lineHeight, colorSubtle)
	e.drawColoredText(screen, gotext.Get("HELP_LINE"), x, y+2*lineHeight, colorSubtle)
}
