package ebiten

import "image/color"

// Color palette for the panel window
var (
	colorBackground   = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorPanel        = color.RGBA{12, 12, 18, 255}    // Board behind the LEDs
	colorPanelBorder  = color.RGBA{60, 60, 80, 255}    // Board edge
	colorLEDLit       = color.RGBA{255, 60, 40, 255}   // Red LED
	colorLEDDark      = color.RGBA{50, 20, 20, 255}    // Unlit LED
	colorIndicatorOn  = color.RGBA{0, 255, 100, 255}   // Bright green
	colorIndicatorOff = color.RGBA{30, 60, 40, 255}    // Dim green
	colorLabel        = color.RGBA{100, 150, 255, 255} // Bright blue
	colorValue        = color.RGBA{220, 170, 255, 255} // Bright purple
	colorOff          = color.RGBA{255, 100, 100, 255} // Bright red
	colorSubtle       = color.RGBA{160, 160, 180, 255} // Light gray
)

// Layout constants
const (
	defaultWindowWidth  = 640
	defaultWindowHeight = 720

	// Space reserved under the panel for the status, message and help lines
	statusAreaHeight = 110

	panelMargin = 20
	minLEDSize  = 6

	// LED radius as a share of its pitch
	ledFill = 0.38

	baseFontSize = 16.0
	minFontSize  = 10.0

	// Indicator pulse period in milliseconds
	pulsePeriod = 1200.0
)
