package ebiten

import (
	"image/color"
	"math"
	"time"
)

// pulseBrightness maps a millisecond clock onto a sine wave between lo and hi
func pulseBrightness(nowMillis int64, lo, hi float64) float64 {
	phase := float64(nowMillis%int64(pulsePeriod)) / pulsePeriod
	value := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return lo + (hi-lo)*value
}

// scaleColor multiplies the RGB channels of c by brightness
func scaleColor(c color.RGBA, brightness float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * brightness),
		G: uint8(float64(c.G) * brightness),
		B: uint8(float64(c.B) * brightness),
		A: c.A,
	}
}

// getPulsingIndicatorColor returns a softly pulsing green while the indicator is lit
func (e *EbitenRenderer) getPulsingIndicatorColor() color.Color {
	return scaleColor(colorIndicatorOn, pulseBrightness(time.Now().UnixMilli(), 0.7, 1.0))
}
