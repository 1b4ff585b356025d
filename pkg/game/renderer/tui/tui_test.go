package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/game/renderer"
)

func TestFormatFrame_DrawsEveryLED(t *testing.T) {
	tr := New()
	img := matrix.Image{Width: 8, Height: 8, Rows: make([]uint32, 8)}
	img.Rows[0] = 0b11
	img.Rows[7] = 0b10000000

	out := tr.FormatFrame(img, renderer.Status{Maze: 3, Heading: "North", Display: true})
	assert.Equal(t, 3, strings.Count(out, IconLit))
	assert.Equal(t, 61, strings.Count(out, IconDark)-1, "status line adds one dark indicator")
	assert.Equal(t, 8+3, strings.Count(out, "\r\n"))
}

func TestFormatStatus_IndicatorLit(t *testing.T) {
	tr := New()
	dark := tr.FormatStatus(renderer.Status{})
	lit := tr.FormatStatus(renderer.Status{Indicator: true})

	assert.Contains(t, dark, IconDark)
	assert.NotContains(t, dark, IconLit)
	assert.Contains(t, lit, IconLit)
}
