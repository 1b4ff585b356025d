package renderer

import (
	"scanmaze/pkg/game/state"
)

// Point is a screen coordinate
type Point struct {
	X, Y int
}

// Corner indices of a wall rectangle
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Quad is a rectangle given as TL, TR, BR, BL corners
type Quad [4]Point

// Perspective maps maze depth onto concentric screen rectangles
type Perspective struct {
	Width    int
	Height   int
	Inset    int // half-width lost per depth level
	MaxDepth int
}

// NewPerspective returns the projection for a screen, with the inset at a
// seventh of the width
func NewPerspective(width, height, maxDepth int) Perspective {
	inset := width / 7
	if inset < 1 {
		inset = 1
	}
	return Perspective{Width: width, Height: height, Inset: inset, MaxDepth: maxDepth}
}

// Corners returns the rectangle of half-width half around the screen centre.
// The half-height follows the screen aspect. Corners are clamped to the screen.
func (p Perspective) Corners(half int) Quad {
	if half < 0 {
		half = 0
	}
	cx, cy := p.Width/2, p.Height/2
	dy := half * p.Height / p.Width

	q := Quad{
		TopLeft:     {cx - half, cy - dy},
		TopRight:    {cx + half, cy - dy},
		BottomRight: {cx + half, cy + dy},
		BottomLeft:  {cx - half, cy + dy},
	}
	for i := range q {
		q[i].X = clamp(q[i].X, 0, p.Width-1)
		q[i].Y = clamp(q[i].Y, 0, p.Height-1)
	}
	return q
}

// Layers returns the outer rectangle at depth and the inner one at depth+1.
// zoom pulls both towards the viewer while walking; the outermost frame at
// depth 0 stays fixed.
func (p Perspective) Layers(depth, zoom int) (outs, ins Quad) {
	outerHalf := p.Width/2 - p.Inset*depth
	if depth > 0 {
		outerHalf += zoom
	}
	innerHalf := p.Width/2 - p.Inset*(depth+1) + zoom
	return p.Corners(outerHalf), p.Corners(innerHalf)
}

// Shear slides every X coordinate away from the turn direction by shift.
// A right turn moves the scene left, a left turn moves it right.
func (p Perspective) Shear(q *Quad, rot state.Rotation, shift int) {
	for i := range q {
		switch rot {
		case state.RotationRight:
			q[i].X = max(0, q[i].X-shift)
		case state.RotationLeft:
			q[i].X = min(p.Width, q[i].X+shift)
		}
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
