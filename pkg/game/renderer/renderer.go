package renderer

import (
	"scanmaze/pkg/engine/world"
	"scanmaze/pkg/game/state"
	"scanmaze/pkg/game/view"
)

// WallRenderer paints the walker's first-person view of the maze
type WallRenderer struct {
	persp  Perspective
	canvas Canvas

	frames int
}

// NewWallRenderer creates a renderer drawing onto canvas
func NewWallRenderer(canvas Canvas, maxDepth int) *WallRenderer {
	return &WallRenderer{
		persp:  NewPerspective(canvas.Width(), canvas.Height(), maxDepth),
		canvas: canvas,
	}
}

// Perspective returns the projection in use
func (r *WallRenderer) Perspective() Perspective {
	return r.persp
}

// Frames returns the number of frames committed
func (r *WallRenderer) Frames() int {
	return r.frames
}

// Render repaints the view and commits it. It returns false without touching
// the canvas while the previous frame has not been picked up yet.
func (r *WallRenderer) Render(grid *world.Grid, p *state.Player) bool {
	if !r.canvas.Begin() {
		return false
	}
	r.canvas.Clear()
	r.Draw(grid, p)
	r.canvas.Show()
	r.frames++
	return true
}

// Draw paints depth layers from nearest to farthest onto the canvas, stopping
// at the first layer nothing can be seen past
func (r *WallRenderer) Draw(grid *world.Grid, p *state.Player) {
	zoom := 0
	if p.Moving {
		zoom = p.MoveProgress
	}

	for depth := 0; depth < r.persp.MaxDepth; depth++ {
		outs, ins := r.persp.Layers(depth, zoom)
		if p.Rotation != state.RotationNone {
			r.persp.Shear(&outs, p.Rotation, p.TurnProgress)
			r.persp.Shear(&ins, p.Rotation, p.TurnProgress)
		}

		s := view.LookAt(grid, p.Heading, p.Row, p.Col, depth)
		if !r.drawLayer(s, outs, ins) {
			return
		}
	}
}

// drawLayer paints one depth layer and reports whether farther layers are visible
func (r *WallRenderer) drawLayer(s view.Snapshot, outs, ins Quad) bool {
	if s.Exit {
		// The exit is always framed by both side walls
		FillRect(r.canvas, ins[TopLeft], ins[BottomRight])
		r.frontLeft(outs, ins)
		r.frontRight(outs, ins)
		return false
	}

	if s.Front {
		DrawQuad(r.canvas, outs)
		return false
	}

	if s.Back {
		DrawQuad(r.canvas, ins)
	}

	if s.FrontLeft {
		r.frontLeft(outs, ins)
	} else if s.BackLeft {
		r.backLeft(outs, ins)
	}

	if s.FrontRight {
		r.frontRight(outs, ins)
	} else if s.BackRight {
		r.backRight(outs, ins)
	}

	return !s.Back
}

// frontLeft is the wall beside the viewer, receding from the outer to the inner corners
func (r *WallRenderer) frontLeft(outs, ins Quad) {
	DrawLine(r.canvas, outs[TopLeft], ins[TopLeft])
	DrawLine(r.canvas, ins[TopLeft], ins[BottomLeft])
	DrawLine(r.canvas, ins[BottomLeft], outs[BottomLeft])
}

func (r *WallRenderer) frontRight(outs, ins Quad) {
	DrawLine(r.canvas, outs[TopRight], ins[TopRight])
	DrawLine(r.canvas, ins[TopRight], ins[BottomRight])
	DrawLine(r.canvas, ins[BottomRight], outs[BottomRight])
}

// backLeft is the face of a side passage's far wall, seen square on
func (r *WallRenderer) backLeft(outs, ins Quad) {
	DrawLine(r.canvas, Point{outs[TopLeft].X, ins[TopLeft].Y}, ins[TopLeft])
	DrawLine(r.canvas, ins[TopLeft], ins[BottomLeft])
	DrawLine(r.canvas, ins[BottomLeft], Point{outs[BottomLeft].X, ins[BottomLeft].Y})
}

func (r *WallRenderer) backRight(outs, ins Quad) {
	DrawLine(r.canvas, Point{outs[TopRight].X, ins[TopRight].Y}, ins[TopRight])
	DrawLine(r.canvas, ins[TopRight], ins[BottomRight])
	DrawLine(r.canvas, ins[BottomRight], Point{outs[BottomRight].X, ins[BottomRight].Y})
}
