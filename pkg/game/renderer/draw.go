package renderer

// Canvas is a monochrome drawing surface with an explicit commit
type Canvas interface {
	Begin() bool
	Clear()
	SetPixel(x, y int, on bool)
	Show()
	Width() int
	Height() int
}

// DrawLine lights every pixel on the segment from a to b. It steps along the
// longer axis and interpolates the other; samples off the canvas are skipped.
func DrawLine(c Canvas, a, b Point) {
	w, h := c.Width(), c.Height()
	plot := func(x, y int) {
		if x >= 0 && x < w && y >= 0 && y < h {
			c.SetPixel(x, y, true)
		}
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		plot(a.X, a.Y)
		return
	}

	for i := 0; i <= steps; i++ {
		plot(a.X+dx*i/steps, a.Y+dy*i/steps)
	}
}

// DrawQuad outlines a rectangle as a closed loop of four edges
func DrawQuad(c Canvas, q Quad) {
	for i := range q {
		DrawLine(c, q[i], q[(i+1)%len(q)])
	}
}

// FillRect lights every pixel between two opposite corners, inclusive
func FillRect(c Canvas, a, b Point) {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.Width()-1), min(y1, c.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.SetPixel(x, y, true)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
